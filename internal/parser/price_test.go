package parser

import "testing"

func TestMaxPrice(t *testing.T) {
	t.Parallel()

	cases := []struct {
		national string
		sa       string
		want     float64
	}{
		{"", "12.5", 12.5},
		{"abc", "7", 7},
		{"", "", 0},
		{"100", "120", 120},
		{"1,250.50", "990", 1250.5},
		{"80", "n/a", 80},
	}
	for _, c := range cases {
		if got := MaxPrice(c.national, c.sa); got != c.want {
			t.Fatalf("MaxPrice(%q, %q): want %v got %v", c.national, c.sa, c.want, got)
		}
	}
}

func TestParsePrice_Unparsable(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "  ", "rate only", "R120/m"} {
		if got := ParsePrice(s); got != 0 {
			t.Fatalf("ParsePrice(%q): want 0 got %v", s, got)
		}
	}
	if got := ParsePrice(" 1,000 "); got != 1000 {
		t.Fatalf("ParsePrice thousands: want 1000 got %v", got)
	}
}
