package parser

import "testing"

func TestCollapseText_Whitespace(t *testing.T) {
	t.Parallel()

	got, ok := CollapseText("  Concrete   Works \t 2024 ")
	if !ok {
		t.Fatalf("expected ok")
	}
	if got != "Concrete Works 2024" {
		t.Fatalf("unexpected collapse: %q", got)
	}

	if _, ok := CollapseText("   \t  "); ok {
		t.Fatalf("blank text should be absent")
	}
	if _, ok := CollapseText(""); ok {
		t.Fatalf("empty text should be absent")
	}
}

func TestCleanText_EdgeCharacters(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"*** Concrete Works:", "Concrete Works"},
		{"- Excavation .", "Excavation"},
		{"* - Brickwork - *", "Brickwork"},
		{"..Steel: fixing..", "Steel: fixing"},
		{"  plain  name  ", "plain name"},
	}
	for _, c := range cases {
		got, ok := CleanText(c.in)
		if !ok {
			t.Fatalf("%q: expected ok", c.in)
		}
		if got != c.want {
			t.Fatalf("%q: want %q got %q", c.in, c.want, got)
		}
	}
}

func TestCleanText_AbsentWhenNothingLeft(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "   ", "***", "-.-", ": - :"} {
		if got, ok := CleanText(in); ok {
			t.Fatalf("%q: expected absent, got %q", in, got)
		}
	}
}

func TestCleanText_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"*** Concrete Works:",
		"* - 2x4 timber - *",
		"  NOTE:  see below ",
		"Excavation m3",
	}
	for _, in := range inputs {
		once, ok := CleanText(in)
		if !ok {
			continue
		}
		twice, ok := CleanText(once)
		if !ok || twice != once {
			t.Fatalf("%q: not idempotent: %q -> %q", in, once, twice)
		}
	}
}
