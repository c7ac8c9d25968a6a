package parser

import "testing"

func TestFindColumns_Standard(t *testing.T) {
	t.Parallel()

	cols := FindColumns([]string{"Item", "Unit", "National Price", "SA Price"})
	if cols.Item != 0 || cols.Unit != 1 || cols.National != 2 || cols.SA != 3 {
		t.Fatalf("unexpected columns: %+v", cols)
	}
	if !cols.Valid() {
		t.Fatalf("expected valid columns")
	}
}

func TestFindColumns_CaseInsensitiveContains(t *testing.T) {
	t.Parallel()

	cols := FindColumns([]string{"", "DESCRIPTION OF ITEM", " unit of measure ", "NATIONAL rate", "sa rate"})
	if cols.Item != 1 || cols.Unit != 2 || cols.National != 3 || cols.SA != 4 {
		t.Fatalf("unexpected columns: %+v", cols)
	}
}

func TestFindColumns_MissingRequired(t *testing.T) {
	t.Parallel()

	cols := FindColumns([]string{"Description", "Rate", "Amount"})
	if cols.Valid() {
		t.Fatalf("expected invalid columns: %+v", cols)
	}
	if cols.Item != -1 || cols.Unit != -1 {
		t.Fatalf("unexpected columns: %+v", cols)
	}
}

func TestGetCell_OutOfRange(t *testing.T) {
	t.Parallel()

	row := []string{" a ", "b"}
	if got := GetCell(row, 0); got != "a" {
		t.Fatalf("want a got %q", got)
	}
	if got := GetCell(row, 5); got != "" {
		t.Fatalf("out of range: want empty got %q", got)
	}
	if got := GetCell(row, -1); got != "" {
		t.Fatalf("negative index: want empty got %q", got)
	}
}
