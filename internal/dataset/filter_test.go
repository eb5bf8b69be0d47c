package dataset

import (
	"bytes"
	"strings"
	"testing"
)

func fourCountryDataset() *Dataset {
	return New(
		[]string{"Country", "City", "Cost of Living Index"},
		[][]string{
			{"Switzerland", "Zurich", "131.2"},
			{"Norway", "Oslo", "104.5"},
			{"Switzerland", "Geneva", "125.0"},
			{"India", "Mumbai", "25.1"},
		},
	)
}

func TestFilterExactMatch(t *testing.T) {
	d := fourCountryDataset()
	got := Filter(d, []string{"Switzerland"}, EmptySelectsAll)
	if got.NumRows() != 2 {
		t.Fatalf("NumRows = %d, want 2", got.NumRows())
	}
	// Original order is preserved: Zurich before Geneva.
	if c, _ := got.Cell(0, ColCity); c != "Zurich" {
		t.Fatalf("row 0 city = %q, want Zurich", c)
	}
	if c, _ := got.Cell(1, ColCity); c != "Geneva" {
		t.Fatalf("row 1 city = %q, want Geneva", c)
	}
}

func TestFilterNoCaseFolding(t *testing.T) {
	d := fourCountryDataset()
	if got := Filter(d, []string{"switzerland"}, EmptySelectsAll); got.NumRows() != 0 {
		t.Fatalf("lowercase selection matched %d rows, want 0", got.NumRows())
	}
}

func TestFilterAbsentCountry(t *testing.T) {
	d := fourCountryDataset()
	if got := Filter(d, []string{"Atlantis"}, EmptySelectsAll); got.NumRows() != 0 {
		t.Fatalf("absent country matched %d rows, want 0", got.NumRows())
	}
}

func TestFilterEmptySelectionPolicies(t *testing.T) {
	d := fourCountryDataset()

	all := Filter(d, nil, EmptySelectsAll)
	if all.NumRows() != d.NumRows() {
		t.Fatalf("EmptySelectsAll rows = %d, want %d", all.NumRows(), d.NumRows())
	}
	// Identical content to the input under the "all" policy.
	var a, b bytes.Buffer
	if err := WriteCSV(d, &a); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if err := WriteCSV(all, &b); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if a.String() != b.String() {
		t.Fatal("EmptySelectsAll should return the dataset unchanged")
	}

	none := Filter(d, nil, EmptySelectsNone)
	if none.NumRows() != 0 {
		t.Fatalf("EmptySelectsNone rows = %d, want 0", none.NumRows())
	}
	if none.NumColumns() != d.NumColumns() {
		t.Fatalf("EmptySelectsNone should keep the schema, got %d columns", none.NumColumns())
	}
}

func TestFilterMultiSelectPreservesSubsequence(t *testing.T) {
	d := fourCountryDataset()
	got := Filter(d, []string{"India", "Norway"}, EmptySelectsAll)
	if got.NumRows() != 2 {
		t.Fatalf("NumRows = %d, want 2", got.NumRows())
	}
	// Dataset order, not selection order.
	if c, _ := got.Cell(0, ColCountry); c != "Norway" {
		t.Fatalf("row 0 = %q, want Norway", c)
	}
	if c, _ := got.Cell(1, ColCountry); c != "India" {
		t.Fatalf("row 1 = %q, want India", c)
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	d := fourCountryDataset()
	var buf bytes.Buffer
	if err := WriteCSV(d, &buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	again, err := ReadCSV(strings.NewReader(buf.String()), ',')
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if again.NumRows() != d.NumRows() || again.NumColumns() != d.NumColumns() {
		t.Fatalf("round trip shape = %dx%d, want %dx%d",
			again.NumRows(), again.NumColumns(), d.NumRows(), d.NumColumns())
	}
}
