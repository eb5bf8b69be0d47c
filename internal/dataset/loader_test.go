package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

var sampleRows = []string{
	"Country,City,Cost of Living Index,Rent Index,Groceries Index,Restaurant Price Index,Local Purchasing Power Index",
	"Switzerland,Zurich,131.2,63.5,135.4,122.3,118.9",
	"Switzerland,Geneva,125.0,60.1,129.8,119.7,112.4",
	"Norway,Oslo,104.5,45.2,103.1,98.6,88.3",
	"Norway,Bergen,98.7,40.9,99.5,95.2,84.1",
	"India,Mumbai,25.1,12.4,28.9,22.7,55.8",
}

func writeSample(t *testing.T, rows []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "indices.csv")
	if err := os.WriteFile(path, []byte(strings.Join(rows, "\n")), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeSample(t, sampleRows)
	ds, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := ds.NumRows(); got != 5 {
		t.Fatalf("NumRows = %d, want 5", got)
	}
	if got := ds.NumColumns(); got != 7 {
		t.Fatalf("NumColumns = %d, want 7", got)
	}
	v, ok := ds.Float(0, ColCostOfLiving)
	if !ok || v != 131.2 {
		t.Fatalf("Float(0, cost) = %v, %v; want 131.2, true", v, ok)
	}
	countries := ds.Countries()
	want := []string{"Switzerland", "Norway", "India"}
	if len(countries) != len(want) {
		t.Fatalf("Countries = %v, want %v", countries, want)
	}
	for i := range want {
		if countries[i] != want[i] {
			t.Fatalf("Countries[%d] = %q, want %q", i, countries[i], want[i])
		}
	}
}

func TestLoadStripsByteOrderMark(t *testing.T) {
	rows := append([]string(nil), sampleRows...)
	rows[0] = "\ufeff" + rows[0]
	path := writeSample(t, rows)
	ds, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ds.HasColumn(ColCountry) {
		t.Fatalf("byte order mark hides first column: %v", ds.Columns())
	}
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "indices.xlsx")
	wb := excelize.NewFile()
	defer wb.Close()
	sheet := wb.GetSheetName(0)
	for i, line := range sampleRows {
		cells := strings.Split(line, ",")
		row := make([]any, len(cells))
		for j, c := range cells {
			row[j] = c
		}
		anchor, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := wb.SetSheetRow(sheet, anchor, &row); err != nil {
			t.Fatalf("set row %d: %v", i+1, err)
		}
	}
	if err := wb.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}

	fromXLSX, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load xlsx: %v", err)
	}
	fromCSV, err := Load(writeSample(t, sampleRows), Options{})
	if err != nil {
		t.Fatalf("Load csv: %v", err)
	}

	// Both sources carry the same data, so the Dataset shape must match.
	if fromXLSX.NumRows() != fromCSV.NumRows() {
		t.Fatalf("NumRows = %d, want %d", fromXLSX.NumRows(), fromCSV.NumRows())
	}
	if fromXLSX.NumColumns() != fromCSV.NumColumns() {
		t.Fatalf("NumColumns = %d, want %d", fromXLSX.NumColumns(), fromCSV.NumColumns())
	}
	if v, ok := fromXLSX.Float(0, ColCostOfLiving); !ok || v != 131.2 {
		t.Fatalf("Float(0, cost) = %v, %v; want 131.2, true", v, ok)
	}
	wantCountries := fromCSV.Countries()
	gotCountries := fromXLSX.Countries()
	if len(gotCountries) != len(wantCountries) {
		t.Fatalf("Countries = %v, want %v", gotCountries, wantCountries)
	}
	for i := range wantCountries {
		if gotCountries[i] != wantCountries[i] {
			t.Fatalf("Countries[%d] = %q, want %q", i, gotCountries[i], wantCountries[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), Options{})
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("err = %v, want ErrDataUnavailable", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	_, err := Load(path, Options{})
	if !errors.Is(err, ErrDataMalformed) {
		t.Fatalf("err = %v, want ErrDataMalformed", err)
	}
}

func TestLoadSemicolonDelimiter(t *testing.T) {
	rows := []string{
		"Country;City;Cost of Living Index",
		"Norway;Oslo;104.5",
	}
	path := writeSample(t, rows)
	ds, err := Load(path, Options{Delimiter: ';'})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := ds.NumColumns(); got != 3 {
		t.Fatalf("NumColumns = %d, want 3", got)
	}
	if v, ok := ds.Cell(0, ColCity); !ok || v != "Oslo" {
		t.Fatalf("Cell city = %q, %v", v, ok)
	}
}

func TestCacheReloadsOnChange(t *testing.T) {
	path := writeSample(t, sampleRows)
	cache := NewCache(path, Options{})

	first, err := cache.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	again, err := cache.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if first != again {
		t.Fatal("unchanged file should return the cached snapshot")
	}

	updated := append(append([]string(nil), sampleRows...),
		"Japan,Tokyo,83.1,38.7,90.2,60.4,92.5")
	if err := os.WriteFile(path, []byte(strings.Join(updated, "\n")), 0o644); err != nil {
		t.Fatalf("rewrite fixture: %v", err)
	}
	// Force a visible mtime difference on coarse-grained filesystems.
	if err := os.Chtimes(path, time.Now(), time.Now().Add(2*time.Second)); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	reloaded, err := cache.Get()
	if err != nil {
		t.Fatalf("Get after change: %v", err)
	}
	if reloaded == first {
		t.Fatal("changed file should invalidate the cache")
	}
	if got := reloaded.NumRows(); got != 6 {
		t.Fatalf("reloaded NumRows = %d, want 6", got)
	}
	// The original snapshot is untouched by the reload.
	if got := first.NumRows(); got != 5 {
		t.Fatalf("original snapshot NumRows = %d, want 5", got)
	}
}

func TestCacheMissingFile(t *testing.T) {
	cache := NewCache(filepath.Join(t.TempDir(), "gone.csv"), Options{})
	if _, err := cache.Get(); !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("err = %v, want ErrDataUnavailable", err)
	}
}
