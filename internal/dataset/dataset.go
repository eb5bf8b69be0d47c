package dataset

import (
	"strconv"
	"strings"
)

// Well-known column names of the cost-of-living schema.
const (
	ColCountry = "Country"
	ColCity    = "City"

	ColCostOfLiving    = "Cost of Living Index"
	ColRent            = "Rent Index"
	ColGroceries       = "Groceries Index"
	ColRestaurantPrice = "Restaurant Price Index"
	ColPurchasingPower = "Local Purchasing Power Index"
)

// IndicatorColumns is the fixed set of numeric indices the pipeline cares
// about. Only those actually present in a file are checked or aggregated.
var IndicatorColumns = []string{
	ColCostOfLiving,
	ColRent,
	ColGroceries,
	ColRestaurantPrice,
	ColPurchasingPower,
}

// Dataset is an ordered, immutable snapshot of a tabular source. Pipeline
// stages never mutate a Dataset they received; they build a new one.
type Dataset struct {
	columns []string
	index   map[string]int // column name -> position
	rows    [][]string
}

// New builds a Dataset from a header and rows. Short rows are padded so
// every row has one cell per column.
func New(columns []string, rows [][]string) *Dataset {
	cols := make([]string, len(columns))
	copy(cols, columns)
	idx := make(map[string]int, len(cols))
	for i, c := range cols {
		idx[c] = i
	}
	normalized := make([][]string, 0, len(rows))
	for _, r := range rows {
		if len(r) < len(cols) {
			padded := make([]string, len(cols))
			copy(padded, r)
			r = padded
		}
		normalized = append(normalized, r)
	}
	return &Dataset{columns: cols, index: idx, rows: normalized}
}

// Columns returns a copy of the column names in file order.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.columns))
	copy(out, d.columns)
	return out
}

// NumRows reports the number of records.
func (d *Dataset) NumRows() int { return len(d.rows) }

// NumColumns reports the number of columns.
func (d *Dataset) NumColumns() int { return len(d.columns) }

// HasColumn reports whether the named column exists in the schema.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Cell returns the raw value at (row, column name). The second return is
// false when the column does not exist.
func (d *Dataset) Cell(row int, column string) (string, bool) {
	i, ok := d.index[column]
	if !ok || row < 0 || row >= len(d.rows) {
		return "", false
	}
	return d.rows[row][i], true
}

// Float returns the numeric value at (row, column name). Empty cells and
// unparsable values report ok=false.
func (d *Dataset) Float(row int, column string) (float64, bool) {
	v, ok := d.Cell(row, column)
	if !ok {
		return 0, false
	}
	return parseFloat(v)
}

// Row returns a copy of the record at the given position.
func (d *Dataset) Row(row int) []string {
	out := make([]string, len(d.columns))
	copy(out, d.rows[row])
	return out
}

// Countries returns the distinct country values in first-appearance order.
// Returns nil when the Country column is absent.
func (d *Dataset) Countries() []string {
	i, ok := d.index[ColCountry]
	if !ok {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, r := range d.rows {
		c := strings.TrimSpace(r[i])
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// PresentIndicators returns the indicator columns that exist in the schema.
func (d *Dataset) PresentIndicators() []string {
	var out []string
	for _, c := range IndicatorColumns {
		if d.HasColumn(c) {
			out = append(out, c)
		}
	}
	return out
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	// Tolerate thousands separators as written by common exports.
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
