package dataset

import "strings"

// Clean normalizes a raw Dataset: column names and identity values
// (Country/City, when those columns exist) are trimmed, and rows missing an
// identifying field or any present indicator value are dropped. Trimming
// the identity cells keeps Countries() listings matching Filter selections
// exactly. Columns are never dropped and missing values are never imputed,
// so Clean(Clean(d)) == Clean(d).
func Clean(d *Dataset) *Dataset {
	cols := make([]string, len(d.columns))
	for i, c := range d.columns {
		cols[i] = strings.TrimSpace(c)
	}

	required := make([]int, 0, 2+len(IndicatorColumns))
	for _, name := range []string{ColCountry, ColCity} {
		if i, ok := indexOf(cols, name); ok {
			required = append(required, i)
		}
	}
	indicators := make([]int, 0, len(IndicatorColumns))
	for _, name := range IndicatorColumns {
		if i, ok := indexOf(cols, name); ok {
			indicators = append(indicators, i)
		}
	}

	rows := make([][]string, 0, len(d.rows))
	for _, r := range d.rows {
		if hasBlank(r, required) || hasBlank(r, indicators) {
			continue
		}
		// Copy before trimming so the source snapshot stays untouched.
		row := make([]string, len(r))
		copy(row, r)
		for _, i := range required {
			row[i] = strings.TrimSpace(row[i])
		}
		rows = append(rows, row)
	}
	return New(cols, rows)
}

func indexOf(cols []string, name string) (int, bool) {
	for i, c := range cols {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

func hasBlank(row []string, idx []int) bool {
	for _, i := range idx {
		if i >= len(row) || strings.TrimSpace(row[i]) == "" {
			return true
		}
	}
	return false
}
