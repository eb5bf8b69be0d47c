package dataset

// EmptySelectionPolicy decides what an empty country selection means.
type EmptySelectionPolicy int

const (
	// EmptySelectsAll returns the full dataset for an empty selection.
	// This is the default: it matches the "All" behavior of the original
	// dashboards and is the only policy under which a first render with
	// no selection shows data.
	EmptySelectsAll EmptySelectionPolicy = iota
	// EmptySelectsNone returns zero rows for an empty selection.
	EmptySelectsNone
)

// Filter restricts d to the records whose Country value is a member of
// selection. Matching is exact-string; no case folding, no partial match.
// The result preserves the original row order. When the Country column is
// absent and the selection is non-empty, the result has zero rows.
func Filter(d *Dataset, selection []string, policy EmptySelectionPolicy) *Dataset {
	if len(selection) == 0 {
		if policy == EmptySelectsNone {
			return New(d.columns, nil)
		}
		return New(d.columns, d.rows)
	}

	member := make(map[string]struct{}, len(selection))
	for _, c := range selection {
		member[c] = struct{}{}
	}

	ci, ok := d.index[ColCountry]
	rows := make([][]string, 0, len(d.rows))
	if ok {
		for _, r := range d.rows {
			if _, hit := member[r[ci]]; hit {
				rows = append(rows, r)
			}
		}
	}
	return New(d.columns, rows)
}
