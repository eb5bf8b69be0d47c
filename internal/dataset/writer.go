package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV serializes d back to delimited form. The column set and row set
// match d exactly; numeric formatting may differ from the source bytes.
func WriteCSV(d *Dataset, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(d.columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range d.rows {
		if err := cw.Write(r); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
