package dataset

import (
	"errors"
	"fmt"
)

// ErrDataUnavailable indicates the source file does not exist. Commands
// report it and stop; nothing downstream runs on a degenerate dataset.
var ErrDataUnavailable = errors.New("dataset unavailable")

// ErrDataMalformed indicates the source parsed to nothing usable (no
// columns, or an unreadable structure).
var ErrDataMalformed = errors.New("dataset malformed")

// ColumnMissingError indicates an expected column is absent. It degrades
// the dependent view only; the rest of the pipeline keeps working.
type ColumnMissingError struct {
	Column string
}

func (e *ColumnMissingError) Error() string {
	return fmt.Sprintf("column %q not present in dataset", e.Column)
}

// IsColumnMissing reports whether err is a ColumnMissingError.
func IsColumnMissing(err error) bool {
	var cm *ColumnMissingError
	return errors.As(err, &cm)
}
