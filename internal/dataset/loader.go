package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DefaultSourcePath is consulted when no override file is supplied.
const DefaultSourcePath = "Cost_of_Living_Index_2022.csv"

// Options controls loading behavior.
type Options struct {
	// Delimiter for CSV. If 0, sniffed from the filename (tsv -> tab).
	Delimiter rune
}

// Load reads a CSV/TSV or XLSX file into a Dataset. A missing file yields
// ErrDataUnavailable; a file that parses to zero columns yields
// ErrDataMalformed.
func Load(path string, opt Options) (*Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, path)
		}
		return nil, fmt.Errorf("stat source: %w", err)
	}
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return loadXLSX(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()
	return ReadCSV(f, delimiterFor(path, opt))
}

// ReadCSV parses delimited data from r into a Dataset.
func ReadCSV(r io.Reader, delim rune) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	if delim != 0 {
		cr.Comma = delim
	}

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: no header row", ErrDataMalformed)
		}
		return nil, fmt.Errorf("%w: read header: %v", ErrDataMalformed, err)
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("%w: zero columns", ErrDataMalformed)
	}
	header[0] = strings.TrimPrefix(header[0], "\uFEFF")

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: read row %d: %v", ErrDataMalformed, len(rows)+2, err)
		}
		row := make([]string, len(rec))
		copy(row, rec)
		rows = append(rows, row)
	}
	return New(header, rows), nil
}

func loadXLSX(path string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open xlsx: %v", ErrDataMalformed, err)
	}
	defer f.Close()
	return datasetFromWorkbook(f)
}

// ReadXLSX parses workbook data from r (first sheet) into a Dataset.
func ReadXLSX(r io.Reader) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: open xlsx: %v", ErrDataMalformed, err)
	}
	defer f.Close()
	return datasetFromWorkbook(f)
}

func datasetFromWorkbook(f *excelize.File) (*Dataset, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrDataMalformed)
	}
	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", ErrDataMalformed, sheets[0], err)
	}
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", ErrDataMalformed, sheets[0])
	}
	return New(cells[0], cells[1:]), nil
}

func delimiterFor(path string, opt Options) rune {
	if opt.Delimiter != 0 {
		return opt.Delimiter
	}
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}
