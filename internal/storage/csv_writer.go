package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/KaramelBytes/costview-cli/internal/dataset"
)

// CSVWriter writes a dataset snapshot to a CSV file. Intermediate
// directories are created automatically.
type CSVWriter struct {
	path string
	file *os.File
}

// NewCSVWriter creates (or truncates) the file at path.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("csv: create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}
	return &CSVWriter{path: path, file: f}, nil
}

// Write serializes the snapshot; the row and column sets match d exactly.
func (w *CSVWriter) Write(d *dataset.Dataset) error {
	if err := dataset.WriteCSV(d, w.file); err != nil {
		return fmt.Errorf("csv: write snapshot: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (w *CSVWriter) Close() error { return w.file.Close() }
