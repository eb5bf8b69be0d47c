package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/KaramelBytes/costview-cli/internal/dataset"
)

// SQLiteWriter writes a dataset snapshot into an embedded SQLite database
// so downstream tools can query the filtered table with SQL. Indicator
// columns are stored as REAL, everything else as TEXT.
type SQLiteWriter struct {
	db    *sql.DB
	table string
}

// NewSQLiteWriter opens (or creates) the database file at path.
func NewSQLiteWriter(path string) (*SQLiteWriter, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}
	return &SQLiteWriter{db: db, table: "records"}, nil
}

// Write replaces the records table with the snapshot's rows.
func (w *SQLiteWriter) Write(d *dataset.Dataset) error {
	cols := d.Columns()
	if len(cols) == 0 {
		return fmt.Errorf("sqlite: snapshot has no columns")
	}

	numeric := make(map[string]bool, len(dataset.IndicatorColumns))
	for _, c := range dataset.IndicatorColumns {
		numeric[c] = true
	}

	defs := make([]string, len(cols))
	marks := make([]string, len(cols))
	for i, c := range cols {
		kind := "TEXT"
		if numeric[c] {
			kind = "REAL"
		}
		defs[i] = fmt.Sprintf("%q %s", c, kind)
		marks[i] = "?"
	}

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %q", w.table)); err != nil {
		return fmt.Errorf("sqlite: drop table: %w", err)
	}
	create := fmt.Sprintf("CREATE TABLE %q (%s)", w.table, strings.Join(defs, ", "))
	if _, err := tx.Exec(create); err != nil {
		return fmt.Errorf("sqlite: create table: %w", err)
	}

	insert := fmt.Sprintf("INSERT INTO %q VALUES (%s)", w.table, strings.Join(marks, ", "))
	stmt, err := tx.Prepare(insert)
	if err != nil {
		return fmt.Errorf("sqlite: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < d.NumRows(); i++ {
		row := d.Row(i)
		args := make([]any, len(cols))
		for j, c := range cols {
			if numeric[c] {
				if v, ok := d.Float(i, c); ok {
					args[j] = v
					continue
				}
				args[j] = nil
				continue
			}
			args[j] = row[j]
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("sqlite: insert row %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit: %w", err)
	}
	return nil
}

// Close closes the database handle.
func (w *SQLiteWriter) Close() error { return w.db.Close() }
