// Package source reads the raw tabular inputs. Columns are addressed
// by header name (case-insensitively), every value is read as a plain
// string, and a column missing from the file simply reads as empty —
// the builders own all further interpretation.
package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"libraryetl/internal/borrower"
	"libraryetl/internal/catalog"
)

// ReadBooks reads the tab-separated book catalog export.
func ReadBooks(path string) ([]catalog.BookRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open book source: %w", err)
	}
	defer f.Close()

	rows, err := ParseBooks(f)
	if err != nil {
		return nil, fmt.Errorf("parse book source %s: %w", path, err)
	}
	return rows, nil
}

// ParseBooks parses the catalog from r. The source is tab-separated
// with a header row carrying at least ISBN10, Title and Author.
func ParseBooks(r io.Reader) ([]catalog.BookRow, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	cols, records, err := readAll(cr)
	if err != nil {
		return nil, err
	}

	rows := make([]catalog.BookRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, catalog.BookRow{
			ISBN10: cols.get(rec, "isbn10"),
			Title:  cols.get(rec, "title"),
			Author: cols.get(rec, "author"),
		})
	}
	return rows, nil
}

// ReadBorrowers reads the comma-separated borrower roster.
func ReadBorrowers(path string) ([]borrower.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open borrower source: %w", err)
	}
	defer f.Close()

	rows, err := ParseBorrowers(f)
	if err != nil {
		return nil, fmt.Errorf("parse borrower source %s: %w", path, err)
	}
	return rows, nil
}

// ParseBorrowers parses the roster from r. The card-id column appears
// both as "id" and as the legacy "ID0000id" header; both are accepted.
func ParseBorrowers(r io.Reader) ([]borrower.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	cols, records, err := readAll(cr)
	if err != nil {
		return nil, err
	}

	cardCol := "id"
	if !cols.has(cardCol) {
		cardCol = "id0000id"
	}

	rows := make([]borrower.Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, borrower.Row{
			CardID:    cols.get(rec, cardCol),
			FirstName: cols.get(rec, "first_name"),
			LastName:  cols.get(rec, "last_name"),
			Address:   cols.get(rec, "address"),
			City:      cols.get(rec, "city"),
			State:     cols.get(rec, "state"),
			Phone:     cols.get(rec, "phone"),
			SSN:       cols.get(rec, "ssn"),
		})
	}
	return rows, nil
}

// columns maps lower-cased header names to field positions.
type columns map[string]int

func (c columns) has(name string) bool {
	_, ok := c[name]
	return ok
}

func (c columns) get(rec []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}

func readAll(cr *csv.Reader) (columns, [][]string, error) {
	header, err := cr.Read()
	if err == io.EOF {
		return columns{}, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(columns, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var records [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read record: %w", err)
		}
		records = append(records, rec)
	}
	return cols, records, nil
}
