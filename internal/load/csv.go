package load

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"libraryetl/internal/borrower"
	"libraryetl/internal/catalog"
)

// The CSV readers here consume the normalize step's own output.
// Columns are addressed by header name, like the raw source readers:
// a missing column reads as empty rather than failing the load. Only
// an Author_id that does not parse as an integer is fatal.

func readBookCSV(path string) ([]catalog.Book, error) {
	records, cols, err := readTable(path)
	if err != nil {
		return nil, err
	}
	books := make([]catalog.Book, 0, len(records))
	for _, rec := range records {
		books = append(books, catalog.Book{
			Isbn:  field(rec, cols, "isbn"),
			Title: field(rec, cols, "title"),
		})
	}
	return books, nil
}

func readAuthorsCSV(path string) ([]catalog.Author, error) {
	records, cols, err := readTable(path)
	if err != nil {
		return nil, err
	}
	authors := make([]catalog.Author, 0, len(records))
	for i, rec := range records {
		id, err := strconv.Atoi(field(rec, cols, "author_id"))
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad Author_id: %w", path, i+1, err)
		}
		authors = append(authors, catalog.Author{
			ID:   id,
			Name: field(rec, cols, "name"),
		})
	}
	return authors, nil
}

func readBookAuthorsCSV(path string) ([]catalog.BookAuthorLink, error) {
	records, cols, err := readTable(path)
	if err != nil {
		return nil, err
	}
	links := make([]catalog.BookAuthorLink, 0, len(records))
	for i, rec := range records {
		id, err := strconv.Atoi(field(rec, cols, "author_id"))
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad Author_id: %w", path, i+1, err)
		}
		links = append(links, catalog.BookAuthorLink{
			Isbn:     field(rec, cols, "isbn"),
			AuthorID: id,
		})
	}
	return links, nil
}

func readBorrowerCSV(path string) ([]borrower.Borrower, error) {
	records, cols, err := readTable(path)
	if err != nil {
		return nil, err
	}
	borrowers := make([]borrower.Borrower, 0, len(records))
	for _, rec := range records {
		borrowers = append(borrowers, borrower.Borrower{
			CardID:  field(rec, cols, "card_id"),
			Bname:   field(rec, cols, "bname"),
			Address: field(rec, cols, "address"),
			Phone:   field(rec, cols, "phone"),
			SSN:     field(rec, cols, "ssn"),
		})
	}
	return borrowers, nil
}

// readTable reads a header-addressed CSV. A missing file propagates
// os.ErrNotExist so the caller can treat it as a skip.
func readTable(path string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, map[string]int{}, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read %s header: %w", path, err)
	}
	cols := make(map[string]int, len(header))
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
			return nil, nil, fmt.Errorf("read %s: %w", path, err)
		}
		records = append(records, rec)
	}
	return records, cols, nil
}

func field(rec []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}
