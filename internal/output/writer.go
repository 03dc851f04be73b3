// Package output writes the normalized tables as CSV files, one file
// per table, in the column order the loader expects.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"libraryetl/internal/borrower"
	"libraryetl/internal/catalog"
)

// Output file names, shared with the loader.
const (
	BookFile        = "book.csv"
	AuthorsFile     = "authors.csv"
	BookAuthorsFile = "book_authors.csv"
	BorrowerFile    = "borrower.csv"
)

// Writer writes tables into a single output directory.
type Writer struct {
	Dir string
}

// New creates a Writer targeting dir, creating it if needed. An empty
// dir defaults to the current working directory.
func New(dir string) (*Writer, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Writer{Dir: dir}, nil
}

// WriteAll writes all four tables.
func (w *Writer) WriteAll(t catalog.Tables, borrowers []borrower.Borrower) error {
	if err := w.WriteBooks(t.Books); err != nil {
		return err
	}
	if err := w.WriteAuthors(t.Authors); err != nil {
		return err
	}
	if err := w.WriteBookAuthors(t.Links); err != nil {
		return err
	}
	return w.WriteBorrowers(borrowers)
}

func (w *Writer) WriteBooks(books []catalog.Book) error {
	records := make([][]string, len(books))
	for i, b := range books {
		records[i] = []string{b.Isbn, b.Title}
	}
	return w.writeFile(BookFile, []string{"Isbn", "Title"}, records)
}

func (w *Writer) WriteAuthors(authors []catalog.Author) error {
	records := make([][]string, len(authors))
	for i, a := range authors {
		records[i] = []string{strconv.Itoa(a.ID), a.Name}
	}
	return w.writeFile(AuthorsFile, []string{"Author_id", "Name"}, records)
}

func (w *Writer) WriteBookAuthors(links []catalog.BookAuthorLink) error {
	records := make([][]string, len(links))
	for i, l := range links {
		records[i] = []string{l.Isbn, strconv.Itoa(l.AuthorID)}
	}
	return w.writeFile(BookAuthorsFile, []string{"Isbn", "Author_id"}, records)
}

func (w *Writer) WriteBorrowers(borrowers []borrower.Borrower) error {
	records := make([][]string, len(borrowers))
	for i, b := range borrowers {
		records[i] = []string{b.CardID, b.Bname, b.Address, b.Phone, b.SSN}
	}
	return w.writeFile(BorrowerFile, []string{"Card_id", "Bname", "Address", "Phone", "Ssn"}, records)
}

func (w *Writer) writeFile(name string, header []string, records [][]string) error {
	path := filepath.Join(w.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write %s header: %w", path, err)
	}
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
