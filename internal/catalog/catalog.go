// Package catalog turns raw book catalog rows into the three
// relational tables the loader consumes: book, authors and the
// many-to-many book_authors link table.
package catalog

// BookRow is one raw row of the catalog source, exactly as read.
// Fields may be empty when the source column is blank or absent.
type BookRow struct {
	ISBN10 string
	Title  string
	Author string
}

// Book is one row of the book table, keyed by ISBN.
type Book struct {
	Isbn  string
	Title string
}

// Author is one row of the authors table. IDs are dense, 1-based and
// assigned in first-seen order across the whole input.
type Author struct {
	ID   int
	Name string
}

// BookAuthorLink is one row of the book_authors link table.
type BookAuthorLink struct {
	Isbn     string
	AuthorID int
}

// Tables is the full output of one catalog build.
type Tables struct {
	Books   []Book
	Authors []Author
	Links   []BookAuthorLink
}
