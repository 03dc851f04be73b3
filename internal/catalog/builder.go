package catalog

import (
	"io"
	"log/slog"

	"libraryetl/internal/clean"
)

// Builder builds the book, authors and book_authors tables from raw
// catalog rows. Each Build call owns a fresh author registry, so IDs
// are deterministic for a fixed input ordering.
type Builder struct {
	log *slog.Logger
}

// NewBuilder returns a Builder. A nil logger discards log output.
func NewBuilder(log *slog.Logger) *Builder {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Builder{log: log}
}

// Build normalizes every field, drops rows without an ISBN10, and
// produces the three tables. Duplicate ISBNs keep the first-seen row;
// duplicate (Isbn, AuthorID) pairs collapse to one link even when the
// same author appears in several raw phrasings.
func (b *Builder) Build(rows []BookRow) Tables {
	reg := NewRegistry()
	seenISBN := make(map[string]struct{}, len(rows))
	seenLink := make(map[BookAuthorLink]struct{})

	var t Tables
	for _, row := range rows {
		isbn := clean.Whitespace(row.ISBN10)
		title := clean.Whitespace(row.Title)
		author := clean.Whitespace(row.Author)

		if isbn == "" {
			b.log.Info("dropping book row without ISBN10", "title", title)
			continue
		}

		if _, dup := seenISBN[isbn]; dup {
			b.log.Debug("duplicate ISBN, keeping first occurrence", "isbn", isbn)
		} else {
			seenISBN[isbn] = struct{}{}
			t.Books = append(t.Books, Book{Isbn: isbn, Title: title})
		}

		// Author links are still collected from duplicate-ISBN rows;
		// only the book projection is first-wins.
		for _, name := range SplitAuthors(author) {
			id, _ := reg.Resolve(name)
			link := BookAuthorLink{Isbn: isbn, AuthorID: id}
			if _, dup := seenLink[link]; dup {
				continue
			}
			seenLink[link] = struct{}{}
			t.Links = append(t.Links, link)
		}
	}

	t.Authors = reg.Authors()
	return t
}
