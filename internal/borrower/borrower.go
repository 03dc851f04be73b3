// Package borrower turns raw borrower roster rows into the borrower
// table consumed by the loader.
package borrower

import (
	"io"
	"log/slog"
	"strings"

	"libraryetl/internal/clean"
)

// Row is one raw roster row as read from the source. Fields may be
// empty when the source column is blank or absent.
type Row struct {
	CardID    string
	FirstName string
	LastName  string
	Address   string
	City      string
	State     string
	Phone     string
	SSN       string
}

// Borrower is one row of the borrower table, keyed by CardID.
type Borrower struct {
	CardID  string
	Bname   string
	Address string
	Phone   string
	SSN     string
}

// Builder composes the borrower table from raw roster rows.
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

// Build normalizes every field, composes display name and address,
// strips hyphens from the SSN and de-duplicates on card ID, keeping
// the first occurrence.
func (b *Builder) Build(rows []Row) []Borrower {
	seen := make(map[string]struct{}, len(rows))
	out := make([]Borrower, 0, len(rows))

	for _, row := range rows {
		cardID := clean.Whitespace(row.CardID)
		if _, dup := seen[cardID]; dup {
			b.log.Debug("duplicate card ID, keeping first occurrence", "card_id", cardID)
			continue
		}
		seen[cardID] = struct{}{}

		// Each name part is cased on its own: "jane" + "DOE" must come
		// out as "Jane Doe", while a mixed-case part like "McDonald"
		// keeps its casing.
		first := clean.TitleCase(row.FirstName)
		last := clean.TitleCase(row.LastName)
		bname := strings.TrimSpace(first + " " + last)

		street := clean.Whitespace(row.Address)
		city := clean.Whitespace(row.City)
		state := clean.Whitespace(row.State)
		address := strings.Trim(street+", "+city+", "+state, " ,")

		out = append(out, Borrower{
			CardID:  cardID,
			Bname:   bname,
			Address: address,
			Phone:   clean.Whitespace(row.Phone),
			SSN:     strings.ReplaceAll(clean.Whitespace(row.SSN), "-", ""),
		})
	}
	return out
}
