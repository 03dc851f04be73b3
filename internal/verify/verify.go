// Package verify reports post-load row counts of the four target
// tables, the sanity check run after every bulk load.
package verify

import (
	"context"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"libraryetl/internal/load"
)

// Counter exposes the row counts of the loaded tables.
type Counter interface {
	Counts(ctx context.Context) (load.Counts, error)
}

// Report holds the collected counts.
type Report struct {
	Counts load.Counts
}

// Collect queries the current row counts.
func Collect(ctx context.Context, c Counter) (Report, error) {
	counts, err := c.Counts(ctx)
	if err != nil {
		return Report{}, err
	}
	return Report{Counts: counts}, nil
}

// FormatTable renders the report as an aligned two-column text table.
func (r Report) FormatTable() string {
	rows := [][2]string{
		{"table", "rows"},
		{"book", strconv.Itoa(r.Counts.Books)},
		{"authors", strconv.Itoa(r.Counts.Authors)},
		{"book_authors", strconv.Itoa(r.Counts.Links)},
		{"borrower", strconv.Itoa(r.Counts.Borrowers)},
	}

	nameWidth := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row[0]); w > nameWidth {
			nameWidth = w
		}
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(row[0])
		b.WriteString(strings.Repeat(" ", nameWidth-runewidth.StringWidth(row[0])+2))
		b.WriteString(row[1])
		b.WriteByte('\n')
	}
	return b.String()
}
