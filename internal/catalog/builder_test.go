package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderBuild(t *testing.T) {
	b := NewBuilder(nil)

	t.Run("drops rows without ISBN10", func(t *testing.T) {
		got := b.Build([]BookRow{
			{ISBN10: "", Title: "Orphan", Author: "Jane Doe"},
			{ISBN10: "   ", Title: "Whitespace Orphan", Author: "John Smith"},
			{ISBN10: "0000000001", Title: "Kept", Author: "Ann Lee"},
		})
		assert.Equal(t, []Book{{Isbn: "0000000001", Title: "Kept"}}, got.Books)
		// Authors from dropped rows never reach the registry.
		assert.Equal(t, []Author{{ID: 1, Name: "Ann Lee"}}, got.Authors)
		assert.Equal(t, []BookAuthorLink{{Isbn: "0000000001", AuthorID: 1}}, got.Links)
	})

	t.Run("duplicate ISBN keeps first title", func(t *testing.T) {
		got := b.Build([]BookRow{
			{ISBN10: "0000000001", Title: "First Title", Author: "Jane Doe"},
			{ISBN10: "0000000001", Title: "Second Title", Author: "John Smith"},
		})
		assert.Equal(t, []Book{{Isbn: "0000000001", Title: "First Title"}}, got.Books)
		// The duplicate row still contributes its author links.
		assert.Equal(t, []BookAuthorLink{
			{Isbn: "0000000001", AuthorID: 1},
			{Isbn: "0000000001", AuthorID: 2},
		}, got.Links)
	})

	t.Run("no duplicate links across casings", func(t *testing.T) {
		got := b.Build([]BookRow{
			{ISBN10: "0000000001", Title: "A", Author: "Jane Doe, jane doe"},
			{ISBN10: "0000000001", Title: "A", Author: "JANE DOE and John Smith"},
		})
		assert.Equal(t, []Author{
			{ID: 1, Name: "Jane Doe"},
			{ID: 2, Name: "John Smith"},
		}, got.Authors)
		assert.Equal(t, []BookAuthorLink{
			{Isbn: "0000000001", AuthorID: 1},
			{Isbn: "0000000001", AuthorID: 2},
		}, got.Links)
	})

	t.Run("author IDs follow first appearance across rows", func(t *testing.T) {
		got := b.Build([]BookRow{
			{ISBN10: "0000000001", Title: "A", Author: "Carol King"},
			{ISBN10: "0000000002", Title: "B", Author: "Alan Poe and Carol King"},
			{ISBN10: "0000000003", Title: "C", Author: "Bob Ross"},
		})
		assert.Equal(t, []Author{
			{ID: 1, Name: "Carol King"},
			{ID: 2, Name: "Alan Poe"},
			{ID: 3, Name: "Bob Ross"},
		}, got.Authors)
	})

	t.Run("normalizes every field", func(t *testing.T) {
		got := b.Build([]BookRow{
			{ISBN10: " 0000000001 ", Title: "  The\tTitle ", Author: " jane   doe "},
		})
		assert.Equal(t, []Book{{Isbn: "0000000001", Title: "The Title"}}, got.Books)
		assert.Equal(t, []Author{{ID: 1, Name: "Jane Doe"}}, got.Authors)
	})
}

func TestBuilderDeterministic(t *testing.T) {
	rows := []BookRow{
		{ISBN10: "0000000001", Title: "A", Author: "Jane Doe and John Smith"},
		{ISBN10: "0000000002", Title: "B", Author: "john smith; Ann Lee"},
		{ISBN10: "0000000003", Title: "C", Author: "ANN LEE & Jane Doe"},
	}
	b := NewBuilder(nil)
	first := b.Build(rows)
	second := b.Build(rows)
	assert.Equal(t, first, second)
}
