package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryetl/internal/borrower"
	"libraryetl/internal/catalog"
)

func TestParseBooks(t *testing.T) {
	t.Run("maps columns by header name", func(t *testing.T) {
		in := "ISBN10\tTitle\tAuthor\n" +
			"0000000001\tThe Title\tJane Doe\n" +
			"\tNo ISBN\tJohn Smith\n"
		rows, err := ParseBooks(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, []catalog.BookRow{
			{ISBN10: "0000000001", Title: "The Title", Author: "Jane Doe"},
			{ISBN10: "", Title: "No ISBN", Author: "John Smith"},
		}, rows)
	})

	t.Run("extra columns ignored, missing column reads empty", func(t *testing.T) {
		in := "ISBN13\tISBN10\tTitle\n" +
			"9780000000001\t0000000001\tThe Title\n"
		rows, err := ParseBooks(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, []catalog.BookRow{
			{ISBN10: "0000000001", Title: "The Title", Author: ""},
		}, rows)
	})

	t.Run("short record reads empty", func(t *testing.T) {
		in := "ISBN10\tTitle\tAuthor\n0000000001\n"
		rows, err := ParseBooks(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, []catalog.BookRow{{ISBN10: "0000000001"}}, rows)
	})

	t.Run("empty input", func(t *testing.T) {
		rows, err := ParseBooks(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestParseBorrowers(t *testing.T) {
	t.Run("plain id header", func(t *testing.T) {
		in := "id,first_name,last_name,address,city,state,phone,ssn\n" +
			"ID000001,jane,DOE,1 Main St,Springfield,IL,555-0100,123-45-6789\n"
		rows, err := ParseBorrowers(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, []borrower.Row{{
			CardID:    "ID000001",
			FirstName: "jane",
			LastName:  "DOE",
			Address:   "1 Main St",
			City:      "Springfield",
			State:     "IL",
			Phone:     "555-0100",
			SSN:       "123-45-6789",
		}}, rows)
	})

	t.Run("legacy ID0000id header", func(t *testing.T) {
		in := "ID0000id,first_name,last_name\nID000002,john,smith\n"
		rows, err := ParseBorrowers(strings.NewReader(in))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "ID000002", rows[0].CardID)
		assert.Equal(t, "john", rows[0].FirstName)
	})

	t.Run("quoted field with comma", func(t *testing.T) {
		in := "id,address\nID000003,\"1 Main St, Apt 2\"\n"
		rows, err := ParseBorrowers(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, "1 Main St, Apt 2", rows[0].Address)
	})
}

func TestReadBooksMissingFile(t *testing.T) {
	_, err := ReadBooks("testdata/does-not-exist.tsv")
	assert.Error(t, err)
}
