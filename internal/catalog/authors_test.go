package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAuthors(t *testing.T) {
	cases := []struct {
		name  string
		field string
		want  []string
	}{
		{"single name", "Jane Doe", []string{"Jane Doe"}},
		{"and joiner", "Jane Doe and John Smith", []string{"Jane Doe", "John Smith"}},
		{"AND joiner uppercase", "Jane Doe AND John Smith", []string{"Jane Doe", "John Smith"}},
		{"ampersand", "Jane Doe & John Smith", []string{"Jane Doe", "John Smith"}},
		{"semicolon and pipe", "Jane Doe; John Smith|Ann Lee", []string{"Jane Doe", "John Smith", "Ann Lee"}},
		{"case-insensitive dedup keeps first casing", "Jane Doe; jane doe, JANE DOE", []string{"Jane Doe"}},
		{"recasing all-upper names", "JANE DOE, JOHN SMITH", []string{"Jane Doe", "John Smith"}},
		{"stray separators discarded", ",,Jane Doe;;", []string{"Jane Doe"}},
		{"messy whitespace", "  Jane   Doe ,John\tSmith ", []string{"Jane Doe", "John Smith"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitAuthors(tc.field))
		})
	}
}

func TestSplitAuthorsEmpty(t *testing.T) {
	for _, field := range []string{"", "   ", "; , |", ",,,"} {
		assert.Empty(t, SplitAuthors(field), "field %q", field)
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()

	id, created := reg.Resolve("Jane Doe")
	assert.Equal(t, 1, id)
	assert.True(t, created)

	id, created = reg.Resolve("John Smith")
	assert.Equal(t, 2, id)
	assert.True(t, created)

	// Case-insensitive lookup returns the existing ID.
	id, created = reg.Resolve("jane doe")
	assert.Equal(t, 1, id)
	assert.False(t, created)

	assert.Equal(t, []Author{
		{ID: 1, Name: "Jane Doe"},
		{ID: 2, Name: "John Smith"},
	}, reg.Authors())
}
