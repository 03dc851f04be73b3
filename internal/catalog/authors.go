package catalog

import (
	"regexp"
	"strings"

	"libraryetl/internal/clean"
)

// joinerPattern matches the word "and" used as a natural-language list
// joiner between names.
var joinerPattern = regexp.MustCompile(`(?i)\s+and\s+`)

// SplitAuthors parses a free-text author field into cleaned names,
// de-duplicated case-insensitively with the first-seen casing kept and
// first-seen order preserved. A blank field yields no names.
//
// "Jane Doe and John Smith" and "Jane Doe & John Smith" both split
// into two names; semicolons, commas and pipes are all separators.
func SplitAuthors(field string) []string {
	if clean.Whitespace(field) == "" {
		return nil
	}

	raw := joinerPattern.ReplaceAllString(field, ",")
	raw = strings.ReplaceAll(raw, "&", ",")
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ';' || r == ',' || r == '|'
	})

	seen := make(map[string]struct{}, len(parts))
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		name := clean.TitleCase(part)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, name)
	}
	return names
}

// Registry resolves author names to stable integer IDs. Lookup is
// case-insensitive; the casing recorded is the one first seen. A
// Registry is scoped to a single build and must not be shared across
// runs, or ID assignment would stop being deterministic.
type Registry struct {
	ids     map[string]int
	authors []Author
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ids: make(map[string]int)}
}

// Resolve returns the ID for name, assigning the next dense ID when the
// name has not been seen before. The second return reports whether a
// new author record was created.
func (r *Registry) Resolve(name string) (int, bool) {
	key := strings.ToLower(name)
	if id, ok := r.ids[key]; ok {
		return id, false
	}
	id := len(r.ids) + 1
	r.ids[key] = id
	r.authors = append(r.authors, Author{ID: id, Name: name})
	return id, true
}

// Authors returns every registered author ordered by ID ascending.
func (r *Registry) Authors() []Author {
	return r.authors
}
