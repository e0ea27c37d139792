// Package atlas defines the curated library of mental models rendered by
// the engine: the model records themselves, the static category table that
// decides where each constellation sits in space, and the markdown parser
// that produces the library from its source file.
package atlas

import (
	"strings"
)

// Model is a single mental model entry. Records are immutable once parsed.
type Model struct {
	ID          string // stable identifier derived from Name, unique per library
	Name        string
	Description string
	Category    string
}

// Catalog maps a category name to its models, in source order.
//
// Uniqueness of ids across the whole catalog is guaranteed by the parser,
// consumers do not re-check it.
type Catalog map[string][]Model

// MaxIDLength bounds derived identifiers.
const MaxIDLength = 64

// DeriveID produces the stable identifier for a model name: lowercased,
// non-alphanumerics stripped, spaces to hyphens, truncated to [MaxIDLength].
func DeriveID(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		}
	}
	id := b.String()
	if len(id) > MaxIDLength {
		id = id[:MaxIDLength]
	}
	return id
}

// Search returns the ids of every model whose name or description contains
// the query, case-insensitively. An empty query matches nothing.
func (c Catalog) Search(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var ids []string
	for _, models := range c {
		for _, model := range models {
			if strings.Contains(strings.ToLower(model.Name), query) ||
				strings.Contains(strings.ToLower(model.Description), query) {
				ids = append(ids, model.ID)
			}
		}
	}
	return ids
}

// Lookup returns the model with the given id.
func (c Catalog) Lookup(id string) (Model, bool) {
	for _, models := range c {
		for _, model := range models {
			if model.ID == id {
				return model, true
			}
		}
	}
	return Model{}, false
}

// Len reports the total number of models across all categories.
func (c Catalog) Len() int {
	var n int
	for _, models := range c {
		n += len(models)
	}
	return n
}
