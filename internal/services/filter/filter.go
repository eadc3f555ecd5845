// Package filter narrows catalog and library listings by title query and genre category.
package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/mcoot/freeplay/internal/model"
)

// Filterable is implemented by anything listed with a title and genre tags
type Filterable interface {
	GetTitle() string
	HasGenre(tag string) bool
}

var (
	_ Filterable = model.CatalogEntry{}
	_ Filterable = model.LibraryEntry{}
)

// Filter returns the entries matching both query and category, in input order.
// The input slice is never modified.
func Filter[T Filterable](entries []T, query, category string) []T {
	fold := cases.Fold()
	q := fold.String(query)

	out := make([]T, 0, len(entries))
	for _, e := range entries {
		if !MatchesCategory(e, category) {
			continue
		}
		if q != "" && !strings.Contains(fold.String(e.GetTitle()), q) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// MatchesQuery reports whether the case-folded title contains the case-folded query.
// An empty query matches every title.
func MatchesQuery(title, query string) bool {
	if query == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(title), fold.String(query))
}

// MatchesCategory reports whether the entry carries the category as an exact genre tag.
// The "all" category matches every entry.
func MatchesCategory(e Filterable, category string) bool {
	return category == model.CategoryAll || e.HasGenre(category)
}
