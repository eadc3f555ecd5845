// Package sorting orders library rows for the library page.
package sorting

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mcoot/freeplay/internal/model"
)

// Service orders library rows for the library page
type Service struct {
	tag language.Tag
}

// New creates a sorting Service that collates titles for the given locale
func New(tag language.Tag) *Service {
	return &Service{tag: tag}
}

// Sort returns a new slice ordered by key; the input is never modified.
// Unknown keys keep input order, as recent does.
func (s *Service) Sort(entries []model.LibraryEntry, key model.SortKey) []model.LibraryEntry {
	out := make([]model.LibraryEntry, len(entries))
	copy(out, entries)

	switch key {
	case model.SortHours:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].HoursPlayed > out[j].HoursPlayed
		})
	case model.SortName:
		// Collators keep internal buffers and are not safe for concurrent use
		c := collate.New(s.tag)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Title, out[j].Title) < 0
		})
	}
	return out
}

// Locale returns the collation locale
func (s *Service) Locale() language.Tag {
	return s.tag
}

// ParseSortKey converts a query value to a SortKey
func ParseSortKey(v string) (model.SortKey, error) {
	for _, k := range model.ValidSortKeys() {
		if string(k) == v {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", model.ErrInvalidSortKey, v)
}
