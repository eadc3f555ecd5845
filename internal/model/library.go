package model

// Achievements tracks unlocked achievements for a library title
type Achievements struct {
	Unlocked int `yaml:"unlocked" json:"unlocked"`
	Total    int `yaml:"total" json:"total"`
}

// Complete returns true if every achievement is unlocked
func (a Achievements) Complete() bool {
	return a.Unlocked == a.Total
}

// LibraryRecord is a library row as it appears in the seed document
type LibraryRecord struct {
	ID           GameID       `yaml:"id" json:"id"`
	LastPlayed   string       `yaml:"last_played" json:"last_played"` // Opaque display label
	HoursPlayed  int          `yaml:"hours_played" json:"hours_played"`
	Progress     int          `yaml:"progress" json:"progress"` // Percent
	Achievements Achievements `yaml:"achievements" json:"achievements"`
}

// LibraryEntry is an acquired title with playtime and progress.
// Title, Image and Genre are joined from the referenced CatalogEntry on load.
type LibraryEntry struct {
	LibraryRecord

	Title string
	Image string
	Genre []string
}

// GetTitle returns the title of the referenced catalog entry
func (e LibraryEntry) GetTitle() string {
	return e.Title
}

// HasGenre reports whether the referenced catalog entry carries the genre tag
func (e LibraryEntry) HasGenre(tag string) bool {
	for _, g := range e.Genre {
		if g == tag {
			return true
		}
	}
	return false
}

// SortKey selects the ordering of the library view
type SortKey string

const (
	SortRecent SortKey = "recent" // Input order; last-played is a label, not a timestamp
	SortHours  SortKey = "hours"  // Most hours played first
	SortName   SortKey = "name"   // Locale-aware title order
)

// ValidSortKeys returns all valid sort keys in display order
func ValidSortKeys() []SortKey {
	return []SortKey{SortRecent, SortHours, SortName}
}
