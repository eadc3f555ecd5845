package model

// GameID uniquely identifies a catalog entry
type GameID int

// Section identifies which storefront page lists an entry
type Section string

const (
	SectionHome  Section = "home"  // Home feed ("popular games")
	SectionStore Section = "store" // Store grid
)

// CategoryAll is the category selector that matches every entry
const CategoryAll = "all"

// Requirements lists the minimum system requirements shown on the detail page
type Requirements struct {
	OS        string `yaml:"os" json:"os"`
	Processor string `yaml:"processor" json:"processor"`
	Memory    string `yaml:"memory" json:"memory"`
	Graphics  string `yaml:"graphics" json:"graphics"`
}

// Review is a player review shown on the detail page
type Review struct {
	Author string `yaml:"author" json:"author"`
	Rating int    `yaml:"rating" json:"rating"` // Stars, 1-5
	Posted string `yaml:"posted" json:"posted"` // Display label
	Text   string `yaml:"text" json:"text"`
}

// Details holds metadata only present for titles with a full detail page
type Details struct {
	LongDescription string       `yaml:"long_description" json:"long_description"`
	Developer       string       `yaml:"developer" json:"developer"`
	ReleaseDate     string       `yaml:"release_date" json:"release_date"` // Display label, not a timestamp
	Size            string       `yaml:"size" json:"size"`
	Requirements    Requirements `yaml:"requirements" json:"requirements"`
	Reviews         []Review     `yaml:"reviews,omitempty" json:"reviews,omitempty"`
}

// CatalogEntry is a single title in the storefront catalog
type CatalogEntry struct {
	ID          GameID   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Image       string   `yaml:"image" json:"image"`
	Genre       []string `yaml:"genre" json:"genre"` // Display order, no duplicates
	Rating      float64  `yaml:"rating" json:"rating"`
	Players     string   `yaml:"players" json:"players"` // Opaque display string, e.g. "2.5M"
	Description string   `yaml:"description" json:"description"`
	Section     Section  `yaml:"section" json:"section"`

	Details    *Details `yaml:"details,omitempty" json:"details,omitempty"`
	Discount   *int     `yaml:"discount,omitempty" json:"discount,omitempty"` // Percent, store only
	Featured   bool     `yaml:"featured,omitempty" json:"featured,omitempty"`
	NewRelease bool     `yaml:"new_release,omitempty" json:"new_release,omitempty"`
}

// GetTitle returns the entry title
func (e CatalogEntry) GetTitle() string {
	return e.Title
}

// HasGenre reports whether the entry carries the exact genre tag
func (e CatalogEntry) HasGenre(tag string) bool {
	for _, g := range e.Genre {
		if g == tag {
			return true
		}
	}
	return false
}

// HasDiscount returns true if a positive discount is set
func (e CatalogEntry) HasDiscount() bool {
	return e.Discount != nil && *e.Discount > 0
}

// DiscountPercent returns the discount, or 0 if none is set
func (e CatalogEntry) DiscountPercent() int {
	if e.Discount == nil {
		return 0
	}
	return *e.Discount
}

// Clone returns a copy that shares no mutable state with e
func (e CatalogEntry) Clone() CatalogEntry {
	c := e
	c.Genre = append([]string(nil), e.Genre...)
	if e.Details != nil {
		d := *e.Details
		d.Reviews = append([]Review(nil), e.Details.Reviews...)
		c.Details = &d
	}
	if e.Discount != nil {
		v := *e.Discount
		c.Discount = &v
	}
	return c
}
