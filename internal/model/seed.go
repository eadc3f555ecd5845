package model

// Seed is the static document every page is built from.
// It is loaded once at startup and never modified afterwards.
type Seed struct {
	Version         string          `yaml:"version" json:"version"`
	DefaultGameID   GameID          `yaml:"default_game_id" json:"default_game_id"`
	HomeCategories  []string        `yaml:"home_categories" json:"home_categories"`
	StoreCategories []string        `yaml:"store_categories" json:"store_categories"`
	Games           []CatalogEntry  `yaml:"games" json:"games"`
	Library         []LibraryRecord `yaml:"library" json:"library"`
	Friends         []Friend        `yaml:"friends" json:"friends"`
}

// Clone returns a deep copy of the seed
func (s *Seed) Clone() *Seed {
	c := *s
	c.HomeCategories = append([]string(nil), s.HomeCategories...)
	c.StoreCategories = append([]string(nil), s.StoreCategories...)
	c.Games = make([]CatalogEntry, len(s.Games))
	for i, g := range s.Games {
		c.Games[i] = g.Clone()
	}
	c.Library = append([]LibraryRecord(nil), s.Library...)
	c.Friends = append([]Friend(nil), s.Friends...)
	return &c
}
