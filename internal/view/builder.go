package view

import (
	"github.com/mcoot/freeplay/internal/model"
	"github.com/mcoot/freeplay/internal/services/catalog"
	"github.com/mcoot/freeplay/internal/services/filter"
	"github.com/mcoot/freeplay/internal/services/sorting"
	"github.com/mcoot/freeplay/internal/services/stats"
)

// SimilarCount is the number of similar titles shown beside a detail page
const SimilarCount = 3

// HomePage is the model of the home feed
type HomePage struct {
	State       State
	Categories  []string
	Hero        *model.CatalogEntry // First home entry, unfiltered
	Popular     []model.CatalogEntry
	NewReleases []model.CatalogEntry
	Friends     []model.Friend
	OnlineCount int
	Chat        *model.Friend // Open chat partner, nil when closed
}

// LibraryPage is the model of the personal library
type LibraryPage struct {
	State    State
	SortKeys []model.SortKey
	Entries  []model.LibraryEntry

	// Totals cover the whole library, not just the filtered rows
	TotalGames        int
	TotalHours        int
	TotalAchievements int
	CompletedCount    int

	Chat *model.Friend
}

// Empty reports whether no rows match the current query
func (p LibraryPage) Empty() bool {
	return len(p.Entries) == 0
}

// StorePage is the model of the store
type StorePage struct {
	State      State
	Categories []string
	Hero       *model.CatalogEntry // First featured store entry
	Featured   []model.CatalogEntry
	Discounted []model.CatalogEntry
	Games      []model.CatalogEntry
}

// DetailPage is the model of a single title
type DetailPage struct {
	State    State
	Game     model.CatalogEntry
	Fallback bool // Requested id was unknown and Game is the default entry
	Tabs     []Tab
	Similar  []model.CatalogEntry
}

// Builder composes catalog queries, filtering, sorting and aggregates into page models
type Builder struct {
	catalog catalog.ServiceInterface
	sorter  *sorting.Service
}

// NewBuilder creates a new page Builder
func NewBuilder(catalog catalog.ServiceInterface, sorter *sorting.Service) *Builder {
	return &Builder{
		catalog: catalog,
		sorter:  sorter,
	}
}

// Home builds the home feed for the given state
func (b *Builder) Home(s State) HomePage {
	games := b.catalog.Section(model.SectionHome)
	friends := b.catalog.Friends()

	page := HomePage{
		State:       s,
		Categories:  b.catalog.Categories(model.SectionHome),
		Popular:     filter.Filter(games, s.Query, s.Category),
		NewReleases: stats.NewReleases(games),
		Friends:     friends,
		OnlineCount: stats.OnlineCount(friends),
		Chat:        b.chat(s),
	}
	if len(games) > 0 {
		page.Hero = &games[0]
	}
	return page
}

// Library builds the library view for the given state
func (b *Builder) Library(s State) LibraryPage {
	all := b.catalog.Library()
	rows := filter.Filter(all, s.Query, model.CategoryAll)

	return LibraryPage{
		State:             s,
		SortKeys:          model.ValidSortKeys(),
		Entries:           b.sorter.Sort(rows, s.Sort),
		TotalGames:        len(all),
		TotalHours:        stats.TotalHours(all),
		TotalAchievements: stats.TotalAchievements(all),
		CompletedCount:    stats.CompletedCount(all),
		Chat:              b.chat(s),
	}
}

// Store builds the store view for the given state
func (b *Builder) Store(s State) StorePage {
	games := b.catalog.Section(model.SectionStore)
	featured := stats.Featured(games)

	page := StorePage{
		State:      s,
		Categories: b.catalog.Categories(model.SectionStore),
		Featured:   featured,
		Discounted: stats.Discounted(games),
		Games:      filter.Filter(games, s.Query, s.Category),
	}
	if len(featured) > 0 {
		page.Hero = &featured[0]
	}
	return page
}

// Detail builds the detail view of a title. Unknown ids show the default entry.
func (b *Builder) Detail(id model.GameID, s State) DetailPage {
	game, found := b.catalog.Lookup(id)
	return DetailPage{
		State:    s,
		Game:     game,
		Fallback: !found,
		Tabs:     Tabs(),
		Similar:  b.catalog.Similar(game, SimilarCount),
	}
}

// chat resolves the open chat partner; unknown friends leave the chat closed
func (b *Builder) chat(s State) *model.Friend {
	if !s.ChatOpen || !s.ChatAvailable() {
		return nil
	}
	f, ok := b.catalog.Friend(s.ChatFriendID)
	if !ok {
		return nil
	}
	return &f
}
