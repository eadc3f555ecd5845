package view

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/text/language"

	"github.com/mcoot/freeplay/internal/dependencies/mocks"
	"github.com/mcoot/freeplay/internal/model"
	"github.com/mcoot/freeplay/internal/services/catalog"
	"github.com/mcoot/freeplay/internal/services/sorting"
	"github.com/mcoot/freeplay/internal/storage/memory"
	"github.com/mcoot/freeplay/internal/testutil"
)

type BuilderSuite struct {
	suite.Suite
	catalog *catalog.Service
	builder *Builder
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderSuite))
}

func (s *BuilderSuite) SetupTest() {
	clk := mocks.NewMockClock(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	s.catalog = catalog.New(memory.New(), clk, testutil.NopLogger())
	s.Require().NoError(s.catalog.LoadDefault(context.Background()))
	s.builder = NewBuilder(s.catalog, sorting.New(language.Russian))
}

// Home

func (s *BuilderSuite) TestHomeDefault() {
	page := s.builder.Home(NewState(PageHome))

	s.Require().NotNil(page.Hero)
	s.Equal("Dragon Quest Legends", page.Hero.Title)
	s.Len(page.Popular, 6)
	s.Equal([]string{"Shadow Strike", "Mystic Realms"}, testutil.Titles(page.NewReleases))
	s.Equal([]string{"all", "RPG", "Action", "Racing", "Sci-Fi"}, page.Categories)
	s.Len(page.Friends, 5)
	s.Equal(4, page.OnlineCount)
	s.Nil(page.Chat)
}

func (s *BuilderSuite) TestHomeQuery() {
	page := s.builder.Home(NewState(PageHome).SetQuery("neon"))

	s.Equal([]string{"Neon Velocity"}, testutil.Titles(page.Popular))
	// Hero and new releases ignore the filter
	s.Equal("Dragon Quest Legends", page.Hero.Title)
	s.Len(page.NewReleases, 2)
}

func (s *BuilderSuite) TestHomeCategory() {
	page := s.builder.Home(NewState(PageHome).SetCategory("RPG"))
	s.Equal([]string{"Dragon Quest Legends", "Mystic Realms"}, testutil.Titles(page.Popular))
}

func (s *BuilderSuite) TestHomeNoMatches() {
	page := s.builder.Home(NewState(PageHome).SetQuery("zzz"))
	s.Empty(page.Popular)
}

func (s *BuilderSuite) TestHomeChat() {
	page := s.builder.Home(NewState(PageHome).OpenChat(2))
	s.Require().NotNil(page.Chat)
	s.Equal("Мария", page.Chat.Name)

	page = s.builder.Home(NewState(PageHome).OpenChat(2).CloseChat())
	s.Nil(page.Chat)
}

func (s *BuilderSuite) TestHomeChatUnknownFriend() {
	page := s.builder.Home(NewState(PageHome).OpenChat(99))
	s.Nil(page.Chat)
}

// Library

func (s *BuilderSuite) TestLibraryDefault() {
	page := s.builder.Library(NewState(PageLibrary))

	s.Equal([]string{"Dragon Quest Legends", "Neon Velocity", "Stellar Odyssey", "Shadow Strike"}, testutil.Titles(page.Entries))
	s.Equal(4, page.TotalGames)
	s.Equal(481, page.TotalHours)
	s.Equal(175, page.TotalAchievements)
	s.Equal(1, page.CompletedCount)
	s.False(page.Empty())
	s.Equal(model.ValidSortKeys(), page.SortKeys)
}

func (s *BuilderSuite) TestLibrarySortHours() {
	page := s.builder.Library(NewState(PageLibrary).SetSort(model.SortHours))

	hours := make([]int, len(page.Entries))
	for i, e := range page.Entries {
		hours[i] = e.HoursPlayed
	}
	s.Equal([]int{201, 127, 89, 64}, hours)
}

func (s *BuilderSuite) TestLibrarySortName() {
	page := s.builder.Library(NewState(PageLibrary).SetSort(model.SortName))
	s.Equal([]string{"Dragon Quest Legends", "Neon Velocity", "Shadow Strike", "Stellar Odyssey"}, testutil.Titles(page.Entries))
}

func (s *BuilderSuite) TestLibraryFilterThenSort() {
	page := s.builder.Library(NewState(PageLibrary).SetQuery("S").SetSort(model.SortHours))

	// Neon Velocity has no "s"
	s.Equal([]string{"Stellar Odyssey", "Dragon Quest Legends", "Shadow Strike"}, testutil.Titles(page.Entries))
	// Totals still cover the whole library
	s.Equal(481, page.TotalHours)
}

func (s *BuilderSuite) TestLibraryEmpty() {
	page := s.builder.Library(NewState(PageLibrary).SetQuery("zzz"))

	s.True(page.Empty())
	s.Equal(4, page.TotalGames)
}

func (s *BuilderSuite) TestLibraryCompletedFlag() {
	page := s.builder.Library(NewState(PageLibrary))

	complete := map[string]bool{}
	for _, e := range page.Entries {
		complete[e.Title] = e.Achievements.Complete()
	}
	s.Equal(map[string]bool{
		"Dragon Quest Legends": false,
		"Neon Velocity":        true,
		"Stellar Odyssey":      false,
		"Shadow Strike":        false,
	}, complete)
}

// Store

func (s *BuilderSuite) TestStoreDefault() {
	page := s.builder.Store(NewState(PageStore))

	s.Require().NotNil(page.Hero)
	s.Equal("Cyber Legends", page.Hero.Title)
	s.Equal([]string{"Cyber Legends", "Fantasy Kingdoms", "Puzzle Quest"}, testutil.Titles(page.Featured))
	s.Equal([]string{"Cyber Legends", "Space Warriors", "Horror Mansion"}, testutil.Titles(page.Discounted))
	s.Len(page.Games, 6)
	s.Equal([]string{"all", "Action", "RPG", "Strategy", "Racing"}, page.Categories)
}

func (s *BuilderSuite) TestStoreCategory() {
	page := s.builder.Store(NewState(PageStore).SetCategory("Strategy"))

	s.Equal([]string{"Space Warriors", "Fantasy Kingdoms"}, testutil.Titles(page.Games))
	// Featured and discounted strips ignore the category
	s.Len(page.Discounted, 3)
}

func (s *BuilderSuite) TestStoreChatIgnored() {
	page := s.builder.Store(NewState(PageStore).OpenChat(1))
	s.Len(page.Games, 6)
}

// Detail

func (s *BuilderSuite) TestDetailFound() {
	page := s.builder.Detail(2, NewState(PageDetail))

	s.False(page.Fallback)
	s.Equal("Neon Velocity", page.Game.Title)
	s.Require().NotNil(page.Game.Details)
	s.Equal("28 GB", page.Game.Details.Size)
	s.Equal(Tabs(), page.Tabs)
	s.Len(page.Similar, SimilarCount)
	for _, g := range page.Similar {
		s.NotEqual(model.GameID(2), g.ID)
	}
}

func (s *BuilderSuite) TestDetailFallback() {
	page := s.builder.Detail(999, NewState(PageDetail))

	s.True(page.Fallback)
	s.Equal(model.GameID(1), page.Game.ID)
	s.Equal("Dragon Quest Legends", page.Game.Title)
}

func (s *BuilderSuite) TestDetailWithoutMetadata() {
	page := s.builder.Detail(11, NewState(PageDetail).SetTab(TabRequirements))

	s.False(page.Fallback)
	s.Equal("Racing Fury", page.Game.Title)
	s.Nil(page.Game.Details)
	s.Equal(TabRequirements, page.State.Tab)
}
