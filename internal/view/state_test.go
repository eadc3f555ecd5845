package view

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/freeplay/internal/model"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState(PageHome)

	assert.Equal(t, PageHome, s.Page)
	assert.Equal(t, "", s.Query)
	assert.Equal(t, model.CategoryAll, s.Category)
	assert.Equal(t, model.SortRecent, s.Sort)
	assert.False(t, s.ChatOpen)
	assert.Equal(t, TabAbout, s.Tab)
	assert.Empty(t, s.Values())
}

func TestTransitionsDoNotAliasOriginal(t *testing.T) {
	s := NewState(PageLibrary)
	next := s.SetQuery("neon").SetSort(model.SortHours)

	assert.Equal(t, "", s.Query)
	assert.Equal(t, model.SortRecent, s.Sort)
	assert.Equal(t, "neon", next.Query)
	assert.Equal(t, model.SortHours, next.Sort)
}

func TestSetCategory(t *testing.T) {
	s := NewState(PageStore).SetCategory("Strategy")
	assert.Equal(t, "Strategy", s.Category)

	s = s.SetCategory("")
	assert.Equal(t, model.CategoryAll, s.Category)
}

func TestSetSortUnknownFallsBack(t *testing.T) {
	s := NewState(PageLibrary).SetSort(model.SortName).SetSort("rating")
	assert.Equal(t, model.SortRecent, s.Sort)
}

func TestChatTransitions(t *testing.T) {
	s := NewState(PageHome).OpenChat(2)
	assert.True(t, s.ChatOpen)
	assert.Equal(t, model.FriendID(2), s.ChatFriendID)

	// Opening another chat replaces the partner
	s = s.OpenChat(5)
	assert.Equal(t, model.FriendID(5), s.ChatFriendID)

	s = s.CloseChat()
	assert.False(t, s.ChatOpen)
	assert.Equal(t, model.FriendID(0), s.ChatFriendID)
}

func TestChatIgnoredOutsideHomeAndLibrary(t *testing.T) {
	assert.True(t, NewState(PageLibrary).OpenChat(1).ChatOpen)
	assert.False(t, NewState(PageStore).OpenChat(1).ChatOpen)
	assert.False(t, NewState(PageDetail).OpenChat(1).ChatOpen)
}

func TestSetTab(t *testing.T) {
	s := NewState(PageDetail).SetTab(TabReviews)
	assert.Equal(t, TabReviews, s.Tab)

	s = s.SetTab("screenshots")
	assert.Equal(t, TabReviews, s.Tab)
}

func TestParseState(t *testing.T) {
	v := url.Values{
		ParamQuery:    {"Neon"},
		ParamCategory: {"Racing"},
		ParamSort:     {"name"},
		ParamChat:     {"2"},
	}
	s := ParseState(PageHome, v)

	assert.Equal(t, "Neon", s.Query)
	assert.Equal(t, "Racing", s.Category)
	assert.Equal(t, model.SortName, s.Sort)
	assert.True(t, s.ChatOpen)
	assert.Equal(t, model.FriendID(2), s.ChatFriendID)
}

func TestParseStateMalformed(t *testing.T) {
	v := url.Values{
		ParamSort: {"bogus"},
		ParamChat: {"abc"},
		ParamTab:  {"bogus"},
	}
	s := ParseState(PageDetail, v)

	assert.Equal(t, model.SortRecent, s.Sort)
	assert.False(t, s.ChatOpen)
	assert.Equal(t, TabAbout, s.Tab)

	s = ParseState(PageHome, url.Values{ParamChat: {"-3"}})
	assert.False(t, s.ChatOpen)
}

func TestValuesRoundTrip(t *testing.T) {
	states := []State{
		NewState(PageHome),
		NewState(PageHome).SetQuery("ведьмак & co").SetCategory("RPG").OpenChat(3),
		NewState(PageLibrary).SetQuery("o").SetSort(model.SortHours),
		NewState(PageStore).SetCategory("Strategy"),
		NewState(PageDetail).SetTab(TabRequirements),
	}

	for _, s := range states {
		got := ParseState(s.Page, s.Values())
		assert.Equal(t, s, got)
	}
}

func TestLink(t *testing.T) {
	assert.Equal(t, "/library", NewState(PageLibrary).Link("/library"))
	assert.Equal(t, "/library?q=neon&sort=hours", NewState(PageLibrary).SetQuery("neon").SetSort(model.SortHours).Link("/library"))
	assert.Equal(t, "/game/1?tab=reviews", NewState(PageDetail).SetTab(TabReviews).Link("/game/1"))
}
