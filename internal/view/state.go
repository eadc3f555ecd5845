// Package view holds per-request page state and composes the page models
// rendered by the HTML and JSON front-ends.
package view

import (
	"net/url"
	"strconv"

	"github.com/mcoot/freeplay/internal/model"
	"github.com/mcoot/freeplay/internal/services/sorting"
)

// Page identifies a storefront page
type Page string

const (
	PageHome    Page = "home"
	PageDetail  Page = "detail"
	PageLibrary Page = "library"
	PageStore   Page = "store"
)

// Tab is the active section of the detail page
type Tab string

const (
	TabAbout        Tab = "about"
	TabRequirements Tab = "requirements"
	TabReviews      Tab = "reviews"
)

// Tabs returns the detail page tabs in display order
func Tabs() []Tab {
	return []Tab{TabAbout, TabRequirements, TabReviews}
}

func validTab(t Tab) bool {
	for _, v := range Tabs() {
		if v == t {
			return true
		}
	}
	return false
}

// URL query parameter names
const (
	ParamQuery    = "q"
	ParamCategory = "category"
	ParamSort     = "sort"
	ParamChat     = "chat"
	ParamTab      = "tab"
)

// State is the transient UI state of one page view.
// It is rebuilt for every request from the URL and never shared between pages.
type State struct {
	Page         Page
	Query        string
	Category     string
	Sort         model.SortKey
	ChatOpen     bool
	ChatFriendID model.FriendID
	Tab          Tab
}

// NewState returns the initial state of a page
func NewState(page Page) State {
	return State{
		Page:     page,
		Category: model.CategoryAll,
		Sort:     model.SortRecent,
		Tab:      TabAbout,
	}
}

// SetQuery replaces the search query
func (s State) SetQuery(q string) State {
	s.Query = q
	return s
}

// SetCategory selects a category tab; "" selects all
func (s State) SetCategory(c string) State {
	if c == "" {
		c = model.CategoryAll
	}
	s.Category = c
	return s
}

// SetSort selects the library ordering; unknown keys select recent
func (s State) SetSort(k model.SortKey) State {
	if _, err := sorting.ParseSortKey(string(k)); err != nil {
		k = model.SortRecent
	}
	s.Sort = k
	return s
}

// ChatAvailable reports whether the page shows the friends chat panel
func (s State) ChatAvailable() bool {
	return s.Page == PageHome || s.Page == PageLibrary
}

// OpenChat opens the chat panel for a friend, replacing any open chat
func (s State) OpenChat(id model.FriendID) State {
	if !s.ChatAvailable() {
		return s
	}
	s.ChatOpen = true
	s.ChatFriendID = id
	return s
}

// CloseChat closes the chat panel
func (s State) CloseChat() State {
	s.ChatOpen = false
	s.ChatFriendID = 0
	return s
}

// SetTab selects a detail page tab; unknown tabs are ignored
func (s State) SetTab(t Tab) State {
	if validTab(t) {
		s.Tab = t
	}
	return s
}

// ParseState rebuilds the state of a page from URL query parameters.
// Malformed values fall back to their defaults.
func ParseState(page Page, v url.Values) State {
	s := NewState(page).
		SetQuery(v.Get(ParamQuery)).
		SetCategory(v.Get(ParamCategory)).
		SetSort(model.SortKey(v.Get(ParamSort))).
		SetTab(Tab(v.Get(ParamTab)))

	if raw := v.Get(ParamChat); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil && id > 0 {
			s = s.OpenChat(model.FriendID(id))
		}
	}
	return s
}

// Values encodes the state as URL query parameters, omitting defaults
func (s State) Values() url.Values {
	v := url.Values{}
	if s.Query != "" {
		v.Set(ParamQuery, s.Query)
	}
	if s.Category != "" && s.Category != model.CategoryAll {
		v.Set(ParamCategory, s.Category)
	}
	if s.Sort != "" && s.Sort != model.SortRecent {
		v.Set(ParamSort, string(s.Sort))
	}
	if s.ChatOpen {
		v.Set(ParamChat, strconv.Itoa(int(s.ChatFriendID)))
	}
	if s.Page == PageDetail && s.Tab != "" && s.Tab != TabAbout {
		v.Set(ParamTab, string(s.Tab))
	}
	return v
}

// Link returns path with the state encoded as its query string
func (s State) Link(path string) string {
	q := s.Values().Encode()
	if q == "" {
		return path
	}
	return path + "?" + q
}
