package request

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/mcoot/freeplay/internal/api/apierr"
	"github.com/mcoot/freeplay/internal/model"
	"github.com/mcoot/freeplay/internal/services/sorting"
)

// GamesQuery holds the query parameters of GET /api/v1/games
type GamesQuery struct {
	Query   string
	Genre   string
	Section model.Section // Empty means every section
}

// ParseGamesQuery reads and validates catalog listing parameters
func ParseGamesQuery(r *http.Request) (GamesQuery, error) {
	v := r.URL.Query()
	q := GamesQuery{
		Query:   v.Get("q"),
		Genre:   orAll(v.Get("genre")),
		Section: model.Section(v.Get("section")),
	}
	switch q.Section {
	case "", model.SectionHome, model.SectionStore:
	default:
		return GamesQuery{}, apierr.NewInvalidRequestError("section must be home or store")
	}
	return q, nil
}

// LibraryQuery holds the query parameters of GET /api/v1/library
type LibraryQuery struct {
	Query string
	Sort  model.SortKey
}

// ParseLibraryQuery reads library parameters. Unknown sort keys are an error.
func ParseLibraryQuery(r *http.Request) (LibraryQuery, error) {
	v := r.URL.Query()
	q := LibraryQuery{
		Query: v.Get("q"),
		Sort:  model.SortRecent,
	}
	if raw := v.Get("sort"); raw != "" {
		key, err := sorting.ParseSortKey(raw)
		if err != nil {
			return LibraryQuery{}, err
		}
		q.Sort = key
	}
	return q, nil
}

// StoreQuery holds the query parameters of GET /api/v1/store
type StoreQuery struct {
	Query    string
	Category string
}

// ParseStoreQuery reads store parameters
func ParseStoreQuery(r *http.Request) StoreQuery {
	v := r.URL.Query()
	return StoreQuery{
		Query:    v.Get("q"),
		Category: orAll(v.Get("category")),
	}
}

// ParseGameID parses a path segment as a catalog id
func ParseGameID(raw string) (model.GameID, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, model.ErrInvalidGameID
	}
	return model.GameID(id), nil
}

// ParseFriendID parses a path segment as a friend id
func ParseFriendID(raw string) (model.FriendID, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, apierr.NewInvalidRequestError("friend id must be a number")
	}
	return model.FriendID(id), nil
}

func orAll(category string) string {
	if category == "" {
		return model.CategoryAll
	}
	return category
}
