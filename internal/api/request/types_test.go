package request

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/freeplay/internal/model"
)

func get(target string) *http.Request {
	return httptest.NewRequest(http.MethodGet, target, nil)
}

func TestParseGamesQuery(t *testing.T) {
	q, err := ParseGamesQuery(get("/api/v1/games"))
	require.NoError(t, err)
	assert.Equal(t, GamesQuery{Genre: model.CategoryAll}, q)

	q, err = ParseGamesQuery(get("/api/v1/games?q=neon&genre=Racing&section=home"))
	require.NoError(t, err)
	assert.Equal(t, GamesQuery{Query: "neon", Genre: "Racing", Section: model.SectionHome}, q)

	_, err = ParseGamesQuery(get("/api/v1/games?section=arcade"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "section")
}

func TestParseLibraryQuery(t *testing.T) {
	q, err := ParseLibraryQuery(get("/api/v1/library"))
	require.NoError(t, err)
	assert.Equal(t, model.SortRecent, q.Sort)

	q, err = ParseLibraryQuery(get("/api/v1/library?q=o&sort=hours"))
	require.NoError(t, err)
	assert.Equal(t, LibraryQuery{Query: "o", Sort: model.SortHours}, q)

	_, err = ParseLibraryQuery(get("/api/v1/library?sort=rating"))
	assert.ErrorIs(t, err, model.ErrInvalidSortKey)
}

func TestParseStoreQuery(t *testing.T) {
	assert.Equal(t, StoreQuery{Category: model.CategoryAll}, ParseStoreQuery(get("/api/v1/store")))
	assert.Equal(t, StoreQuery{Category: "Strategy"}, ParseStoreQuery(get("/api/v1/store?category=Strategy")))
}

func TestParseGameID(t *testing.T) {
	id, err := ParseGameID("12")
	require.NoError(t, err)
	assert.Equal(t, model.GameID(12), id)

	_, err = ParseGameID("abc")
	assert.ErrorIs(t, err, model.ErrInvalidGameID)
}
