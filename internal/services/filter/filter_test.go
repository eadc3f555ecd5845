package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/freeplay/internal/model"
	"github.com/mcoot/freeplay/internal/testutil"
)

func homeGames(t *testing.T) []model.CatalogEntry {
	t.Helper()
	var out []model.CatalogEntry
	for _, g := range testutil.DefaultSeed(t).Games {
		if g.Section == model.SectionHome {
			out = append(out, g)
		}
	}
	require.Len(t, out, 6)
	return out
}

func TestFilterIdentity(t *testing.T) {
	games := homeGames(t)

	got := Filter(games, "", model.CategoryAll)
	if diff := cmp.Diff(games, got); diff != "" {
		t.Errorf("Filter(\"\", all) mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterQueryScenario(t *testing.T) {
	games := homeGames(t)

	got := Filter(games, "neon", model.CategoryAll)
	assert.Equal(t, []string{"Neon Velocity"}, testutil.Titles(got))
}

func TestFilterQueryCaseInsensitive(t *testing.T) {
	games := homeGames(t)

	for _, q := range []string{"NEON", "nEoN", "velocity", "Neon Velocity"} {
		got := Filter(games, q, model.CategoryAll)
		assert.Equal(t, []string{"Neon Velocity"}, testutil.Titles(got), "query %q", q)
	}
}

func TestFilterQuerySubstring(t *testing.T) {
	games := homeGames(t)

	got := Filter(games, "e", model.CategoryAll)
	assert.Equal(t, []string{
		"Dragon Quest Legends", "Neon Velocity", "Stellar Odyssey",
		"Shadow Strike", "Mystic Realms", "Battle Royale Extreme",
	}, testutil.Titles(got))

	got = Filter(games, "st", model.CategoryAll)
	assert.Equal(t, []string{"Dragon Quest Legends", "Stellar Odyssey", "Shadow Strike", "Mystic Realms"}, testutil.Titles(got))
}

func TestFilterCategory(t *testing.T) {
	games := homeGames(t)

	tests := []struct {
		category string
		want     []string
	}{
		{"RPG", []string{"Dragon Quest Legends", "Mystic Realms"}},
		{"Action", []string{"Neon Velocity", "Shadow Strike", "Battle Royale Extreme"}},
		{"Racing", []string{"Neon Velocity"}},
		{"Sci-Fi", []string{"Stellar Odyssey"}},
		{"Strategy", []string{}},
		{"rpg", []string{}}, // exact tag match only
		{"", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			got := Filter(games, "", tt.category)
			assert.Equal(t, tt.want, testutil.Titles(got))
		})
	}
}

func TestFilterQueryAndCategory(t *testing.T) {
	games := homeGames(t)

	got := Filter(games, "realms", "RPG")
	assert.Equal(t, []string{"Mystic Realms"}, testutil.Titles(got))

	got = Filter(games, "realms", "Action")
	assert.Empty(t, got)
}

func TestFilterUnicodeQuery(t *testing.T) {
	entries := []model.CatalogEntry{
		{ID: 1, Title: "Ведьмак"},
		{ID: 2, Title: "Straße Racer"},
		{ID: 3, Title: "Neon"},
	}

	assert.Equal(t, []string{"Ведьмак"}, testutil.Titles(Filter(entries, "ВЕДЬ", model.CategoryAll)))
	assert.Equal(t, []string{"Straße Racer"}, testutil.Titles(Filter(entries, "STRASSE", model.CategoryAll)))
}

func TestFilterIsSubsequence(t *testing.T) {
	games := homeGames(t)

	got := Filter(games, "a", "Action")
	// Every result appears in the input, in the same relative order
	j := 0
	for _, g := range got {
		for j < len(games) && games[j].ID != g.ID {
			j++
		}
		require.Less(t, j, len(games), "result %d not found in order", g.ID)
		j++
	}
}

func TestFilterIdempotent(t *testing.T) {
	games := homeGames(t)

	once := Filter(games, "o", "Action")
	twice := Filter(once, "o", "Action")
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("filter not idempotent (-once +twice):\n%s", diff)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	games := homeGames(t)
	before := make([]model.CatalogEntry, len(games))
	for i, g := range games {
		before[i] = g.Clone()
	}

	_ = Filter(games, "neon", "Racing")
	_ = Filter(games, "", "RPG")

	if diff := cmp.Diff(before, games); diff != "" {
		t.Errorf("input mutated (-before +after):\n%s", diff)
	}
}

func TestFilterLibraryEntries(t *testing.T) {
	lib := []model.LibraryEntry{
		{LibraryRecord: model.LibraryRecord{ID: 1}, Title: "Dragon Quest Legends", Genre: []string{"RPG"}},
		{LibraryRecord: model.LibraryRecord{ID: 2}, Title: "Neon Velocity", Genre: []string{"Racing"}},
	}

	assert.Equal(t, []string{"Dragon Quest Legends"}, testutil.Titles(Filter(lib, "DRAGON", model.CategoryAll)))
	assert.Equal(t, []string{"Neon Velocity"}, testutil.Titles(Filter(lib, "", "Racing")))
}

func TestFilterEmptyInput(t *testing.T) {
	got := Filter([]model.CatalogEntry{}, "neon", model.CategoryAll)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = Filter[model.CatalogEntry](nil, "", model.CategoryAll)
	assert.Empty(t, got)
}

func TestMatchesQuery(t *testing.T) {
	assert.True(t, MatchesQuery("Neon Velocity", ""))
	assert.True(t, MatchesQuery("Neon Velocity", "on ve"))
	assert.True(t, MatchesQuery("Neon Velocity", "VELO"))
	assert.False(t, MatchesQuery("Neon Velocity", "neon  velocity"))
	assert.False(t, MatchesQuery("", "x"))
}

func TestMatchesCategory(t *testing.T) {
	e := model.CatalogEntry{Genre: []string{"Battle Royale", "Action"}}

	assert.True(t, MatchesCategory(e, model.CategoryAll))
	assert.True(t, MatchesCategory(e, "Battle Royale"))
	assert.False(t, MatchesCategory(e, "Battle"))
	assert.False(t, MatchesCategory(e, "action"))
}
