package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/freeplay/internal/model"
	"github.com/mcoot/freeplay/internal/testutil"
)

func row(hours, unlocked, total int) model.LibraryEntry {
	return model.LibraryEntry{LibraryRecord: model.LibraryRecord{
		HoursPlayed:  hours,
		Achievements: model.Achievements{Unlocked: unlocked, Total: total},
	}}
}

func TestTotalHours(t *testing.T) {
	assert.Equal(t, 0, TotalHours(nil))
	assert.Equal(t, 481, TotalHours([]model.LibraryEntry{row(127, 0, 0), row(64, 0, 0), row(201, 0, 0), row(89, 0, 0)}))
}

func TestTotalHoursAdditive(t *testing.T) {
	a := []model.LibraryEntry{row(127, 42, 50), row(64, 30, 30)}
	b := []model.LibraryEntry{row(201, 88, 120), row(89, 15, 40)}
	all := append(append([]model.LibraryEntry{}, a...), b...)

	assert.Equal(t, TotalHours(a)+TotalHours(b), TotalHours(all))
	assert.Equal(t, TotalAchievements(a)+TotalAchievements(b), TotalAchievements(all))
}

func TestTotalAchievements(t *testing.T) {
	assert.Equal(t, 0, TotalAchievements(nil))
	assert.Equal(t, 175, TotalAchievements([]model.LibraryEntry{row(0, 42, 50), row(0, 30, 30), row(0, 88, 120), row(0, 15, 40)}))
}

func TestCompletedCount(t *testing.T) {
	entries := []model.LibraryEntry{row(0, 42, 50), row(0, 30, 30), row(0, 88, 120), row(0, 0, 0)}
	assert.Equal(t, 2, CompletedCount(entries))
}

func TestOnlineCount(t *testing.T) {
	friends := testutil.DefaultSeed(t).Friends
	assert.Equal(t, 4, OnlineCount(friends))

	assert.Equal(t, 0, OnlineCount(nil))
	assert.Equal(t, 0, OnlineCount([]model.Friend{{Status: model.FriendOffline}}))
	assert.Equal(t, 2, OnlineCount([]model.Friend{{Status: model.FriendPlaying}, {Status: model.FriendOnline}}))
}

func TestFeaturedAndDiscounted(t *testing.T) {
	var store []model.CatalogEntry
	for _, g := range testutil.DefaultSeed(t).Games {
		if g.Section == model.SectionStore {
			store = append(store, g)
		}
	}

	assert.Equal(t, []string{"Cyber Legends", "Fantasy Kingdoms", "Puzzle Quest"}, testutil.Titles(Featured(store)))
	assert.Equal(t, []string{"Cyber Legends", "Space Warriors", "Horror Mansion"}, testutil.Titles(Discounted(store)))
}

func TestDiscountedSkipsZero(t *testing.T) {
	zero, ten := 0, 10
	entries := []model.CatalogEntry{
		{Title: "none"},
		{Title: "zero", Discount: &zero},
		{Title: "ten", Discount: &ten},
	}
	assert.Equal(t, []string{"ten"}, testutil.Titles(Discounted(entries)))
}

func TestNewReleases(t *testing.T) {
	games := testutil.DefaultSeed(t).Games
	assert.Equal(t, []string{"Shadow Strike", "Mystic Realms"}, testutil.Titles(NewReleases(games)))
}

func TestEmptyInputs(t *testing.T) {
	assert.Empty(t, Featured(nil))
	assert.NotNil(t, Discounted(nil))
	assert.Empty(t, NewReleases(nil))
	assert.Equal(t, 0, CompletedCount(nil))
}
