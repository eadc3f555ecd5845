package web_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLibraryPage(t *testing.T) {
	ts := newWebTestServer(t)
	doc := ts.page("/library")

	assertContainsText(t, doc, "h1", "Моя библиотека")
	assertContainsText(t, doc, ".main-nav a.active", "Библиотека")
	assertContainsText(t, doc, ".stat.total-games .value", "4")
	assertContainsText(t, doc, ".stat.total-hours .value", "481")
	assertContainsText(t, doc, ".stat.total-achievements .value", "175")
	assertContainsText(t, doc, ".stat.completed .value", "1")

	// Recent keeps seed order
	assert.Equal(t, []string{"1", "2", "3", "4"}, attrs(doc, ".library-entry", "data-game-id"))
	assertContainsText(t, doc, `.sort-key.active`, "Недавние")
}

func TestLibraryCompletionBadge(t *testing.T) {
	ts := newWebTestServer(t)
	doc := ts.page("/library")

	assertContainsElement(t, doc, `.library-entry[data-game-id="2"] .badge.complete`)
	assertCount(t, doc, ".badge.complete", 1)
	assertContainsText(t, doc, `.library-entry[data-game-id="3"] .achievements`, "88/120")
}

func TestLibrarySortByHours(t *testing.T) {
	ts := newWebTestServer(t)
	doc := ts.follow(ts.page("/library"), `.sort-key[data-sort="hours"]`)

	assert.Equal(t, []string{"3", "1", "4", "2"}, attrs(doc, ".library-entry", "data-game-id"))
	assertContainsText(t, doc, `.sort-key.active`, "По времени")
}

func TestLibrarySortByName(t *testing.T) {
	ts := newWebTestServer(t)
	doc := ts.page("/library?sort=name")

	// Dragon Quest Legends, Neon Velocity, Shadow Strike, Stellar Odyssey
	assert.Equal(t, []string{"1", "2", "4", "3"}, attrs(doc, ".library-entry", "data-game-id"))
}

func TestLibraryUnknownSortFallsBack(t *testing.T) {
	ts := newWebTestServer(t)
	doc := ts.page("/library?sort=rating")

	assert.Equal(t, []string{"1", "2", "3", "4"}, attrs(doc, ".library-entry", "data-game-id"))
	assertContainsText(t, doc, `.sort-key.active`, "Недавние")
}

func TestLibrarySearchKeepsSort(t *testing.T) {
	ts := newWebTestServer(t)
	doc := ts.page("/library?sort=hours&q=s")

	// Neon Velocity has no "s"
	assert.Equal(t, []string{"3", "1", "4"}, attrs(doc, ".library-entry", "data-game-id"))
	assert.Equal(t, []string{"hours"}, attrs(doc, `form.search input[name="sort"]`, "value"))
}

func TestLibraryEmptyState(t *testing.T) {
	ts := newWebTestServer(t)
	doc := ts.page("/library?q=zzz")

	assertNotContainsElement(t, doc, ".library-entry")
	assertContainsText(t, doc, ".empty-state", "Игры не найдены")

	// Totals still describe the whole library
	assertContainsText(t, doc, ".stat.total-games .value", "4")
	assertContainsText(t, doc, ".stat.total-hours .value", "481")
}

func TestLibraryChat(t *testing.T) {
	ts := newWebTestServer(t)
	doc := ts.page("/library?chat=5&sort=hours")

	assertContainsText(t, doc, ".chat .name", "Сергей")
	doc = ts.follow(doc, ".chat a.close")
	assertNotContainsElement(t, doc, ".chat")
	assertContainsText(t, doc, `.sort-key.active`, "По времени")
}
