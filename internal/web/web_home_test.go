package web_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHomePage(t *testing.T) {
	ts := newWebTestServer(t)
	doc := ts.page("/")

	assertContainsText(t, doc, "title", "freePlay")
	assertContainsText(t, doc, ".main-nav a.active", "Главная")
	assertContainsText(t, doc, ".hero h1", "Dragon Quest Legends")
	assertContainsText(t, doc, ".hero", "Играть бесплатно")
	assertContainsText(t, doc, ".hero", "Подробнее")
	assertCount(t, doc, ".popular .game-card", 6)
	assert.Equal(t, []string{"4", "5"}, attrs(doc, ".new-releases .game-card", "data-game-id"))
	assertContainsText(t, doc, ".friends .online-count", "4 онлайн")
	assertNotContainsElement(t, doc, ".chat")
}

func TestHomeSearch(t *testing.T) {
	ts := newWebTestServer(t)
	doc := ts.page("/?q=neon")

	assert.Equal(t, []string{"2"}, attrs(doc, ".popular .game-card", "data-game-id"))
	assert.Equal(t, []string{"neon"}, attrs(doc, `form.search input[name="q"]`, "value"))

	// Hero and new releases ignore the query
	assertContainsText(t, doc, ".hero h1", "Dragon Quest Legends")
	assertCount(t, doc, ".new-releases .game-card", 2)
}

func TestHomeSearchNoResults(t *testing.T) {
	ts := newWebTestServer(t)
	doc := ts.page("/?q=zzz")

	assertNotContainsElement(t, doc, ".popular .game-card")
	assertContainsText(t, doc, ".popular .empty-state", "Игры не найдены")
}

func TestHomeCategoryTabs(t *testing.T) {
	ts := newWebTestServer(t)
	doc := ts.page("/")

	assert.Equal(t, []string{"all", "RPG", "Action", "Racing", "Sci-Fi"}, attrs(doc, ".categories a", "data-category"))
	assertContainsText(t, doc, `.categories a.active`, "Все")

	doc = ts.follow(doc, `.categories a[data-category="RPG"]`)
	assert.Equal(t, []string{"1", "5"}, attrs(doc, ".popular .game-card", "data-game-id"))
	assertContainsText(t, doc, `.categories a.active`, "RPG")

	// Searching keeps the selected category
	assert.Equal(t, []string{"RPG"}, attrs(doc, `form.search input[name="category"]`, "value"))
}

func TestHomeCategoryAndQueryCombine(t *testing.T) {
	ts := newWebTestServer(t)
	doc := ts.page("/?category=Action&q=shadow")

	assert.Equal(t, []string{"4"}, attrs(doc, ".popular .game-card", "data-game-id"))
}

func TestHomeFriendsList(t *testing.T) {
	ts := newWebTestServer(t)
	doc := ts.page("/")

	assertCount(t, doc, ".friends li.friend", 5)
	assertContainsText(t, doc, `.friend[data-friend-id="2"] .status`, "Играет в Neon Velocity")
	assertContainsText(t, doc, `.friend[data-friend-id="3"] .status`, "В сети")
	assertContainsText(t, doc, `.friend[data-friend-id="4"] .status`, "Не в сети")

	// Online friends do not show their stale game label
	assert.NotContains(t, doc.Find(`.friend[data-friend-id="1"] .status`).Text(), "Dragon Quest")
}

func TestHomeChat(t *testing.T) {
	ts := newWebTestServer(t)
	doc := ts.page("/?q=neon")

	doc = ts.follow(doc, `.friend[data-friend-id="2"] a`)
	assertContainsText(t, doc, ".chat .name", "Мария")
	assertContainsText(t, doc, ".chat .status", "Играет")
	assertContainsText(t, doc, ".chat .messages", "Привет! Хочешь сыграть?")
	assert.Equal(t, []string{"Сообщение..."}, attrs(doc, ".chat input", "placeholder"))

	// Opening chat keeps the search
	assert.Equal(t, []string{"2"}, attrs(doc, ".popular .game-card", "data-game-id"))

	// Selecting another friend replaces the open chat
	doc = ts.follow(doc, `.friend[data-friend-id="1"] a`)
	assertCount(t, doc, ".chat", 1)
	assertContainsText(t, doc, ".chat .name", "Алексей")

	doc = ts.follow(doc, ".chat a.close")
	assertNotContainsElement(t, doc, ".chat")
	assert.Equal(t, []string{"2"}, attrs(doc, ".popular .game-card", "data-game-id"))
}

func TestHomeChatUnknownFriend(t *testing.T) {
	ts := newWebTestServer(t)
	doc := ts.page("/?chat=99")

	assertNotContainsElement(t, doc, ".chat")
}

func TestHomeEscapesQuery(t *testing.T) {
	ts := newWebTestServer(t)
	doc := ts.page("/?q=%3Cscript%3Ealert(1)%3C%2Fscript%3E")

	assertNotContainsElement(t, doc, "main script")
	assert.Equal(t, []string{"<script>alert(1)</script>"}, attrs(doc, `form.search input[name="q"]`, "value"))
}
