// Package pages renders the storefront page bodies.
package pages

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/mcoot/freeplay/internal/model"
	"github.com/mcoot/freeplay/internal/view"
)

// FriendStatusLabel describes a friend's presence in the friends list
func FriendStatusLabel(f model.Friend) string {
	switch f.Status {
	case model.FriendPlaying:
		if g := f.CurrentGame(); g != "" {
			return "Играет в " + g
		}
		return "Играет"
	case model.FriendOnline:
		return "В сети"
	default:
		return "Не в сети"
	}
}

// chatStatusLabel is the short status under the chat header
func chatStatusLabel(f model.Friend) string {
	if f.Status == model.FriendPlaying {
		return "Играет"
	}
	return "В сети"
}

// SortLabel names a library ordering
func SortLabel(k model.SortKey) string {
	switch k {
	case model.SortHours:
		return "По времени"
	case model.SortName:
		return "По названию"
	default:
		return "Недавние"
	}
}

// CategoryLabel names a category tab
func CategoryLabel(c string) string {
	if c == model.CategoryAll {
		return "Все"
	}
	return c
}

// TabLabel names a detail page tab
func TabLabel(t view.Tab) string {
	switch t {
	case view.TabRequirements:
		return "Требования"
	case view.TabReviews:
		return "Отзывы"
	default:
		return "Описание"
	}
}

func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', 1, 64)
}

func formatDiscount(pct int) string {
	return fmt.Sprintf("-%d%%", pct)
}

func gameLink(id model.GameID) string {
	return "/game/" + strconv.Itoa(int(id))
}

func itoa(id model.GameID) string {
	return strconv.Itoa(int(id))
}

// field is a hidden form input carrying state the form does not edit
type field struct {
	Name  string
	Value string
}

// hiddenFields lists the state a search form must resubmit, sorted by name
func hiddenFields(s view.State) []field {
	rest := s.SetQuery("").Values()
	var fields []field
	for _, key := range slices.Sorted(maps.Keys(rest)) {
		for _, v := range rest[key] {
			fields = append(fields, field{Name: key, Value: v})
		}
	}
	return fields
}

type fact struct {
	Label string
	Value string
}

func requirementFacts(d *model.Details) []fact {
	return []fact{
		{"Операционная система", d.Requirements.OS},
		{"Процессор", d.Requirements.Processor},
		{"Оперативная память", d.Requirements.Memory},
		{"Видеокарта", d.Requirements.Graphics},
		{"Место на диске", d.Size},
	}
}

func sidebarFacts(g model.CatalogEntry) []fact {
	facts := []fact{
		{"Средняя оценка", formatRating(g.Rating)},
		{"Активных игроков", g.Players},
	}
	if d := g.Details; d != nil {
		facts = append(facts,
			fact{"Всего отзывов", strconv.Itoa(len(d.Reviews))},
			fact{"Разработчик", d.Developer},
			fact{"Дата выхода", d.ReleaseDate},
			fact{"Размер", d.Size},
		)
	}
	return facts
}

func longDescription(g model.CatalogEntry) string {
	if g.Details != nil && g.Details.LongDescription != "" {
		return strings.TrimSpace(g.Details.LongDescription)
	}
	return g.Description
}

func stars(n int) string {
	return strings.Repeat("★", n)
}
