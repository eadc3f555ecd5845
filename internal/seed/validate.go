package seed

import (
	"fmt"

	"github.com/mcoot/freeplay/internal/model"
)

// Validate checks a decoded seed for referential integrity and value ranges.
// It returns human-readable problem descriptions; an empty slice means the seed is valid.
func Validate(s *model.Seed) []string {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if s.Version == "" {
		add("version: must not be empty")
	}

	games := make(map[model.GameID]bool, len(s.Games))
	for i, g := range s.Games {
		if games[g.ID] {
			add("games[%d]: duplicate id %d", i, g.ID)
		}
		games[g.ID] = true

		if g.Title == "" {
			add("games[%d]: title must not be empty", i)
		}
		if g.Rating < 0 || g.Rating > 5 {
			add("games[%d]: rating %.1f (valid: 0-5)", i, g.Rating)
		}
		if g.Discount != nil && (*g.Discount < 0 || *g.Discount > 100) {
			add("games[%d]: discount %d (valid: 0-100)", i, *g.Discount)
		}
		switch g.Section {
		case model.SectionHome, model.SectionStore:
		default:
			add("games[%d]: section %q (valid: home, store)", i, g.Section)
		}
		seen := make(map[string]bool, len(g.Genre))
		for _, tag := range g.Genre {
			if seen[tag] {
				add("games[%d]: duplicate genre %q", i, tag)
			}
			seen[tag] = true
		}
	}

	if !games[s.DefaultGameID] {
		add("default_game_id: %d does not reference a catalog entry", s.DefaultGameID)
	}

	owned := make(map[model.GameID]bool, len(s.Library))
	for i, r := range s.Library {
		if !games[r.ID] {
			add("library[%d]: id %d does not reference a catalog entry", i, r.ID)
		}
		if owned[r.ID] {
			add("library[%d]: duplicate id %d", i, r.ID)
		}
		owned[r.ID] = true

		if r.HoursPlayed < 0 {
			add("library[%d]: hours_played %d (valid: >= 0)", i, r.HoursPlayed)
		}
		if r.Progress < 0 || r.Progress > 100 {
			add("library[%d]: progress %d (valid: 0-100)", i, r.Progress)
		}
		a := r.Achievements
		if a.Unlocked < 0 || a.Total < 0 || a.Unlocked > a.Total {
			add("library[%d]: achievements %d/%d (valid: 0 <= unlocked <= total)", i, a.Unlocked, a.Total)
		}
	}

	friends := make(map[model.FriendID]bool, len(s.Friends))
	for i, f := range s.Friends {
		if friends[f.ID] {
			add("friends[%d]: duplicate id %d", i, f.ID)
		}
		friends[f.ID] = true

		switch f.Status {
		case model.FriendOnline, model.FriendOffline, model.FriendPlaying:
		default:
			add("friends[%d]: status %q (valid: online, offline, playing)", i, f.Status)
		}
	}

	return problems
}
