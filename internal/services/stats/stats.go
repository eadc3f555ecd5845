// Package stats computes the summary figures shown alongside listings.
// Everything is recomputed from its inputs on each call.
package stats

import "github.com/mcoot/freeplay/internal/model"

// TotalHours sums hours played across library rows
func TotalHours(entries []model.LibraryEntry) int {
	total := 0
	for _, e := range entries {
		total += e.HoursPlayed
	}
	return total
}

// TotalAchievements sums unlocked achievements across library rows
func TotalAchievements(entries []model.LibraryEntry) int {
	total := 0
	for _, e := range entries {
		total += e.Achievements.Unlocked
	}
	return total
}

// CompletedCount counts library rows with every achievement unlocked
func CompletedCount(entries []model.LibraryEntry) int {
	n := 0
	for _, e := range entries {
		if e.Achievements.Complete() {
			n++
		}
	}
	return n
}

// OnlineCount counts friends who are online or playing
func OnlineCount(friends []model.Friend) int {
	n := 0
	for _, f := range friends {
		if f.IsOnline() {
			n++
		}
	}
	return n
}

// Featured returns featured entries in input order
func Featured(entries []model.CatalogEntry) []model.CatalogEntry {
	out := []model.CatalogEntry{}
	for _, e := range entries {
		if e.Featured {
			out = append(out, e)
		}
	}
	return out
}

// Discounted returns entries with a positive discount in input order
func Discounted(entries []model.CatalogEntry) []model.CatalogEntry {
	out := []model.CatalogEntry{}
	for _, e := range entries {
		if e.HasDiscount() {
			out = append(out, e)
		}
	}
	return out
}

// NewReleases returns entries flagged as new releases in input order
func NewReleases(entries []model.CatalogEntry) []model.CatalogEntry {
	out := []model.CatalogEntry{}
	for _, e := range entries {
		if e.NewRelease {
			out = append(out, e)
		}
	}
	return out
}
