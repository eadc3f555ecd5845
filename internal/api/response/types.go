package response

import (
	"time"

	"github.com/mcoot/freeplay/internal/model"
	"github.com/mcoot/freeplay/internal/view"
)

// Game represents a catalog entry in API responses
type Game struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Image       string         `json:"image"`
	Genre       []string       `json:"genre"`
	Rating      float64        `json:"rating"`
	Players     string         `json:"players"`
	Description string         `json:"description"`
	Section     string         `json:"section"`
	Featured    bool           `json:"featured,omitempty"`
	NewRelease  bool           `json:"new_release,omitempty"`
	Discount    *int           `json:"discount,omitempty"`
	Details     *model.Details `json:"details,omitempty"`
}

// GameFromModel converts a model.CatalogEntry to a response Game
func GameFromModel(e model.CatalogEntry) Game {
	return Game{
		ID:          int(e.ID),
		Title:       e.Title,
		Image:       e.Image,
		Genre:       e.Genre,
		Rating:      e.Rating,
		Players:     e.Players,
		Description: e.Description,
		Section:     string(e.Section),
		Featured:    e.Featured,
		NewRelease:  e.NewRelease,
		Discount:    e.Discount,
		Details:     e.Details,
	}
}

// GamesFromModel converts a slice of catalog entries
func GamesFromModel(entries []model.CatalogEntry) []Game {
	out := make([]Game, len(entries))
	for i, e := range entries {
		out[i] = GameFromModel(e)
	}
	return out
}

// GamesResponse is the response for GET /games
type GamesResponse struct {
	Games []Game `json:"games"`
	Count int    `json:"count"`
}

// GameDetailResponse is the response for GET /games/{id}
type GameDetailResponse struct {
	Game     Game   `json:"game"`
	Fallback bool   `json:"fallback"`
	Similar  []Game `json:"similar"`
}

// GameDetailFromPage converts a detail page model
func GameDetailFromPage(p view.DetailPage) GameDetailResponse {
	return GameDetailResponse{
		Game:     GameFromModel(p.Game),
		Fallback: p.Fallback,
		Similar:  GamesFromModel(p.Similar),
	}
}

// Achievements represents achievement progress
type Achievements struct {
	Unlocked int  `json:"unlocked"`
	Total    int  `json:"total"`
	Complete bool `json:"complete"`
}

// LibraryEntry represents a library row
type LibraryEntry struct {
	ID           int          `json:"id"`
	Title        string       `json:"title"`
	Image        string       `json:"image"`
	Genre        []string     `json:"genre"`
	LastPlayed   string       `json:"last_played"`
	HoursPlayed  int          `json:"hours_played"`
	Progress     int          `json:"progress"`
	Achievements Achievements `json:"achievements"`
}

// LibraryEntryFromModel converts a model.LibraryEntry
func LibraryEntryFromModel(e model.LibraryEntry) LibraryEntry {
	return LibraryEntry{
		ID:          int(e.ID),
		Title:       e.Title,
		Image:       e.Image,
		Genre:       e.Genre,
		LastPlayed:  e.LastPlayed,
		HoursPlayed: e.HoursPlayed,
		Progress:    e.Progress,
		Achievements: Achievements{
			Unlocked: e.Achievements.Unlocked,
			Total:    e.Achievements.Total,
			Complete: e.Achievements.Complete(),
		},
	}
}

// LibraryResponse is the response for GET /library
type LibraryResponse struct {
	Sort              string         `json:"sort"`
	Entries           []LibraryEntry `json:"entries"`
	TotalGames        int            `json:"total_games"`
	TotalHours        int            `json:"total_hours"`
	TotalAchievements int            `json:"total_achievements"`
	Completed         int            `json:"completed"`
}

// LibraryFromPage converts a library page model
func LibraryFromPage(p view.LibraryPage) LibraryResponse {
	entries := make([]LibraryEntry, len(p.Entries))
	for i, e := range p.Entries {
		entries[i] = LibraryEntryFromModel(e)
	}
	return LibraryResponse{
		Sort:              string(p.State.Sort),
		Entries:           entries,
		TotalGames:        p.TotalGames,
		TotalHours:        p.TotalHours,
		TotalAchievements: p.TotalAchievements,
		Completed:         p.CompletedCount,
	}
}

// StoreResponse is the response for GET /store
type StoreResponse struct {
	Category   string   `json:"category"`
	Categories []string `json:"categories"`
	Featured   []Game   `json:"featured"`
	Discounted []Game   `json:"discounted"`
	Games      []Game   `json:"games"`
}

// StoreFromPage converts a store page model
func StoreFromPage(p view.StorePage) StoreResponse {
	return StoreResponse{
		Category:   p.State.Category,
		Categories: p.Categories,
		Featured:   GamesFromModel(p.Featured),
		Discounted: GamesFromModel(p.Discounted),
		Games:      GamesFromModel(p.Games),
	}
}

// Friend represents a friend in API responses
type Friend struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Game   string `json:"game,omitempty"` // Only while playing
	Avatar string `json:"avatar"`
}

// FriendFromModel converts a model.Friend
func FriendFromModel(f model.Friend) Friend {
	return Friend{
		ID:     int(f.ID),
		Name:   f.Name,
		Status: string(f.Status),
		Game:   f.CurrentGame(),
		Avatar: f.Avatar,
	}
}

// FriendsResponse is the response for GET /friends
type FriendsResponse struct {
	Friends     []Friend `json:"friends"`
	OnlineCount int      `json:"online_count"`
}

// HealthResponse is the response for GET /health
type HealthResponse struct {
	Status   string    `json:"status"`
	Version  string    `json:"version"`
	LoadedAt time.Time `json:"loaded_at"`
}
