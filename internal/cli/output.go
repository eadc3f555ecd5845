package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mcoot/freeplay/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		o.println(msg)
	}
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

func (o *Output) println(s string) {
	_, _ = fmt.Fprintln(o.w, s)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.GamesResponse:
		o.printGames(v)
	case GameDetail:
		o.printGameDetail(v)
	case response.LibraryResponse:
		o.printLibrary(v)
	case response.StoreResponse:
		o.printStore(v)
	case response.FriendsResponse:
		o.printFriends(v)
	case response.HealthResponse:
		o.printHealth(v)
	case SeedSummary:
		o.printSeedSummary(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// GameDetail pairs a detail response with the id that was asked for
type GameDetail struct {
	RequestedID int `json:"requested_id"`
	response.GameDetailResponse
}

// SeedSummary describes a seed document that passed validation
type SeedSummary struct {
	Version   string `json:"version"`
	Games     int    `json:"games"`
	Library   int    `json:"library"`
	Friends   int    `json:"friends"`
	Published bool   `json:"published"`
}

func (o *Output) printGameRow(g response.Game) {
	discount := ""
	if g.Discount != nil && *g.Discount > 0 {
		discount = fmt.Sprintf("  -%d%%", *g.Discount)
	}
	o.printf("%4d  %-24s %.1f★  %-6s %s%s\n", g.ID, g.Title, g.Rating, g.Players, strings.Join(g.Genre, ", "), discount)
}

func (o *Output) printGames(r response.GamesResponse) {
	for _, g := range r.Games {
		o.printGameRow(g)
	}
	o.printf("%d games\n", r.Count)
}

func (o *Output) printGameDetail(d GameDetail) {
	g := d.Game
	if d.Fallback {
		o.printf("Game %d not found, showing %d\n", d.RequestedID, g.ID)
	}
	o.printf("%s (%d)\n", g.Title, g.ID)
	o.printf("Genres: %s\n", strings.Join(g.Genre, ", "))
	o.printf("Rating: %.1f\n", g.Rating)
	o.printf("Players: %s\n", g.Players)
	o.printf("Section: %s\n", g.Section)
	o.printf("%s\n", g.Description)

	if det := g.Details; det != nil {
		o.printf("\nDeveloper: %s\n", det.Developer)
		o.printf("Released: %s\n", det.ReleaseDate)
		o.printf("Size: %s\n", det.Size)
		o.printf("Requirements: %s / %s / %s / %s\n",
			det.Requirements.OS, det.Requirements.Processor, det.Requirements.Memory, det.Requirements.Graphics)
		o.printf("Reviews: %d\n", len(det.Reviews))
	}

	if len(d.Similar) > 0 {
		o.println("\nSimilar:")
		for _, s := range d.Similar {
			o.printGameRow(s)
		}
	}
}

func (o *Output) printLibrary(r response.LibraryResponse) {
	if len(r.Entries) == 0 {
		o.println("No games found")
	}
	for _, e := range r.Entries {
		complete := ""
		if e.Achievements.Complete {
			complete = "  [100%]"
		}
		o.printf("%4d  %-24s %4dh  %3d%%  %d/%d%s  (%s)\n",
			e.ID, e.Title, e.HoursPlayed, e.Progress,
			e.Achievements.Unlocked, e.Achievements.Total, complete, e.LastPlayed)
	}
	o.printf("\nGames: %d  Hours: %d  Achievements: %d  Completed: %d  (sort: %s)\n",
		r.TotalGames, r.TotalHours, r.TotalAchievements, r.Completed, r.Sort)
}

func (o *Output) printStore(r response.StoreResponse) {
	o.println("Featured:")
	for _, g := range r.Featured {
		o.printGameRow(g)
	}
	o.println("\nDeals:")
	for _, g := range r.Discounted {
		o.printGameRow(g)
	}
	o.printf("\nGames (%s):\n", r.Category)
	if len(r.Games) == 0 {
		o.println("No games found")
	}
	for _, g := range r.Games {
		o.printGameRow(g)
	}
}

func (o *Output) printFriends(r response.FriendsResponse) {
	for _, f := range r.Friends {
		status := f.Status
		if f.Game != "" {
			status += ": " + f.Game
		}
		o.printf("%s %-12s %s\n", f.Avatar, f.Name, status)
	}
	o.printf("%d online\n", r.OnlineCount)
}

func (o *Output) printHealth(h response.HealthResponse) {
	o.printf("Status: %s\n", h.Status)
	o.printf("Seed version: %s\n", h.Version)
	o.printf("Loaded at: %s\n", h.LoadedAt.Format(time.RFC3339))
}

func (o *Output) printSeedSummary(s SeedSummary) {
	verb := "valid"
	if s.Published {
		verb = "published"
	}
	o.printf("Seed %s %s: %d games, %d library entries, %d friends\n", s.Version, verb, s.Games, s.Library, s.Friends)
}
