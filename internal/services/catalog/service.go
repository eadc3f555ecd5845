// Package catalog answers read-only queries over the loaded seed.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mcoot/freeplay/internal/dependencies/clock"
	"github.com/mcoot/freeplay/internal/model"
	"github.com/mcoot/freeplay/internal/seed"
	"github.com/mcoot/freeplay/internal/storage"
)

// Service holds the loaded seed and answers read-only catalog queries.
// Every accessor returns a copy; the loaded data is never modified in place.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	mu       sync.RWMutex
	seed     *model.Seed
	index    map[model.GameID]int
	library  []model.LibraryEntry
	friends  map[model.FriendID]int
	loadedAt time.Time
}

// New creates a new catalog Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// LoadFromStorage loads the seed currently published in storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	sd, err := s.storage.GetSeed(ctx)
	if err != nil {
		return err
	}
	if problems := seed.Validate(sd); len(problems) > 0 {
		return &seed.ValidationError{Problems: problems}
	}
	s.apply(sd)
	return nil
}

// LoadFromFile parses a seed file, publishes it to storage and loads it
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	sd, err := seed.LoadFile(path)
	if err != nil {
		return err
	}
	return s.LoadSeed(ctx, sd)
}

// LoadDefault loads the seed shipped with the binary
func (s *Service) LoadDefault(ctx context.Context) error {
	sd, err := seed.Default()
	if err != nil {
		return err
	}
	return s.LoadSeed(ctx, sd)
}

// LoadSeed validates a decoded seed, publishes it to storage and loads it
func (s *Service) LoadSeed(ctx context.Context, sd *model.Seed) error {
	if problems := seed.Validate(sd); len(problems) > 0 {
		return &seed.ValidationError{Problems: problems}
	}
	if err := s.storage.SaveSeed(ctx, sd); err != nil {
		return fmt.Errorf("save seed: %w", err)
	}
	s.apply(sd)
	return nil
}

// apply swaps in a validated seed
func (s *Service) apply(sd *model.Seed) {
	sd = sd.Clone()

	index := make(map[model.GameID]int, len(sd.Games))
	for i, g := range sd.Games {
		index[g.ID] = i
	}

	// Join library rows with the catalog so they can be filtered and sorted by title
	library := make([]model.LibraryEntry, 0, len(sd.Library))
	for _, r := range sd.Library {
		g := sd.Games[index[r.ID]]
		library = append(library, model.LibraryEntry{
			LibraryRecord: r,
			Title:         g.Title,
			Image:         g.Image,
			Genre:         append([]string(nil), g.Genre...),
		})
	}

	friends := make(map[model.FriendID]int, len(sd.Friends))
	for i, f := range sd.Friends {
		friends[f.ID] = i
	}

	s.mu.Lock()
	s.seed = sd
	s.index = index
	s.library = library
	s.friends = friends
	s.loadedAt = s.clock.Now()
	s.mu.Unlock()

	s.logger.Info("catalog loaded",
		slog.String("version", sd.Version),
		slog.Int("games", len(sd.Games)),
		slog.Int("library", len(library)),
		slog.Int("friends", len(sd.Friends)),
	)
}

// IsLoaded returns whether a seed has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seed != nil
}

// Version returns the version of the loaded seed, or "" before loading
func (s *Service) Version() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.seed == nil {
		return ""
	}
	return s.seed.Version
}

// LoadedAt returns when the seed was loaded, or the zero time before loading
func (s *Service) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Games returns every catalog entry in seed order
func (s *Service) Games() []model.CatalogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.seed == nil {
		return []model.CatalogEntry{}
	}
	out := make([]model.CatalogEntry, len(s.seed.Games))
	for i, g := range s.seed.Games {
		out[i] = g.Clone()
	}
	return out
}

// Section returns the entries listed on one storefront page, in seed order
func (s *Service) Section(section model.Section) []model.CatalogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.CatalogEntry{}
	if s.seed == nil {
		return out
	}
	for _, g := range s.seed.Games {
		if g.Section == section {
			out = append(out, g.Clone())
		}
	}
	return out
}

// Library returns the library rows in seed order
func (s *Service) Library() []model.LibraryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.LibraryEntry, len(s.library))
	for i, e := range s.library {
		out[i] = e
		out[i].Genre = append([]string(nil), e.Genre...)
	}
	return out
}

// Friends returns the friends list in seed order
func (s *Service) Friends() []model.Friend {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.seed == nil {
		return []model.Friend{}
	}
	return append([]model.Friend{}, s.seed.Friends...)
}

// Categories returns the category tabs for a storefront page
func (s *Service) Categories(section model.Section) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.seed == nil {
		return []string{model.CategoryAll}
	}
	switch section {
	case model.SectionStore:
		return append([]string{}, s.seed.StoreCategories...)
	default:
		return append([]string{}, s.seed.HomeCategories...)
	}
}

// Lookup returns the entry with the given id. On a miss it returns the
// default entry with found == false. It returns a zero entry only before loading.
func (s *Service) Lookup(id model.GameID) (entry model.CatalogEntry, found bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.seed == nil {
		return model.CatalogEntry{}, false
	}
	if i, ok := s.index[id]; ok {
		return s.seed.Games[i].Clone(), true
	}
	return s.seed.Games[s.index[s.seed.DefaultGameID]].Clone(), false
}

// Friend returns the friend with the given id
func (s *Service) Friend(id model.FriendID) (model.Friend, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.friends[id]
	if !ok {
		return model.Friend{}, false
	}
	return s.seed.Friends[i], true
}

// Similar returns up to n other entries sharing at least one genre with entry,
// in seed order
func (s *Service) Similar(entry model.CatalogEntry, n int) []model.CatalogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.CatalogEntry{}
	if s.seed == nil || n <= 0 {
		return out
	}
	for _, g := range s.seed.Games {
		if len(out) == n {
			break
		}
		if g.ID == entry.ID {
			continue
		}
		for _, tag := range entry.Genre {
			if g.HasGenre(tag) {
				out = append(out, g.Clone())
				break
			}
		}
	}
	return out
}

// Interface check
type ServiceInterface interface {
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadDefault(ctx context.Context) error
	LoadSeed(ctx context.Context, sd *model.Seed) error
	IsLoaded() bool
	Version() string
	LoadedAt() time.Time
	Games() []model.CatalogEntry
	Section(section model.Section) []model.CatalogEntry
	Library() []model.LibraryEntry
	Friends() []model.Friend
	Categories(section model.Section) []string
	Lookup(id model.GameID) (model.CatalogEntry, bool)
	Friend(id model.FriendID) (model.Friend, bool)
	Similar(entry model.CatalogEntry, n int) []model.CatalogEntry
}

var _ ServiceInterface = (*Service)(nil)
