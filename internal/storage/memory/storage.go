package memory

import (
	"context"
	"sync"

	"github.com/mcoot/freeplay/internal/model"
	"github.com/mcoot/freeplay/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu   sync.RWMutex
	seed *model.Seed
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// SaveSeed stores a private copy so later changes by the caller are not observed
func (s *Storage) SaveSeed(ctx context.Context, seed *model.Seed) error {
	c := seed.Clone()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seed = c
	return nil
}

func (s *Storage) GetSeed(ctx context.Context) (*model.Seed, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.seed == nil {
		return nil, model.ErrSeedNotLoaded
	}
	return s.seed.Clone(), nil
}

func (s *Storage) SeedVersion(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.seed == nil {
		return "", model.ErrSeedNotLoaded
	}
	return s.seed.Version, nil
}
