package storage

import (
	"context"

	"github.com/mcoot/freeplay/internal/model"
)

// Storage defines the interface for seed persistence.
// The catalog reads the published seed once at startup; nothing writes during requests.
type Storage interface {
	// SaveSeed replaces the published seed document
	SaveSeed(ctx context.Context, seed *model.Seed) error

	// GetSeed returns the published seed, or model.ErrSeedNotLoaded
	GetSeed(ctx context.Context) (*model.Seed, error)

	// SeedVersion returns the version of the published seed, or model.ErrSeedNotLoaded
	SeedVersion(ctx context.Context) (string, error)
}
