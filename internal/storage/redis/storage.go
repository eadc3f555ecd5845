package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/freeplay/internal/model"
	"github.com/mcoot/freeplay/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// It lets several server instances share one published seed.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveSeed(ctx context.Context, seed *model.Seed) error {
	data, err := json.Marshal(seed)
	if err != nil {
		return fmt.Errorf("encode seed: %w", err)
	}

	// Use pipeline so the document and its version are published together
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, seedKey(), data, s.cfg.SeedTTL)
	pipe.Set(ctx, seedVersionKey(), seed.Version, s.cfg.SeedTTL)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetSeed(ctx context.Context) (*model.Seed, error) {
	data, err := s.client.Get(ctx, seedKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSeedNotLoaded
		}
		return nil, err
	}

	var seed model.Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return &seed, nil
}

func (s *Storage) SeedVersion(ctx context.Context) (string, error) {
	version, err := s.client.Get(ctx, seedVersionKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrSeedNotLoaded
		}
		return "", err
	}
	return version, nil
}
