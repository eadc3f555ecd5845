package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/mcoot/freeplay/internal/dependencies/clock"
	"github.com/mcoot/freeplay/internal/model"
	"github.com/mcoot/freeplay/internal/services/catalog"
	"github.com/mcoot/freeplay/internal/services/sorting"
	"github.com/mcoot/freeplay/internal/storage"
	"github.com/mcoot/freeplay/internal/storage/memory"
	redisstorage "github.com/mcoot/freeplay/internal/storage/redis"
	"github.com/mcoot/freeplay/internal/view"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	Catalog *catalog.Service
	Sorter  *sorting.Service
	Builder *view.Builder

	storageType string
	logger      *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Locale selects title collation for the library page
	// If zero, defaults to Russian
	Locale language.Tag
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	locale := cfg.Locale
	if locale == language.Und {
		locale = language.Russian
	}

	app := newWithDependencies(store, clock.New(), locale, logger)
	app.storageType = storageType
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, locale language.Tag, logger *slog.Logger) *App {
	catalogService := catalog.New(store, clk, logger)
	sorter := sorting.New(locale)

	return &App{
		Storage:     store,
		Clock:       clk,
		Catalog:     catalogService,
		Sorter:      sorter,
		Builder:     view.NewBuilder(catalogService, sorter),
		storageType: StorageTypeMemory,
		logger:      logger,
	}
}

// LoadCatalog loads the catalog at startup.
// A seed path is parsed and published. Otherwise redis storage serves the
// currently published seed, falling back to the shipped one when nothing is
// published yet, and memory storage serves the shipped seed.
func (a *App) LoadCatalog(ctx context.Context, seedPath string) error {
	if seedPath != "" {
		if err := a.Catalog.LoadFromFile(ctx, seedPath); err != nil {
			return fmt.Errorf("load seed file: %w", err)
		}
		return nil
	}

	if a.storageType == StorageTypeRedis {
		err := a.Catalog.LoadFromStorage(ctx)
		if err == nil {
			return nil
		}
		if !errors.Is(err, model.ErrSeedNotLoaded) {
			return fmt.Errorf("load published seed: %w", err)
		}
		a.logger.Info("no published seed, using shipped seed")
	}

	if err := a.Catalog.LoadDefault(ctx); err != nil {
		return fmt.Errorf("load shipped seed: %w", err)
	}
	return nil
}

// Close releases storage connections
func (a *App) Close() error {
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
