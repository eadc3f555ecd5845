package factory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/freeplay/internal/model"
	"github.com/mcoot/freeplay/internal/services/stats"
	redisstorage "github.com/mcoot/freeplay/internal/storage/redis"
	"github.com/mcoot/freeplay/internal/testutil"
	"github.com/mcoot/freeplay/internal/view"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.Require().NoError(s.app.LoadTestCatalog())
}

// Test: loading publishes the seed and stamps the load time from the clock
func (s *IntegrationSuite) TestLoadPublishesSeed() {
	version, err := s.app.Storage.SeedVersion(s.ctx)
	s.Require().NoError(err)
	s.Equal("2024.06.1", version)
	s.Equal(s.app.MockClock.Now(), s.app.Catalog.LoadedAt())
}

// Test: the home feed with a "neon" query shows only Neon Velocity
func (s *IntegrationSuite) TestHomeSearch() {
	state := view.NewState(view.PageHome).SetQuery("neon")
	page := s.app.Builder.Home(state)

	s.Equal([]string{"Neon Velocity"}, testutil.Titles(page.Popular))
	s.Equal(4, page.OnlineCount)
	s.Require().NotNil(page.Hero)
	s.Equal("Dragon Quest Legends", page.Hero.Title)
}

// Test: library sorted by hours, then filtered, keeps whole-library totals
func (s *IntegrationSuite) TestLibraryFlow() {
	state := view.NewState(view.PageLibrary).SetSort(model.SortHours)
	page := s.app.Builder.Library(state)

	hours := make([]int, len(page.Entries))
	for i, e := range page.Entries {
		hours[i] = e.HoursPlayed
	}
	s.Equal([]int{201, 127, 89, 64}, hours)
	s.Equal(481, page.TotalHours)
	s.Equal(1, page.CompletedCount)

	page = s.app.Builder.Library(state.SetQuery("zzz"))
	s.True(page.Empty())
	s.Equal(4, page.TotalGames)
	s.Equal(stats.TotalHours(s.app.Catalog.Library()), page.TotalHours)
}

// Test: an unknown title falls back to the default entry
func (s *IntegrationSuite) TestDetailFallback() {
	page := s.app.Builder.Detail(999, view.NewState(view.PageDetail))
	s.True(page.Fallback)
	s.Equal(model.GameID(1), page.Game.ID)
}

// Test: a seed file replaces the loaded catalog
func (s *IntegrationSuite) TestLoadCatalogFromFile() {
	path := filepath.Join(s.T().TempDir(), "seed.yaml")
	doc := `version: "test-1"
default_game_id: 5
home_categories: [all]
store_categories: [all]
games:
  - {id: 5, title: "Solo", image: "x", genre: [Puzzle], rating: 3, players: "1", description: "d", section: home}
library: []
friends: []
`
	s.Require().NoError(os.WriteFile(path, []byte(doc), 0o600))

	s.Require().NoError(s.app.LoadCatalog(s.ctx, path))
	s.Equal("test-1", s.app.Catalog.Version())
	s.Len(s.app.Catalog.Games(), 1)
}

// Test: a broken seed file is rejected and the previous catalog stays
func (s *IntegrationSuite) TestLoadCatalogRejectsInvalidFile() {
	path := filepath.Join(s.T().TempDir(), "seed.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("version: \"\"\n"), 0o600))

	err := s.app.LoadCatalog(s.ctx, path)
	s.Require().Error(err)
	s.ErrorIs(err, model.ErrInvalidSeed)
	s.Equal("2024.06.1", s.app.Catalog.Version())
}

func TestNewRejectsUnknownStorage(t *testing.T) {
	_, err := New(Config{StorageType: "disk"})
	if err == nil {
		t.Fatal("expected error for unknown storage type")
	}
}

func TestNewRedisRequiresConfig(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeRedis})
	if err == nil {
		t.Fatal("expected error without RedisConfig")
	}
}

type RedisFactorySuite struct {
	suite.Suite
	mr  *miniredis.Miniredis
	cfg Config
	ctx context.Context
}

func TestRedisFactorySuite(t *testing.T) {
	suite.Run(t, new(RedisFactorySuite))
}

func (s *RedisFactorySuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = "redis://" + s.mr.Addr()
	s.cfg = Config{
		StorageType: StorageTypeRedis,
		RedisConfig: &redisCfg,
		Logger:      testutil.NopLogger(),
	}
	s.ctx = context.Background()
}

func (s *RedisFactorySuite) newApp() *App {
	app, err := New(s.cfg)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = app.Close() })
	return app
}

// Test: with nothing published the shipped seed is loaded and published
func (s *RedisFactorySuite) TestFallsBackToShippedSeed() {
	app := s.newApp()
	s.Require().NoError(app.LoadCatalog(s.ctx, ""))
	s.Equal("2024.06.1", app.Catalog.Version())
	s.True(s.mr.Exists("freeplay:seed:current"))
}

// Test: a second instance serves what the first one published
func (s *RedisFactorySuite) TestSharesPublishedSeed() {
	publisher := s.newApp()
	sd := testutil.DefaultSeed(s.T())
	sd.Version = "2024.07.0"
	s.Require().NoError(publisher.Catalog.LoadSeed(s.ctx, sd))

	reader := s.newApp()
	s.Require().NoError(reader.LoadCatalog(s.ctx, ""))
	s.Equal("2024.07.0", reader.Catalog.Version())
	s.WithinDuration(time.Now(), reader.Catalog.LoadedAt(), time.Minute)
}

// Test: a corrupt published document is an error, not a silent fallback
func (s *RedisFactorySuite) TestCorruptPublishedSeed() {
	s.Require().NoError(s.mr.Set("freeplay:seed:current", "{not json"))
	s.Require().NoError(s.mr.Set("freeplay:seed:version", "x"))

	app := s.newApp()
	s.Error(app.LoadCatalog(s.ctx, ""))
	s.False(app.Catalog.IsLoaded())
}
