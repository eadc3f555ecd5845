package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/freeplay/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func testSeed() *model.Seed {
	discount := 30
	return &model.Seed{
		Version:        "2024.1",
		DefaultGameID:  1,
		HomeCategories: []string{"all", "RPG"},
		Games: []model.CatalogEntry{
			{ID: 1, Title: "Dragon Quest Legends", Genre: []string{"RPG"}, Section: model.SectionHome},
			{ID: 7, Title: "Cyber Legends", Genre: []string{"RPG"}, Section: model.SectionStore, Discount: &discount},
		},
		Library: []model.LibraryRecord{{ID: 1, HoursPlayed: 127}},
		Friends: []model.Friend{{ID: 1, Name: "Алексей", Status: model.FriendOnline}},
	}
}

func (s *StorageSuite) TestSaveAndGetSeed() {
	seed := testSeed()

	err := s.storage.SaveSeed(s.ctx, seed)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSeed(s.ctx)
	s.Require().NoError(err)
	s.Equal(seed, retrieved)
}

func (s *StorageSuite) TestGetSeedNotLoaded() {
	_, err := s.storage.GetSeed(s.ctx)
	s.ErrorIs(err, model.ErrSeedNotLoaded)

	_, err = s.storage.SeedVersion(s.ctx)
	s.ErrorIs(err, model.ErrSeedNotLoaded)
}

func (s *StorageSuite) TestSeedVersion() {
	s.Require().NoError(s.storage.SaveSeed(s.ctx, testSeed()))

	version, err := s.storage.SeedVersion(s.ctx)
	s.Require().NoError(err)
	s.Equal("2024.1", version)
}

func (s *StorageSuite) TestSaveSeedReplacesPrevious() {
	s.Require().NoError(s.storage.SaveSeed(s.ctx, testSeed()))

	next := testSeed()
	next.Version = "2024.2"
	next.Games = next.Games[:1]
	s.Require().NoError(s.storage.SaveSeed(s.ctx, next))

	retrieved, err := s.storage.GetSeed(s.ctx)
	s.Require().NoError(err)
	s.Equal("2024.2", retrieved.Version)
	s.Len(retrieved.Games, 1)
}

func (s *StorageSuite) TestSeedIsCopiedOnSave() {
	seed := testSeed()
	s.Require().NoError(s.storage.SaveSeed(s.ctx, seed))

	seed.Games[0].Title = "changed"
	*seed.Games[1].Discount = 99

	retrieved, err := s.storage.GetSeed(s.ctx)
	s.Require().NoError(err)
	s.Equal("Dragon Quest Legends", retrieved.Games[0].Title)
	s.Equal(30, retrieved.Games[1].DiscountPercent())
}

func (s *StorageSuite) TestSeedIsCopiedOnGet() {
	s.Require().NoError(s.storage.SaveSeed(s.ctx, testSeed()))

	first, err := s.storage.GetSeed(s.ctx)
	s.Require().NoError(err)
	first.Games[0].Genre[0] = "changed"

	second, err := s.storage.GetSeed(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"RPG"}, second.Games[0].Genre)
}
