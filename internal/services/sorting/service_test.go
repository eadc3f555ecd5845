package sorting

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/language"

	"github.com/mcoot/freeplay/internal/model"
	"github.com/mcoot/freeplay/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	library []model.LibraryEntry
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(language.Russian)
	s.library = []model.LibraryEntry{
		entry(1, "Dragon Quest Legends", 127),
		entry(2, "Neon Velocity", 64),
		entry(3, "Stellar Odyssey", 201),
		entry(4, "Shadow Strike", 89),
	}
}

func entry(id model.GameID, title string, hours int) model.LibraryEntry {
	return model.LibraryEntry{
		LibraryRecord: model.LibraryRecord{ID: id, HoursPlayed: hours},
		Title:         title,
	}
}

func hours(entries []model.LibraryEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.HoursPlayed
	}
	return out
}

func (s *ServiceSuite) TestSortRecentKeepsInputOrder() {
	got := s.service.Sort(s.library, model.SortRecent)
	if diff := cmp.Diff(s.library, got); diff != "" {
		s.Failf("recent reordered entries", "(-want +got):\n%s", diff)
	}
}

func (s *ServiceSuite) TestSortHours() {
	got := s.service.Sort(s.library, model.SortHours)
	s.Equal([]int{201, 127, 89, 64}, hours(got))
}

func (s *ServiceSuite) TestSortHoursScenario() {
	got := s.service.Sort(s.library[:3], model.SortHours)
	s.Equal([]int{201, 127, 64}, hours(got))
}

func (s *ServiceSuite) TestSortHoursStable() {
	lib := []model.LibraryEntry{
		entry(1, "A", 10),
		entry(2, "B", 20),
		entry(3, "C", 10),
		entry(4, "D", 20),
	}
	got := s.service.Sort(lib, model.SortHours)
	s.Equal([]string{"B", "D", "A", "C"}, testutil.Titles(got))
}

func (s *ServiceSuite) TestSortName() {
	got := s.service.Sort(s.library, model.SortName)
	s.Equal([]string{"Dragon Quest Legends", "Neon Velocity", "Shadow Strike", "Stellar Odyssey"}, testutil.Titles(got))
}

func (s *ServiceSuite) TestSortNameIgnoresCase() {
	lib := []model.LibraryEntry{
		entry(1, "gamma", 0),
		entry(2, "Beta", 0),
		entry(3, "alpha", 0),
	}
	got := s.service.Sort(lib, model.SortName)
	s.Equal([]string{"alpha", "Beta", "gamma"}, testutil.Titles(got))
}

func (s *ServiceSuite) TestSortNameCyrillic() {
	lib := []model.LibraryEntry{
		entry(1, "яблоко", 0),
		entry(2, "Ёж", 0),
		entry(3, "арбуз", 0),
	}
	got := s.service.Sort(lib, model.SortName)
	s.Equal([]string{"арбуз", "Ёж", "яблоко"}, testutil.Titles(got))
}

func (s *ServiceSuite) TestSortIsPermutation() {
	for _, key := range model.ValidSortKeys() {
		got := s.service.Sort(s.library, key)
		s.ElementsMatch(s.library, got, "key %s", key)
	}
}

func (s *ServiceSuite) TestSortDoesNotMutateInput() {
	before := append([]model.LibraryEntry(nil), s.library...)

	_ = s.service.Sort(s.library, model.SortHours)
	_ = s.service.Sort(s.library, model.SortName)

	s.Equal(before, s.library)
}

func (s *ServiceSuite) TestSortUnknownKeyKeepsOrder() {
	got := s.service.Sort(s.library, model.SortKey("rating"))
	s.Equal(testutil.Titles(s.library), testutil.Titles(got))
}

func (s *ServiceSuite) TestSortEmpty() {
	got := s.service.Sort(nil, model.SortName)
	s.NotNil(got)
	s.Empty(got)
}

func (s *ServiceSuite) TestParseSortKey() {
	for _, k := range []string{"recent", "hours", "name"} {
		key, err := ParseSortKey(k)
		s.Require().NoError(err)
		s.Equal(model.SortKey(k), key)
	}

	for _, k := range []string{"", "Hours", "rating"} {
		_, err := ParseSortKey(k)
		s.ErrorIs(err, model.ErrInvalidSortKey)
	}
}

func (s *ServiceSuite) TestSortIdempotent() {
	for _, key := range model.ValidSortKeys() {
		once := s.service.Sort(s.library, key)
		twice := s.service.Sort(once, key)
		if diff := cmp.Diff(once, twice); diff != "" {
			s.Failf("sort not idempotent", "key %q (-once +twice):\n%s", key, diff)
		}
	}
}
