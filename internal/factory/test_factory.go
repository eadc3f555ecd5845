package factory

import (
	"context"
	"time"

	"golang.org/x/text/language"

	"github.com/mcoot/freeplay/internal/dependencies/mocks"
	"github.com/mcoot/freeplay/internal/storage/memory"
	"github.com/mcoot/freeplay/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(store, mockClock, language.Russian, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}

// LoadTestCatalog loads the shipped seed
func (t *TestApp) LoadTestCatalog() error {
	return t.Catalog.LoadDefault(context.Background())
}
