package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcoot/freeplay/internal/model"
	"github.com/mcoot/freeplay/internal/seed"
)

// DefaultSeed returns the seed shipped with the binary, failing the test if it does not parse
func DefaultSeed(t testing.TB) *model.Seed {
	t.Helper()
	s, err := seed.Default()
	require.NoError(t, err)
	return s
}

// Titles returns the titles of the given entries, in order
func Titles[T interface{ GetTitle() string }](entries []T) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.GetTitle()
	}
	return out
}
