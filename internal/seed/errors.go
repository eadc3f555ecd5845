package seed

import (
	"strings"

	"github.com/mcoot/freeplay/internal/model"
)

// ValidationError lists every problem found in a seed document
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return model.ErrInvalidSeed.Error() + ": " + strings.Join(e.Problems, "; ")
}

// Unwrap lets callers match the error with errors.Is(err, model.ErrInvalidSeed)
func (e *ValidationError) Unwrap() error {
	return model.ErrInvalidSeed
}

func invalid(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}
