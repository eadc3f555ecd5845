package model

import "errors"

// Common errors used across the application
var (
	// Seed errors
	ErrInvalidSeed   = errors.New("invalid seed document")
	ErrSeedNotLoaded = errors.New("seed not loaded")

	// Catalog errors
	ErrFriendNotFound = errors.New("friend not found")

	// View errors
	ErrInvalidSortKey = errors.New("invalid sort key")
	ErrInvalidGameID  = errors.New("invalid game id")
)
