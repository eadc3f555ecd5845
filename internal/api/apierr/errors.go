package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/freeplay/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInvalidSort    = "INVALID_SORT"
	CodeInvalidGameID  = "INVALID_GAME_ID"
	CodeInvalidSeed    = "INVALID_SEED"
	CodeSeedNotLoaded  = "SEED_NOT_LOADED"
	CodeFriendNotFound = "FRIEND_NOT_FOUND"
	CodeNotFound       = "NOT_FOUND"
	CodeInternalError  = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrInvalidSortKey):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSort, "Sort must be one of recent, hours, name"}}
	case errors.Is(err, model.ErrInvalidGameID):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidGameID, "Game id must be a number"}}
	case errors.Is(err, model.ErrInvalidSeed):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeInvalidSeed, err.Error()}}
	case errors.Is(err, model.ErrSeedNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeSeedNotLoaded, "Catalog not loaded"}}
	case errors.Is(err, model.ErrFriendNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeFriendNotFound, "Friend not found"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewNotFoundError creates a not found error for unknown routes
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Not found"}}
}

// NewInternalError creates an internal server error quoting the request id
// so clients can report it
func NewInternalError(requestID string) error {
	msg := "Internal server error"
	if requestID != "" {
		msg += " (request " + requestID + ")"
	}
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, msg}}
}
