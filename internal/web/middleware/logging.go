package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/freeplay/internal/middleware"
)

// Logging creates request id and logging middleware for the web interface
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return middleware.RequestID()(middleware.Logging(logger)(next))
	}
}
