package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/freeplay/internal/api/apierr"
	"github.com/mcoot/freeplay/internal/middleware"
)

// Recovery answers a panicking API handler with a JSON INTERNAL_ERROR body
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, r *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError(middleware.GetRequestID(r.Context())))
	})
}
