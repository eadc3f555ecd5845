package handler

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/mcoot/freeplay/internal/middleware"
	"github.com/mcoot/freeplay/internal/web/templates/layout"
)

// render writes a full page, logging template errors.
// The page is rendered into a buffer first so a failure can still become a 500.
func render(w http.ResponseWriter, r *http.Request, logger *slog.Logger, data layout.PageData, body templ.Component) {
	var buf bytes.Buffer
	if err := layout.Base(data).Render(templ.WithChildren(r.Context(), body), &buf); err != nil {
		logger.Error("render page",
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("page", string(data.Active)),
			slog.Any("error", err),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// NotFound renders the HTML 404 page
func NotFound(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	_ = layout.Error("Страница не найдена").Render(r.Context(), &buf)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(buf.Bytes())
}
