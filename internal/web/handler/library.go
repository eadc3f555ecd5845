package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/freeplay/internal/view"
	"github.com/mcoot/freeplay/internal/web/templates/layout"
	"github.com/mcoot/freeplay/internal/web/templates/pages"
)

// LibraryHandler handles the library page
type LibraryHandler struct {
	builder *view.Builder
	logger  *slog.Logger
}

// NewLibraryHandler creates a new LibraryHandler
func NewLibraryHandler(builder *view.Builder, logger *slog.Logger) *LibraryHandler {
	return &LibraryHandler{
		builder: builder,
		logger:  logger,
	}
}

// View renders the library. Unknown sort keys show the default ordering.
func (h *LibraryHandler) View(w http.ResponseWriter, r *http.Request) {
	state := view.ParseState(view.PageLibrary, r.URL.Query())
	page := h.builder.Library(state)

	data := layout.PageData{
		Title:  "Библиотека",
		Active: view.PageLibrary,
	}
	render(w, r, h.logger, data, pages.Library(page))
}
