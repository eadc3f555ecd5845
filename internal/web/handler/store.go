package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/freeplay/internal/view"
	"github.com/mcoot/freeplay/internal/web/templates/layout"
	"github.com/mcoot/freeplay/internal/web/templates/pages"
)

// StoreHandler handles the store page
type StoreHandler struct {
	builder *view.Builder
	logger  *slog.Logger
}

// NewStoreHandler creates a new StoreHandler
func NewStoreHandler(builder *view.Builder, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		builder: builder,
		logger:  logger,
	}
}

// View renders the store
func (h *StoreHandler) View(w http.ResponseWriter, r *http.Request) {
	state := view.ParseState(view.PageStore, r.URL.Query())
	page := h.builder.Store(state)

	data := layout.PageData{
		Title:  "Магазин",
		Active: view.PageStore,
	}
	render(w, r, h.logger, data, pages.Store(page))
}
