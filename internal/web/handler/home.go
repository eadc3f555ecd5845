package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/freeplay/internal/view"
	"github.com/mcoot/freeplay/internal/web/templates/layout"
	"github.com/mcoot/freeplay/internal/web/templates/pages"
)

// HomeHandler handles the home page
type HomeHandler struct {
	builder *view.Builder
	logger  *slog.Logger
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(builder *view.Builder, logger *slog.Logger) *HomeHandler {
	return &HomeHandler{
		builder: builder,
		logger:  logger,
	}
}

// Home renders the home page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	state := view.ParseState(view.PageHome, r.URL.Query())
	page := h.builder.Home(state)

	data := layout.PageData{
		Title:  "Главная",
		Active: view.PageHome,
	}
	render(w, r, h.logger, data, pages.Home(page))
}
