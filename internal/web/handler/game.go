package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/freeplay/internal/api/request"
	"github.com/mcoot/freeplay/internal/view"
	"github.com/mcoot/freeplay/internal/web/templates/layout"
	"github.com/mcoot/freeplay/internal/web/templates/pages"
)

// GameHandler handles the detail page of a title
type GameHandler struct {
	builder *view.Builder
	logger  *slog.Logger
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(builder *view.Builder, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		builder: builder,
		logger:  logger,
	}
}

// View renders a title. Unknown and malformed ids show the default title.
func (h *GameHandler) View(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseGameID(mux.Vars(r)["id"])
	if err != nil {
		id = 0
	}

	state := view.ParseState(view.PageDetail, r.URL.Query())
	page := h.builder.Detail(id, state)

	data := layout.PageData{
		Title:  page.Game.Title,
		Active: view.PageDetail,
	}
	render(w, r, h.logger, data, pages.Detail(page))
}
