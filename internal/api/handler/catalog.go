package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/freeplay/internal/api/request"
	"github.com/mcoot/freeplay/internal/api/response"
	"github.com/mcoot/freeplay/internal/model"
	"github.com/mcoot/freeplay/internal/services/catalog"
	"github.com/mcoot/freeplay/internal/services/filter"
	"github.com/mcoot/freeplay/internal/view"
)

// CatalogHandler handles catalog endpoints
type CatalogHandler struct {
	catalog catalog.ServiceInterface
	builder *view.Builder
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog catalog.ServiceInterface, builder *view.Builder) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		builder: builder,
	}
}

// List handles GET /api/v1/games
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := request.ParseGamesQuery(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var games []model.CatalogEntry
	if q.Section == "" {
		games = h.catalog.Games()
	} else {
		games = h.catalog.Section(q.Section)
	}
	games = filter.Filter(games, q.Query, q.Genre)

	response.JSON(w, http.StatusOK, response.GamesResponse{
		Games: response.GamesFromModel(games),
		Count: len(games),
	})
}

// Get handles GET /api/v1/games/{id}. Unknown ids return the default entry
// with fallback set rather than 404.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseGameID(mux.Vars(r)["id"])
	if err != nil {
		WriteError(w, err)
		return
	}

	page := h.builder.Detail(id, view.NewState(view.PageDetail))
	response.JSON(w, http.StatusOK, response.GameDetailFromPage(page))
}
