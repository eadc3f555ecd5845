package handler

import (
	"net/http"

	"github.com/mcoot/freeplay/internal/api/request"
	"github.com/mcoot/freeplay/internal/api/response"
	"github.com/mcoot/freeplay/internal/view"
)

// StoreHandler handles the store endpoint
type StoreHandler struct {
	builder *view.Builder
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(builder *view.Builder) *StoreHandler {
	return &StoreHandler{builder: builder}
}

// Get handles GET /api/v1/store
func (h *StoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := request.ParseStoreQuery(r)
	state := view.NewState(view.PageStore).SetQuery(q.Query).SetCategory(q.Category)
	response.JSON(w, http.StatusOK, response.StoreFromPage(h.builder.Store(state)))
}
