package handler

import (
	"net/http"

	"github.com/mcoot/freeplay/internal/api/request"
	"github.com/mcoot/freeplay/internal/api/response"
	"github.com/mcoot/freeplay/internal/view"
)

// LibraryHandler handles the library endpoint
type LibraryHandler struct {
	builder *view.Builder
}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler(builder *view.Builder) *LibraryHandler {
	return &LibraryHandler{builder: builder}
}

// List handles GET /api/v1/library
func (h *LibraryHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := request.ParseLibraryQuery(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	state := view.NewState(view.PageLibrary).SetQuery(q.Query).SetSort(q.Sort)
	response.JSON(w, http.StatusOK, response.LibraryFromPage(h.builder.Library(state)))
}
