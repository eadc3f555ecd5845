package handler

import (
	"net/http"

	"github.com/mcoot/freeplay/internal/api/response"
	"github.com/mcoot/freeplay/internal/model"
	"github.com/mcoot/freeplay/internal/services/catalog"
)

// HealthHandler reports whether the catalog is ready to serve
type HealthHandler struct {
	catalog catalog.ServiceInterface
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(catalog catalog.ServiceInterface) *HealthHandler {
	return &HealthHandler{catalog: catalog}
}

// Get handles GET /api/v1/health
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !h.catalog.IsLoaded() {
		WriteError(w, model.ErrSeedNotLoaded)
		return
	}
	response.JSON(w, http.StatusOK, response.HealthResponse{
		Status:   "ok",
		Version:  h.catalog.Version(),
		LoadedAt: h.catalog.LoadedAt(),
	})
}
