package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/freeplay/internal/api/handler"
	"github.com/mcoot/freeplay/internal/api/middleware"
	"github.com/mcoot/freeplay/internal/services/catalog"
	"github.com/mcoot/freeplay/internal/view"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger  *slog.Logger
	Catalog catalog.ServiceInterface
	Builder *view.Builder
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	catalogHandler := handler.NewCatalogHandler(cfg.Catalog, cfg.Builder)
	libraryHandler := handler.NewLibraryHandler(cfg.Builder)
	storeHandler := handler.NewStoreHandler(cfg.Builder)
	friendsHandler := handler.NewFriendsHandler(cfg.Catalog)
	healthHandler := handler.NewHealthHandler(cfg.Catalog)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Catalog routes
	api.HandleFunc("/games", catalogHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", catalogHandler.Get).Methods(http.MethodGet)

	// Page routes
	api.HandleFunc("/library", libraryHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/store", storeHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/friends", friendsHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/friends/{id}", friendsHandler.Get).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler.Get).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(handler.NotFound)

	return r
}
