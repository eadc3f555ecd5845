package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/freeplay/internal/view"
	"github.com/mcoot/freeplay/internal/web/handler"
	"github.com/mcoot/freeplay/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger    *slog.Logger
	Builder   *view.Builder
	StaticDir string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create handlers
	homeHandler := handler.NewHomeHandler(cfg.Builder, cfg.Logger)
	gameHandler := handler.NewGameHandler(cfg.Builder, cfg.Logger)
	libraryHandler := handler.NewLibraryHandler(cfg.Builder, cfg.Logger)
	storeHandler := handler.NewStoreHandler(cfg.Builder, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Pages
	r.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	r.HandleFunc("/game/{id}", gameHandler.View).Methods(http.MethodGet)
	r.HandleFunc("/library", libraryHandler.View).Methods(http.MethodGet)
	r.HandleFunc("/store", storeHandler.View).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(handler.NotFound)

	return r
}
