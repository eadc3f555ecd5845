package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mcoot/freeplay/internal/api"
	"github.com/mcoot/freeplay/internal/config"
	"github.com/mcoot/freeplay/internal/factory"
	"github.com/mcoot/freeplay/internal/logging"
	redisstorage "github.com/mcoot/freeplay/internal/storage/redis"
	"github.com/mcoot/freeplay/internal/telemetry"
	"github.com/mcoot/freeplay/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.File = cfg.LogFile
	logger, logCloser := logging.New(logCfg)
	defer func() { _ = logCloser.Close() }()
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		_ = logCloser.Close()
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func run(cfg config.Config, logger *slog.Logger) error {
	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTelEndpoint)
	if err != nil {
		return err
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	locale, err := cfg.Language()
	if err != nil {
		return err
	}

	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
		Locale:      locale,
	}
	if cfg.StorageType == config.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	// Load the catalog once at startup
	if err := app.LoadCatalog(ctx, cfg.SeedPath); err != nil {
		return err
	}

	// Create API router
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:  logger,
		Catalog: app.Catalog,
		Builder: app.Builder,
	})

	// Create web router
	staticDir := cfg.StaticDir
	if staticDir == "" {
		staticDir = findStaticDir()
	}
	webRouter := web.NewRouter(web.RouterConfig{
		Logger:    logger,
		Builder:   app.Builder,
		StaticDir: staticDir,
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	// Create server
	serverConfig := api.ServerConfig{
		Host:            cfg.Host,
		Port:            cfg.Port,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}
	server := api.NewServer(telemetry.Middleware("freeplay")(mux), serverConfig, logger)

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		return server.Shutdown(context.Background())
	}
}

// findStaticDir looks for the static files directory
func findStaticDir() string {
	// Try common locations
	candidates := []string{
		"internal/web/static",
		"./internal/web/static",
		filepath.Join(os.Getenv("PWD"), "internal/web/static"),
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}

	// Default to relative path
	return "internal/web/static"
}
