package e2e_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/freeplay/internal/api"
	"github.com/mcoot/freeplay/internal/factory"
	redisstorage "github.com/mcoot/freeplay/internal/storage/redis"
	"github.com/mcoot/freeplay/internal/web"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "freeplay-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/freeplay")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T, cfg factory.Config) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg.Logger = logger

	// Create application
	projectRoot := findProjectRoot(t)
	app, err := factory.New(cfg)
	require.NoError(t, err)
	require.NoError(t, app.LoadCatalog(context.Background(), ""))

	// Create routers
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:  logger,
		Catalog: app.Catalog,
		Builder: app.Builder,
	})

	webRouter := web.NewRouter(web.RouterConfig{
		Logger:    logger,
		Builder:   app.Builder,
		StaticDir: filepath.Join(projectRoot, "internal/web/static"),
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	ts := &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
			_ = app.Close()
		},
	}
	t.Cleanup(ts.shutdown)
	return ts
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatalf("server did not become ready at %s", url)
}

func TestCLIBrowse(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	server := startTestServer(t, factory.Config{})
	cli := newCLIRunner(t, server.addr)

	out, err := cli.run("health")
	require.NoError(t, err, out)

	var health struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "2024.06.1", health.Version)

	out, err = cli.run("games", "list", "--query", "neon")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Neon Velocity")

	out, err = cli.run("games", "show", "999")
	require.NoError(t, err, out)
	assert.Contains(t, out, `"fallback": true`)

	out, err = cli.run("library", "--sort", "bogus")
	require.Error(t, err)
	assert.Contains(t, out, "INVALID_SORT")
}

func TestPagesAndStaticFiles(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	server := startTestServer(t, factory.Config{})

	for _, path := range []string{"/", "/library", "/store", "/game/1", "/static/css/app.css"} {
		resp, err := http.Get(server.addr + path)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

// Test: a seed published by the CLI is served by servers started afterwards
func TestPublishedSeedIsShared(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	mr := miniredis.RunT(t)
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = "redis://" + mr.Addr()

	seedPath := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(`version: "e2e-2"
default_game_id: 1
home_categories: [all]
store_categories: [all]
games:
  - {id: 1, title: "Only Game", image: "x", genre: [Puzzle], rating: 4, players: "10", description: "d", section: home}
library: []
friends: []
`), 0o600))

	publisher := newCLIRunner(t, "")
	out, err := publisher.run("seed", "publish", "--redis-url", redisCfg.URL, seedPath)
	require.NoError(t, err, out)

	server := startTestServer(t, factory.Config{
		StorageType: factory.StorageTypeRedis,
		RedisConfig: &redisCfg,
	})
	cli := newCLIRunner(t, server.addr)

	out, err = cli.run("games", "list")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Only Game")
	assert.Contains(t, out, `"count": 1`)
}
