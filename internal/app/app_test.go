package app

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minefield/internal/config"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func testConfig() *config.Config {
	return &config.Config{
		Addr:         "127.0.0.1:0",
		Width:        5,
		Height:       4,
		MineCount:    3,
		CascadeDepth: -1,
		Seed:         1,
	}
}

func TestRoutes(t *testing.T) {
	cfg := testConfig()
	cfg.BasePath = "/api"
	a, err := New(discard, cfg)
	require.NoError(t, err)

	server := httptest.NewServer(a.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/game")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var game map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&game))
	assert.Equal(t, "playing", game["state"])
	assert.EqualValues(t, 5, game["width"])
	assert.EqualValues(t, 3, game["mine_count"])

	resp, err = http.Post(server.URL+"/api/game?width=3&height=3&mine_count=1", "", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Post(server.URL+"/api/game/move?move=flag&x=1&y=1", "", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Post(server.URL+"/api/game/forfeit", "", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/game/move")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.MineCount = 100
	_, err := New(discard, cfg)
	assert.Error(t, err)
}

func TestStartStopsOnCancel(t *testing.T) {
	a, err := New(discard, testConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
