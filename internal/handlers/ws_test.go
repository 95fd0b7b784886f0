package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialGame(t *testing.T, h *GameHandler) *websocket.Conn {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(h.ConnectWS))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, msg string) map[string]any {
	t.Helper()
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(msg)))
	var reply map[string]any
	require.NoError(t, conn.ReadJSON(&reply))
	return reply
}

func TestWSGameLoop(t *testing.T) {
	h := newTestHandler(t, stripGame(t))
	conn := dialGame(t, h)

	reply := roundTrip(t, conn, "g")
	assert.Equal(t, "playing", reply["state"])

	reply = roundTrip(t, conn, "o 2 0")
	assert.Equal(t, "playing", reply["state"])
	assert.Len(t, reply["revealed"], 2)

	reply = roundTrip(t, conn, "f 0 0")
	assert.Equal(t, "won", reply["state"])
}

func TestWSBatchAndErrors(t *testing.T) {
	h := newTestHandler(t, stripGame(t))
	conn := dialGame(t, h)

	reply := roundTrip(t, conn, "dig 1 1")
	assert.Contains(t, reply["error"], "unknown command")

	reply = roundTrip(t, conn, "o 1")
	assert.Contains(t, reply["error"], "expected 2 arguments")

	reply = roundTrip(t, conn, "o 9 9")
	assert.Contains(t, reply["error"], ErrInvalidPosition.Error())

	reply = roundTrip(t, conn, "f 2 0\no 1 0\nr")
	assert.Equal(t, "lost", reply["state"])

	reply = roundTrip(t, conn, "n 4 4 2")
	assert.Equal(t, "playing", reply["state"])
	assert.EqualValues(t, 2, reply["mine_count"])
	assert.Len(t, reply["cells"], 16)
}
