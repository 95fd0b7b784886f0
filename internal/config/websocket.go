package config

import (
	"net/http"
	"slices"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocket carries the upgrader for /game/connect.
type WebSocket struct {
	Upgrader websocket.Upgrader
}

// NewWebSocket allows the given origins, or any origin when the list is
// empty.
func NewWebSocket(origins []string) *WebSocket {
	allowed := func(r *http.Request) bool {
		return len(origins) == 0 || slices.Contains(origins, r.Header.Get("Origin"))
	}
	return &WebSocket{
		Upgrader: websocket.Upgrader{
			HandshakeTimeout: 10 * time.Second,
			ReadBufferSize:   1024,
			WriteBufferSize:  16 * 1024, // a full board DTO per reply
			CheckOrigin:      allowed,
		},
	}
}
