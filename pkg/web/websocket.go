package web

import (
	"net/http"
	"sync"
	"sync/atomic"

	"golang.org/x/net/websocket"
)

// Represents a websocket connection from a client
type WSCONN struct {
	WS     *websocket.Conn
	Stop   chan bool
	once   sync.Once
	closed atomic.Bool
}

func newWSCONN(ws *websocket.Conn) *WSCONN {
	return &WSCONN{WS: ws, Stop: make(chan bool)}
}

func (t *WSCONN) IsClosed() bool {
	return t.closed.Load()
}

// Close releases the handler holding the connection open. It may be called
// from the relay and from the client reader at the same time.
func (t *WSCONN) Close() {
	t.once.Do(func() {
		t.closed.Store(true)
		close(t.Stop)
	})
}

// Handle incoming websocket connections for live scan results
func (t API) getScanSocket(w http.ResponseWriter, r *http.Request) {
	t.relay.GetWSHandler().ServeHTTP(w, r)
}
