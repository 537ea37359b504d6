package web

import (
	"context"
	"io"
	"sync"
	"time"

	wifiscan "github.com/dogeorg/wifiscan/pkg"
	"github.com/dogeorg/wifiscan/pkg/view"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/websocket"
)

// ScanUpdate is what live dashboard clients receive after every scan.
type ScanUpdate struct {
	Type     string                `json:"type"`
	At       time.Time             `json:"at"`
	Networks []wifiscan.ScanRecord `json:"networks"`
}

/* WSRelay
 *
 * WSRelay is a watch.Display that fans each refreshed view out
 * to every connected websocket client. New clients get the most
 * recent scan straight away.
 */
type WSRelay struct {
	socks  []*WSCONN
	relay  chan ScanUpdate
	newWs  chan *WSCONN
	done   chan struct{}
	mu     sync.Mutex
	latest *ScanUpdate
	log    logrus.FieldLogger
}

func NewWSRelay(log logrus.FieldLogger) *WSRelay {
	return &WSRelay{
		socks: []*WSCONN{},              // all current connections
		relay: make(chan ScanUpdate, 1), // updates from the refresh loop
		newWs: make(chan *WSCONN),       // recieve new WSCONNs
		done:  make(chan struct{}),
		log:   log.WithField("component", "relay"),
	}
}

func (t *WSRelay) Run(started, stopped chan bool, stop chan context.Context) error {
	cleanupTime := 10 * time.Second
	go func() {
		cleanup := time.NewTimer(cleanupTime)
		defer cleanup.Stop()

		started <- true
	mainloop:
		for {
			select {
			case <-stop:
				break mainloop
			case ws := <-t.newWs:
				t.addSock(ws)
			case v := <-t.relay:
				t.broadcast(v)
			case <-cleanup.C:
				t.cleanupSocks()
				cleanup.Reset(cleanupTime)
			}
		}

		close(t.done)
		for _, sock := range t.socks {
			sock.Close()
		}
		stopped <- true
	}()
	return nil
}

// Update implements watch.Display. It never blocks the refresh loop: if the
// relay is behind, the older pending update is replaced.
func (t *WSRelay) Update(v view.View) {
	u := ScanUpdate{Type: "scan", At: time.Now(), Networks: v.Records()}

	t.mu.Lock()
	t.latest = &u
	t.mu.Unlock()

	for {
		select {
		case t.relay <- u:
			return
		case <-t.done:
			return
		default:
		}
		select {
		case <-t.relay:
		default:
		}
	}
}

func (t *WSRelay) Stop() {}

func (t *WSRelay) Latest() (ScanUpdate, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.latest == nil {
		return ScanUpdate{}, false
	}
	return *t.latest, true
}

func (t *WSRelay) cleanupSocks() {
	remaining := []*WSCONN{}
	for _, s := range t.socks {
		if s.IsClosed() {
			continue
		}
		remaining = append(remaining, s)
	}
	t.socks = remaining
}

func (t *WSRelay) broadcast(v any) {
	for _, ws := range t.socks {
		if ws.IsClosed() {
			continue
		}
		err := websocket.JSON.Send(ws.WS, v)
		if err != nil {
			t.log.WithError(err).Debug("Dropping websocket client")
			ws.Close()
		}
	}
}

func (t *WSRelay) addSock(ws *WSCONN) {
	t.socks = append(t.socks, ws)
}

func (t *WSRelay) GetWSHandler() *websocket.Server {
	config := &websocket.Config{
		Origin: nil,
	}
	h := websocket.Server{
		Handler: func(ws *websocket.Conn) {
			conn := newWSCONN(ws)

			if latest, ok := t.Latest(); ok {
				if err := websocket.JSON.Send(ws, latest); err != nil {
					t.log.WithError(err).Debug("failed to send initial payload")
					return
				}
			}

			select {
			case t.newWs <- conn:
			case <-t.done:
				return
			}

			// clients never send anything, a read returning means they left
			go func() {
				io.Copy(io.Discard, ws)
				conn.Close()
			}()

			<-conn.Stop // hold the connection until stopper closes
		},
		Config: *config,
	}
	return &h
}
