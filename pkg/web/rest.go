package web

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"net"
	"net/http"

	"github.com/coreos/go-systemd/v22/daemon"
	wifiscan "github.com/dogeorg/wifiscan/pkg"
	"github.com/dogeorg/wifiscan/pkg/conductor"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

//go:embed ui
var uiFiles embed.FS

var _ conductor.Service = API{}

type API struct {
	mux     *http.ServeMux
	config  wifiscan.Config
	scanner wifiscan.Scanner
	relay   *WSRelay
	log     logrus.FieldLogger
}

// RESTAPI wires the dashboard routes. relay may be nil, in which case the
// live websocket feed is not offered.
func RESTAPI(config wifiscan.Config, scanner wifiscan.Scanner, relay *WSRelay, log logrus.FieldLogger) API {
	a := API{
		mux:     http.NewServeMux(),
		config:  config,
		scanner: scanner,
		relay:   relay,
		log:     log.WithField("component", "web"),
	}

	ui, err := fs.Sub(uiFiles, "ui")
	if err != nil {
		panic(err)
	}

	routes := map[string]http.HandlerFunc{
		"GET /{$}":            a.getIndex(ui),
		"GET /static/":        http.FileServerFS(ui).ServeHTTP,
		"GET /api/scan":       a.getScan,
		"GET /api/interfaces": a.getInterfaces,
		"GET /api/system":     a.getSystem,
	}

	if relay != nil {
		routes["GET /ws/scan"] = a.getScanSocket
	}

	for p, h := range routes {
		a.mux.HandleFunc(p, h)
	}
	a.log.Debugf("Loaded %d routes", len(routes))

	return a
}

func (t API) Handler() http.Handler {
	return t.logRequests(cors.AllowAll().Handler(t.mux))
}

func (t API) Run(started, stopped chan bool, stop chan context.Context) error {
	// Listen up front so a busy port fails the start instead of the process.
	ln, err := net.Listen("tcp", t.config.Addr())
	if err != nil {
		return err
	}

	go func() {
		srv := &http.Server{Handler: t.Handler()}
		go func() {
			if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
				t.log.WithError(err).Error("HTTP server stopped unexpectedly")
			}
		}()

		t.log.Infof("Dashboard listening on http://%s", ln.Addr())
		notify(t.log, daemon.SdNotifyReady)
		started <- true

		ctx := <-stop
		notify(t.log, daemon.SdNotifyStopping)
		srv.Shutdown(ctx)
		stopped <- true
	}()
	return nil
}

// notify tells systemd about state changes when running as a notify unit.
// Outside systemd it does nothing.
func notify(log logrus.FieldLogger, state string) {
	if _, err := daemon.SdNotify(false, state); err != nil {
		log.WithError(err).Debug("sd_notify failed")
	}
}
