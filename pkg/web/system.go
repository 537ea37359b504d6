package web

import (
	"net/http"

	"github.com/dogeorg/wifiscan/pkg/system"
	"github.com/dogeorg/wifiscan/pkg/version"
)

func (t API) getSystem(w http.ResponseWriter, r *http.Request) {
	host, err := system.GetHostInfo()
	if err != nil {
		t.log.WithError(err).Debug("Host info incomplete")
	}

	t.sendResponse(w, map[string]any{
		"version":  version.GetRelease(),
		"host":     host,
		"live":     t.relay != nil,
		"interval": t.config.Interval,
	})
}
