package web

import (
	"io/fs"
	"net/http"

	network_wifi "github.com/dogeorg/wifiscan/pkg/system/network/wifi"
	"github.com/dogeorg/wifiscan/pkg/view"
)

func (t API) getIndex(ui fs.FS) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, ui, "index.html")
	}
}

// getScan runs a fresh scan for every request. Concurrent requests each get
// their own helper run.
func (t API) getScan(w http.ResponseWriter, r *http.Request) {
	v := view.Build(t.scanner.Scan(r.Context()))
	t.sendResponse(w, v.Records())
}

func (t API) getInterfaces(w http.ResponseWriter, r *http.Request) {
	ifaces, err := network_wifi.ListInterfaces()
	if err != nil {
		t.sendErrorResponse(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	t.sendResponse(w, map[string]any{
		"success":    true,
		"interfaces": ifaces,
	})
}
