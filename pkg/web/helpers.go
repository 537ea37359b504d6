package web

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func (t API) sendResponse(w http.ResponseWriter, payload any) {
	// note: w.Header after this, so we can call sendError
	b, err := json.Marshal(payload)
	if err != nil {
		t.sendErrorResponse(w, http.StatusInternalServerError, fmt.Sprintf("in json.Marshal: %s", err.Error()))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store") // scans are live data, never cache
	w.Write(b)
}

func (t API) sendErrorResponse(w http.ResponseWriter, code int, message string) {
	t.log.WithField("code", code).Warn(message)
	// would prefer to use json.Marshal, but this avoids the need
	// to handle encoding errors arising from json.Marshal itself!
	payload := fmt.Sprintf("{\"error\":{\"code\":%d,\"message\":%q}}", code, message)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	w.Write([]byte(payload))
}

// logRequests logs every request at debug level.
func (t API) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.log.WithField("method", r.Method).WithField("path", r.URL.Path).Debug("request")
		next.ServeHTTP(w, r)
	})
}
