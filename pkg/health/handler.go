package health

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Live answers OK for as long as the process serves requests.
func Live() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		write(w, r, http.StatusOK, &Report{Status: StatusHealthy})
	}
}

// Ready runs checks on every request and answers 503 when any fails.
func Ready(checks Checks, opts ...Option) http.HandlerFunc {
	cfg := newConfig(opts...)

	return func(w http.ResponseWriter, r *http.Request) {
		rep := run(r.Context(), checks, cfg)

		status := http.StatusOK
		if !rep.Healthy() {
			status = http.StatusServiceUnavailable
		}
		write(w, r, status, rep)
	}
}

func write(w http.ResponseWriter, r *http.Request, status int, rep *Report) {
	w.Header().Set("Cache-Control", "no-store")

	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(rep)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(http.StatusText(status)))
}

func wantsJSON(r *http.Request) bool {
	if r.URL.Query().Get("format") == "json" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
