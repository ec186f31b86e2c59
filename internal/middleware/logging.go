package middleware

import (
	"log"
	"net/http"

	"github.com/felixge/httpsnoop"
)

// RequestLogger logs method, path, status, size and duration of every request
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		log.Printf("INFO: %s %s -> %d (%d bytes) in %s from %s",
			r.Method, r.URL.Path, m.Code, m.Written, m.Duration, r.RemoteAddr)
	})
}
