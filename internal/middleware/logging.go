package middleware

import (
	"net/http"
	"time"

	"pet-store-api/internal/platform/logger"
)

// AccessLog loguea cada request en debug al terminar.
func AccessLog(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			log.Debug("request completed", map[string]any{
				"request_id": GetRequestID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     sw.Status(),
				"duration":   time.Since(start).String(),
			})
		})
	}
}
