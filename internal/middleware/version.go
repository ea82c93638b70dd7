package middleware

import "net/http"

const APIVersionHeader = "X-API-Version"

// APIVersion agrega el header de versión a todas las respuestas.
func APIVersion(version string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if version != "" {
				w.Header().Set(APIVersionHeader, version)
			}
			next.ServeHTTP(w, r)
		})
	}
}
