package system

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"
	"time"

	"pet-store-api/internal/middleware"
	"pet-store-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const WelcomeMessage = "Welcome to Pet Store API"

//go:embed templates/index.html
var templatesFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// Pinger es lo único que readiness necesita de la base (lo cumple *sql.DB).
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Options struct {
	// DB puede ser nil: sin base configurada el servicio está listo siempre.
	DB         Pinger
	APIVersion string
	Logger     logger.Logger
}

func RegisterRoutes(r chi.Router, opts Options) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r.Get("/", indexHandler(opts.APIVersion, log))
	r.Get("/health", healthHandler())
	r.Get("/ready", readyHandler(opts.DB, log))
}

type messageResponse struct {
	Message string `json:"message" example:"Welcome to Pet Store API"`
}

type statusResponse struct {
	Status string `json:"status" example:"healthy"`
	Error  string `json:"error,omitempty"`
}

// indexHandler godoc
// @Summary Mensaje de bienvenida
// @Description Devuelve un mensaje fijo. Si el cliente acepta text/html (y no JSON) se renderiza una página estática.
// @Tags system
// @Produce json,html
// @Success 200 {object} messageResponse
// @Router / [get]
func indexHandler(apiVersion string, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !wantsHTML(r.Header.Get("Accept")) {
			writeJSON(w, http.StatusOK, messageResponse{Message: WelcomeMessage})
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := indexTmpl.Execute(w, map[string]string{
			"Title":      "Pet Store API",
			"Message":    WelcomeMessage,
			"APIVersion": apiVersion,
		})
		if err != nil {
			log.Error("render index failed", map[string]any{
				"request_id": middleware.GetRequestID(r.Context()),
				"error":      err,
			})
		}
	}
}

// healthHandler godoc
// @Summary Liveness
// @Tags system
// @Produce json
// @Success 200 {object} statusResponse
// @Router /health [get]
func healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, statusResponse{Status: "healthy"})
	}
}

// readyHandler godoc
// @Summary Readiness
// @Description Sin base configurada siempre está listo. Con base, hace ping con timeout de 2s.
// @Tags system
// @Produce json
// @Success 200 {object} statusResponse
// @Failure 503 {object} statusResponse
// @Router /ready [get]
func readyHandler(db Pinger, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			writeJSON(w, http.StatusOK, statusResponse{Status: "ready"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			log.Warn("readiness ping failed", map[string]any{
				"request_id": middleware.GetRequestID(r.Context()),
				"error":      err,
			})
			writeJSON(w, http.StatusServiceUnavailable, statusResponse{
				Status: "unavailable",
				Error:  "database unreachable",
			})
			return
		}

		writeJSON(w, http.StatusOK, statusResponse{Status: "ready"})
	}
}

// wantsHTML: true solo si el Accept pide text/html y no menciona JSON.
// "*/*" (curl, fetch) sigue recibiendo JSON.
func wantsHTML(accept string) bool {
	accept = strings.ToLower(accept)
	return strings.Contains(accept, "text/html") && !strings.Contains(accept, "application/json")
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos (pets/system).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
