package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"pet-store-api/internal/middleware"
	"pet-store-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}

	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/generate", generatePetsHandler(svc, log))
	})
}

// petResponse es la forma serializada de una mascota (incluye el id).
type petResponse struct {
	ID      int     `json:"id" example:"4821"`
	Name    string  `json:"name" example:"Milo"`
	Species Species `json:"species" enums:"Dog,Cat,Bird,Fish,Rabbit,Hamster,Guinea Pig"`
	Age     int     `json:"age" minimum:"1" maximum:"15"`
	Color   string  `json:"color" example:"Golden"`
}

// generateResponse es la respuesta de GET /pets/generate.
type generateResponse struct {
	Pets  []petResponse `json:"pets"`
	Count int           `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// generatePetsHandler godoc
// @Summary Generar mascotas aleatorias
// @Description Devuelve `count` mascotas con nombre, especie, edad y color elegidos al azar de listas fijas. Sin `count` se genera una sola.
// @Tags pets
// @Produce json
// @Param count query int false "Cantidad de mascotas (1..100)" default(1) minimum(1) maximum(100)
// @Success 200 {object} generateResponse
// @Failure 400 {object} errorResponse "count must be a positive integer / count cannot exceed 100"
// @Router /pets/generate [get]
func generatePetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := parseCount(r.URL.Query().Get("count"))
		if err != nil {
			writeCountError(w, r, log, err)
			return
		}

		items, err := svc.Generate(r.Context(), count)
		if err != nil {
			if errors.Is(err, ErrCountNotPositive) || errors.Is(err, ErrCountTooLarge) {
				writeCountError(w, r, log, err)
				return
			}
			log.Error("generate pets failed", map[string]any{
				"request_id": middleware.GetRequestID(r.Context()),
				"error":      err,
			})
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		writeJSON(w, http.StatusOK, generateResponse{Pets: out, Count: len(out)})
	}
}

func writeCountError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	log.Debug("invalid count", map[string]any{
		"request_id": middleware.GetRequestID(r.Context()),
		"count":      r.URL.Query().Get("count"),
	})
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}

// parseCount: vacío => DefaultCount; no numérico => ErrCountNotPositive.
// El rango lo valida el Service.
func parseCount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultCount, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		// "99999999999999999999" desborda int pero sigue siendo demasiado grande
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
			return 0, ErrCountTooLarge
		}
		return 0, ErrCountNotPositive
	}
	return n, nil
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:      p.ID,
		Name:    p.Name,
		Species: p.Species,
		Age:     p.Age,
		Color:   p.Color,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos (pets/system)
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
