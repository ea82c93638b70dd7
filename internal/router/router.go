package router

import (
	"database/sql"
	"net/http"

	_ "pet-store-api/docs"
	"pet-store-api/internal/domain/pets"
	"pet-store-api/internal/domain/system"
	"pet-store-api/internal/middleware"
	"pet-store-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // puede ser nil (descarta logs)

	// Opcional: si viene, /ready hace ping. Nada se persiste.
	DB *sql.DB

	// Opcional: generador con fuente fija (tests). nil => aleatorio.
	Generator *pets.Generator

	APIVersion string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(middleware.Metrics)
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.CleanPath)
	r.Use(middleware.APIVersion(opts.APIVersion))
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recover(log))

	// *sql.DB nil dentro de la interfaz no sería nil
	var pinger system.Pinger
	if opts.DB != nil {
		pinger = opts.DB
	}

	system.RegisterRoutes(r, system.Options{
		DB:         pinger,
		APIVersion: opts.APIVersion,
		Logger:     log,
	})

	petsSvc := pets.NewService(opts.Generator)
	pets.RegisterRoutes(r, petsSvc, log)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
