package app

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"net/url"

	"pet-store-api/internal/config"
	"pet-store-api/internal/platform/database"
	"pet-store-api/internal/platform/logger"
	"pet-store-api/internal/router"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Options arma la aplicación completa para cfg. Se separa de New para poder
// componerla con fxtest y fx.Populate en tests.
func Options(cfg config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			newLogger,
			func(l *logger.ZapLogger) logger.Logger { return l },
			newDatabase,
			newHandler,
			newHTTPServer,
		),
		fx.WithLogger(func(l *logger.ZapLogger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Zap().WithOptions(zap.IncreaseLevel(zap.WarnLevel))}
		}),
		fx.Invoke(logStartup, func(*http.Server) {}),
	)
}

// New crea la app fx lista para Start/Stop.
func New(cfg config.Config, extra ...fx.Option) *fx.App {
	opts := append([]fx.Option{Options(cfg)}, extra...)
	return fx.New(opts...)
}

func newLogger(lc fx.Lifecycle, cfg config.Config) *logger.ZapLogger {
	l := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.EffectiveLogLevel()),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			// Sync sobre stdout devuelve EINVAL en algunos SO; no es un error real
			_ = l.Sync()
			return nil
		},
	})
	return l
}

// newDatabase solo abre pool si DATABASE_URL es postgres. En cualquier otro caso
// devuelve nil y /ready no consulta nada.
func newDatabase(lc fx.Lifecycle, cfg config.Config, log logger.Logger) (*sql.DB, error) {
	db, err := database.Open(cfg.DatabaseURL)
	if errors.Is(err, database.ErrUnsupportedURL) {
		log.Debug("database url not used", map[string]any{"database_url_scheme": scheme(cfg.DatabaseURL)})
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// no es fatal: la API no depende de la base
			if err := database.Ping(ctx, db); err != nil {
				log.Warn("database ping failed", map[string]any{"error": err})
			}
			return nil
		},
		OnStop: func(context.Context) error {
			return db.Close()
		},
	})
	return db, nil
}

func newHandler(cfg config.Config, log logger.Logger, db *sql.DB) http.Handler {
	return router.NewRouter(router.Options{
		Logger:     log,
		DB:         db,
		APIVersion: cfg.APIVersion,
	})
}

// newHTTPServer arranca a servir cuando la app inicia y hace Shutdown al parar.
func newHTTPServer(lc fx.Lifecycle, cfg config.Config, h http.Handler, log logger.Logger) *http.Server {
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("Starting Pet Store API on http://"+ln.Addr().String(), map[string]any{
				"addr": ln.Addr().String(),
			})
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", map[string]any{"error": err})
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping server", nil)
			return srv.Shutdown(ctx)
		},
	})
	return srv
}

func logStartup(cfg config.Config, log logger.Logger) {
	log.Info("configuration loaded", map[string]any{
		"profile":     string(cfg.Profile),
		"debug":       cfg.Debug,
		"testing":     cfg.Testing,
		"api_version": cfg.APIVersion,
	})
	if cfg.Profile == config.ProfileProduction && cfg.UsesDefaultSecret() {
		log.Warn("SECRET_KEY is using the development default", nil)
	}
}

func scheme(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Scheme
}
