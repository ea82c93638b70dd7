package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Profile identifica un preset de configuración.
type Profile string

const (
	ProfileDevelopment Profile = "development"
	ProfileTesting     Profile = "testing"
	ProfileProduction  Profile = "production"
)

const (
	DefaultSecretKey   = "dev-secret-key-change-in-production"
	DefaultDatabaseURL = "sqlite:///pet_store.db"
	DefaultHost        = "127.0.0.1"
	DefaultPort        = 5000
	DefaultAppName     = "pet-store-api"
	APIVersion         = "v1"
)

var (
	ErrUnknownProfile = errors.New("unknown profile")
	ErrInvalidValue   = errors.New("invalid config value")
)

// Config es la configuración del proceso. Se lee una sola vez al arrancar.
type Config struct {
	Profile Profile

	SecretKey   string
	Debug       bool
	Testing     bool
	DatabaseURL string // no se persiste nada; solo se usa para readiness si es postgres
	APIVersion  string

	Host string
	Port int

	AppName   string
	LogLevel  string
	LogFormat string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Addr devuelve host:port para net.Listen.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// UsesDefaultSecret indica si SECRET_KEY quedó con el valor de desarrollo.
func (c Config) UsesDefaultSecret() bool {
	return c.SecretKey == DefaultSecretKey
}

// base son los valores comunes a todos los perfiles.
func base() Config {
	return Config{
		SecretKey:       DefaultSecretKey,
		DatabaseURL:     DefaultDatabaseURL,
		APIVersion:      APIVersion,
		Host:            DefaultHost,
		Port:            DefaultPort,
		AppName:         DefaultAppName,
		LogFormat:       "text",
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// ForProfile devuelve los defaults de un perfil, sin mirar el entorno.
// "default" y "" equivalen a development.
func ForProfile(name string) (Config, error) {
	cfg := base()

	switch Profile(strings.ToLower(strings.TrimSpace(name))) {
	case ProfileDevelopment, "default", "":
		cfg.Profile = ProfileDevelopment
		cfg.Debug = true
	case ProfileTesting:
		cfg.Profile = ProfileTesting
		cfg.Testing = true
		cfg.Debug = true
		cfg.DatabaseURL = "sqlite:///:memory:"
	case ProfileProduction:
		cfg.Profile = ProfileProduction
		cfg.Debug = false
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}

	return cfg, nil
}

// Load carga un archivo de entorno y luego lee el entorno del proceso.
// Con envFile vacío se intenta ".env" y se ignora si no existe.
// Prioridad: overrides (flags de la CLI) > entorno > archivo > defaults del perfil.
func Load(envFile string, overrides map[string]string) (Config, error) {
	if envFile == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	} else if err := godotenv.Load(envFile); err != nil {
		return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
	}
	return FromLookup(func(key string) (string, bool) {
		if v, ok := overrides[key]; ok {
			return v, true
		}
		return os.LookupEnv(key)
	})
}

// FromLookup construye la config a partir de una función tipo os.LookupEnv.
//   - APP_ENV=development|testing|production (default development)
//   - SECRET_KEY, DEBUG, DATABASE_URL, HOST, PORT
//   - LOG_LEVEL, LOG_FORMAT, APP_NAME, SHUTDOWN_TIMEOUT_SECONDS
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	profile, _ := get("APP_ENV")
	cfg, err := ForProfile(profile)
	if err != nil {
		return Config{}, err
	}

	if v, ok := get("SECRET_KEY"); ok {
		cfg.SecretKey = v
	}
	if v, ok := get("DEBUG"); ok {
		cfg.Debug = ParseBool(v)
	}
	// testing fija su propia base en memoria
	if v, ok := get("DATABASE_URL"); ok && cfg.Profile != ProfileTesting {
		cfg.DatabaseURL = v
	}
	if v, ok := get("HOST"); ok {
		cfg.Host = v
	}
	if v, ok := get("PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil || port < 0 || port > 65535 {
			return Config{}, fmt.Errorf("%w: PORT=%q", ErrInvalidValue, v)
		}
		cfg.Port = port
	}
	if v, ok := get("APP_NAME"); ok {
		cfg.AppName = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		cfg.LogFormat = v
	}
	if v, ok := get("SHUTDOWN_TIMEOUT_SECONDS"); ok {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds <= 0 {
			return Config{}, fmt.Errorf("%w: SHUTDOWN_TIMEOUT_SECONDS=%q", ErrInvalidValue, v)
		}
		cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
	}

	if v, ok := get("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}

	return cfg, nil
}

// EffectiveLogLevel devuelve LOG_LEVEL si se definió; si no, debug o info según Debug.
func (c Config) EffectiveLogLevel() string {
	if c.LogLevel != "" {
		return c.LogLevel
	}
	if c.Debug {
		return "debug"
	}
	return "info"
}

// ParseBool acepta 1/true/on (sin importar mayúsculas); todo lo demás es false.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on":
		return true
	default:
		return false
	}
}
