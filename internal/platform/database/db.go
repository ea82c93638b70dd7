package database

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	// ErrUnsupportedURL indica que DATABASE_URL no apunta a Postgres (p.ej. sqlite del perfil dev).
	ErrUnsupportedURL = errors.New("unsupported database url")
)

const PingTimeout = 2 * time.Second

// IsPostgresURL reporta si rawURL usa el esquema postgres:// o postgresql://.
func IsPostgresURL(rawURL string) bool {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "postgres", "postgresql":
		return true
	default:
		return false
	}
}

// Open abre un pool a Postgres usando pgx (database/sql).
// No conecta todavía: la primera conexión ocurre en Ping o en el primer uso.
func Open(dsn string) (*sql.DB, error) {
	if !IsPostgresURL(dsn) {
		return nil, ErrUnsupportedURL
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// la API no consulta nada; el pool solo sirve para readiness
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// Ping verifica la conexión con un timeout corto.
func Ping(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()
	return db.PingContext(ctx)
}
