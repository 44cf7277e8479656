package db

import (
	"context"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(ctx context.Context) (*pgxpool.Pool, error) {
	url := os.Getenv("DATABASE_URL")
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 5
	cfg.MinConns = 1
	cfg.MaxConnIdleTime = 2 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// EnsureSchema crea las tablas de la demo si no existen; no hay
// sistema de migraciones aparte. Una sentencia por Exec: el protocolo
// extendido de pgx no acepta comandos múltiples.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			id      TEXT PRIMARY KEY,
			name    TEXT NOT NULL,
			balance NUMERIC(14,2) NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id          BIGSERIAL PRIMARY KEY,
			type        TEXT NOT NULL,
			amount      NUMERIC(14,2) NOT NULL,
			"date"      DATE NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS contacts (
			id    BIGSERIAL PRIMARY KEY,
			name  TEXT NOT NULL,
			email TEXT NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS contacts_email_key
			ON contacts (LOWER(email))`,
	}
	for _, s := range stmts {
		if _, err := pool.Exec(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
