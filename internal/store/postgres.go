package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/hex-shortener/internal/shortener"
)

// PostgresStore is a PostgreSQL implementation of shortener.Repository.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed redirect store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the redirects table when it does not exist.
func (p *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS redirects (
			code       TEXT PRIMARY KEY,
			url        TEXT NOT NULL,
			created_at BIGINT NOT NULL
		)
	`

	if _, err := p.pool.Exec(ctx, query); err != nil {
		return shortener.ServerError("postgres schema", err)
	}

	return nil
}

func (p *PostgresStore) Find(ctx context.Context, code string) (*shortener.Redirect, error) {
	query := `
		SELECT code, url, created_at
		FROM redirects
		WHERE code = $1
	`

	var redirect shortener.Redirect

	err := p.pool.QueryRow(ctx, query, code).Scan(
		&redirect.Code,
		&redirect.URL,
		&redirect.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shortener.ErrNotFound
		}

		return nil, shortener.ServerError("postgres find", err)
	}

	return &redirect, nil
}

// Store inserts the redirect. A code collision surfaces as a server error.
func (p *PostgresStore) Store(ctx context.Context, redirect *shortener.Redirect) error {
	query := `
		INSERT INTO redirects (code, url, created_at)
		VALUES ($1, $2, $3)
	`

	if _, err := p.pool.Exec(ctx, query, redirect.Code, redirect.URL, redirect.CreatedAt); err != nil {
		return shortener.ServerError("postgres store", err)
	}

	return nil
}

// Ping checks PostgreSQL connectivity.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Compile-time check.
var _ shortener.Repository = (*PostgresStore)(nil)
