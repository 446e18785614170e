package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres keeps the document as one row in the documents table, keyed
// by name. db.EnsureSchema must have run before the first read.
type Postgres struct {
	pool *pgxpool.Pool
	name string
}

func NewPostgres(pool *pgxpool.Pool, name string) *Postgres {
	return &Postgres{pool: pool, name: name}
}

func (s *Postgres) ReadDocument(ctx context.Context) ([]byte, error) {
	var body []byte
	err := s.pool.QueryRow(ctx,
		`SELECT body FROM documents WHERE name=$1`,
		s.name,
	).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return body, err
}

func (s *Postgres) WriteDocument(ctx context.Context, data []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO documents(name, body)
		VALUES($1,$2)
		ON CONFLICT (name) DO UPDATE
		SET body=EXCLUDED.body,
			updated_at=now()
	`, s.name, data)
	return err
}
