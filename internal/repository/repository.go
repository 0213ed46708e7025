package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS pfps (
	id UUID PRIMARY KEY,
	title TEXT NOT NULL,
	author TEXT NOT NULL DEFAULT 'unknown',
	url TEXT NOT NULL,
	category TEXT NOT NULL DEFAULT 'top',
	tags TEXT[] NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_pfps_created_at ON pfps (created_at DESC);
`

type Repository struct {
	db   *pgxpool.Pool
	Pfps PfpRepository
}

func NewRepository(ctx context.Context, dsn string) (*Repository, error) {
	db, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		db:   db,
		Pfps: NewPfpRepository(db),
	}, nil
}

// Migrate создает таблицу каталога, если её ещё нет
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

func (r *Repository) Close() {
	r.db.Close()
}
