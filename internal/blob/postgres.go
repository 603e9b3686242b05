package blob

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres stores every blob as one row in a two-column table. The
// whole-blob-per-key model is kept deliberately: the stores rewrite
// their full record set on each mutation, so a jsonb column per key is
// all the schema there is.
type Postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(ctx context.Context, db *pgxpool.Pool) (*Postgres, error) {
	const schema = `
	CREATE TABLE IF NOT EXISTS blobs (
		key   text PRIMARY KEY,
		value jsonb NOT NULL
	)
	`
	if _, err := db.Exec(ctx, schema); err != nil {
		return nil, err
	}
	return &Postgres{db: db}, nil
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT value FROM blobs WHERE key = $1`
	var value []byte
	err := p.db.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoKey
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (p *Postgres) Put(ctx context.Context, key string, value []byte) error {
	const query = `
	INSERT INTO blobs (key, value) VALUES ($1, $2)
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`
	_, err := p.db.Exec(ctx, query, key, value)
	return err
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM blobs WHERE key = $1`
	_, err := p.db.Exec(ctx, query, key)
	return err
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}
