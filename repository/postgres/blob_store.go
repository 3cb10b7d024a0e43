package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastygo/taskboard/repository"
)

type blobStore struct {
	pool *pgxpool.Pool
}

// NewBlobStore returns a Postgres-backed implementation of BlobStore.
// The blob_entries table is created by the migrations in assets/migrations.
func NewBlobStore(pool *pgxpool.Pool) repository.BlobStore {
	return &blobStore{pool: pool}
}

func (r *blobStore) Get(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT value FROM blob_entries WHERE key = $1`

	var value []byte
	if err := r.pool.QueryRow(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select blob %s: %w", key, err)
	}
	return value, nil
}

func (r *blobStore) Set(ctx context.Context, key string, value []byte) error {
	const query = `
	INSERT INTO blob_entries (key, value, updated_at)
	VALUES ($1, $2, NOW())
	ON CONFLICT (key) DO UPDATE
	SET value = EXCLUDED.value,
		updated_at = NOW()
	`
	if _, err := r.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("upsert blob %s: %w", key, err)
	}
	return nil
}

func (r *blobStore) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM blob_entries WHERE key = $1`
	if _, err := r.pool.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("delete blob %s: %w", key, err)
	}
	return nil
}

func (r *blobStore) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

var _ repository.Pinger = (*blobStore)(nil)
