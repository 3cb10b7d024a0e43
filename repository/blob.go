package repository

import (
	"context"
)

// BlobStore is a durable key-value facility holding whole serialized collections.
//
// Get returns (nil, nil) when the key is absent. Set overwrites. Delete is idempotent.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Pinger is implemented by backends that can report connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}
