package redis

import (
	"context"
	"errors"
	"fmt"

	redislib "github.com/redis/go-redis/v9"

	"github.com/fastygo/taskboard/repository"
)

type blobStore struct {
	client *redislib.Client
	prefix string
}

// NewBlobStore creates a Redis-backed blob store. Entries never expire.
// prefix is prepended to every key; pass "" when the caller already namespaces its keys.
func NewBlobStore(client *redislib.Client, prefix string) repository.BlobStore {
	return &blobStore{
		client: client,
		prefix: prefix,
	}
}

func (r *blobStore) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return result, nil
}

func (r *blobStore) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *blobStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (r *blobStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *blobStore) key(key string) string {
	return r.prefix + key
}

var _ repository.Pinger = (*blobStore)(nil)
