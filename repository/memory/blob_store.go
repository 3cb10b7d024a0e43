package memory

import (
	"bytes"
	"context"
	"sync"

	"github.com/fastygo/taskboard/repository"
)

// BlobStore keeps entries in process memory. It is used when no durable
// facility is configured, so state lives only for the process lifetime.
type BlobStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewBlobStore returns an empty in-memory store.
func NewBlobStore() *BlobStore {
	return &BlobStore{entries: make(map[string][]byte)}
}

func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.entries[key]
	if !ok {
		return nil, nil
	}
	return bytes.Clone(value), nil
}

func (s *BlobStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if value == nil {
		value = []byte{}
	}
	s.entries[key] = bytes.Clone(value)
	return nil
}

func (s *BlobStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

func (s *BlobStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Len reports how many keys are held.
func (s *BlobStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

var (
	_ repository.BlobStore = (*BlobStore)(nil)
	_ repository.Pinger    = (*BlobStore)(nil)
)
