package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a live server when TASKBOARD_TEST_REDIS_URL is set.
func newTestStore(t *testing.T) *blobStore {
	t.Helper()
	url := os.Getenv("TASKBOARD_TEST_REDIS_URL")
	if url == "" {
		t.Skip("TASKBOARD_TEST_REDIS_URL not set")
	}
	opts, err := redislib.ParseURL(url)
	require.NoError(t, err)
	client := redislib.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	prefix := "taskboard-test:" + uuid.NewString() + ":"
	return NewBlobStore(client, prefix).(*blobStore)
}

func TestBlobStore_Contract(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	t.Cleanup(func() { _ = s.Delete(ctx, "tasks") })

	require.NoError(t, s.Ping(ctx))

	got, err := s.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.Set(ctx, "tasks", []byte(`[]`)))
	got, err = s.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	ttl, err := s.client.TTL(ctx, s.key("tasks")).Result()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(-1), ttl)

	require.NoError(t, s.Delete(ctx, "tasks"))
	require.NoError(t, s.Delete(ctx, "tasks"))
	got, err = s.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNewBlobStore_KeyPrefix(t *testing.T) {
	assert.Equal(t, "taskboard_tasks", NewBlobStore(nil, "").(*blobStore).key("taskboard_tasks"))
	assert.Equal(t, "ns:taskboard_tasks", NewBlobStore(nil, "ns:").(*blobStore).key("taskboard_tasks"))
}
