package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a migrated database when TASKBOARD_TEST_DATABASE_URL is set.
func newTestStore(t *testing.T) *blobStore {
	t.Helper()
	url := os.Getenv("TASKBOARD_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TASKBOARD_TEST_DATABASE_URL not set")
	}
	pool, err := pgxpool.New(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return NewBlobStore(pool).(*blobStore)
}

func TestBlobStore_Contract(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	key := "test_" + uuid.NewString()
	t.Cleanup(func() { _ = s.Delete(ctx, key) })

	require.NoError(t, s.Ping(ctx))

	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.Set(ctx, key, []byte(`[1]`)))
	require.NoError(t, s.Set(ctx, key, []byte(`[1,2]`)))
	got, err = s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2]`), got)

	require.NoError(t, s.Delete(ctx, key))
	require.NoError(t, s.Delete(ctx, key))
	got, err = s.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)
}
