package bolt

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) (*BlobStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "taskboard.db")
	store, err := Open(path, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestBlobStore_GetMissingReturnsNil(t *testing.T) {
	store, _ := openTemp(t)

	got, err := store.Get(context.Background(), "taskboard_tasks")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBlobStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := openTemp(t)

	require.NoError(t, store.Set(ctx, "k", []byte(`[1]`)))
	require.NoError(t, store.Set(ctx, "k", []byte(`[1,2]`)))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2]`), got)

	size, err := store.Size()
	require.NoError(t, err)
	assert.Equal(t, 1, size)

	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "k"))
	got, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBlobStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	store, path := openTemp(t)
	require.NoError(t, store.Set(ctx, "taskboard_users", []byte(`[{"id":"1"}]`)))
	require.NoError(t, store.Close())

	reopened, err := Open(path, "")
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "taskboard_users")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(got))
	assert.NoError(t, reopened.Ping(ctx))
}

func TestBlobStore_CancelledContext(t *testing.T) {
	store, _ := openTemp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Set(ctx, "k", []byte("v")), context.Canceled)
	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
