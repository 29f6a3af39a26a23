package kv_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/Hotelbookingdesign/backend/internal/adapters/kv"
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/providers"
)

func TestMemoryAdapter_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryAdapter()

	require.NoError(t, store.Set(ctx, "a", []byte("1")))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)

	require.NoError(t, store.Delete(ctx, "a"))
	_, err = store.Get(ctx, "a")
	assert.True(t, errors.Is(err, providers.ErrKeyNotFound))
}

func TestMemoryAdapter_MissingKey(t *testing.T) {
	store := kv.NewMemoryAdapter()
	_, err := store.Get(context.Background(), "absent")
	assert.True(t, errors.Is(err, providers.ErrKeyNotFound))
}

func TestMemoryAdapter_MultiRemove(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryAdapter()
	require.NoError(t, store.Set(ctx, "a", []byte("1")))
	require.NoError(t, store.Set(ctx, "b", []byte("2")))
	require.NoError(t, store.Set(ctx, "c", []byte("3")))

	require.NoError(t, store.MultiRemove(ctx, []string{"a", "c", "missing"}))
	assert.Equal(t, 1, store.Len())

	got, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), got)
}

func TestMemoryAdapter_KeysByPrefix(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryAdapter()
	require.NoError(t, store.Set(ctx, "res:1", []byte("x")))
	require.NoError(t, store.Set(ctx, "res:2", []byte("y")))
	require.NoError(t, store.Set(ctx, "session:user", []byte("z")))

	keys, err := store.Keys(ctx, "res:")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"res:1", "res:2"}, keys)
}

func TestMemoryAdapter_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryAdapter()
	require.NoError(t, store.Set(ctx, "a", []byte("abc")))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	got[0] = 'z'

	again, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
