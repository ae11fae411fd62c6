package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/atom/internal/infrastructure/persistence/memory"
)

func TestKeyValueStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKeyValueStore()

	_, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "k", "v"))
	v, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", v)

	require.NoError(t, store.Set(ctx, "k", "w"))
	v, _, _ = store.Get(ctx, "k")
	assert.Equal(t, "w", v)
}
