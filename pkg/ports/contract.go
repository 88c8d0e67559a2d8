package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunHistoryStoreContract runs a suite of tests verifying that a HistoryStore
// implementation adheres to the interface contract.
func RunHistoryStoreContract(t *testing.T, store HistoryStore) {
	ctx := context.Background()

	t.Run("Empty", func(t *testing.T) {
		require.NoError(t, store.Clear(ctx))
		_, err := store.Recent(ctx, 10)
		assert.ErrorIs(t, err, ErrHistoryEmpty)
	})

	t.Run("Append and Recent", func(t *testing.T) {
		require.NoError(t, store.Clear(ctx))

		entries := []HistoryEntry{
			{Input: "H2 + O2 -> H2O", Balanced: "2H2 + O2 -> 2H2O", At: time.Now().Add(-2 * time.Minute)},
			{Input: "Fe + O2 = Fe2O3", Balanced: "4Fe + 3O2 = 2Fe2O3", At: time.Now().Add(-1 * time.Minute)},
		}
		for _, e := range entries {
			require.NoError(t, store.Append(ctx, e))
		}

		recent, err := store.Recent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		// Newest first.
		assert.Equal(t, "Fe + O2 = Fe2O3", recent[0].Input)
		assert.Equal(t, "2H2 + O2 -> 2H2O", recent[1].Balanced)
	})

	t.Run("Recent respects limit", func(t *testing.T) {
		require.NoError(t, store.Clear(ctx))
		for i := 0; i < 5; i++ {
			require.NoError(t, store.Append(ctx, HistoryEntry{Input: "H2 + O2 -> H2O", At: time.Now()}))
		}
		recent, err := store.Recent(ctx, 3)
		require.NoError(t, err)
		assert.Len(t, recent, 3)
	})

	t.Run("Clear", func(t *testing.T) {
		require.NoError(t, store.Append(ctx, HistoryEntry{Input: "Na + Cl2 -> NaCl", At: time.Now()}))
		require.NoError(t, store.Clear(ctx))
		_, err := store.Recent(ctx, 1)
		assert.ErrorIs(t, err, ErrHistoryEmpty)
	})
}
