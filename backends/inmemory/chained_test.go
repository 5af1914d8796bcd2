package inmemory

import (
	"context"
	"testing"

	"github.com/botirk38/pairscore/types"
)

func newTestChainedStore(t *testing.T, buckets int) *ChainedStore {
	t.Helper()
	store, err := NewChainedStore(types.StoreConfig{Buckets: buckets})
	if err != nil {
		t.Fatalf("Failed to create chained store: %v", err)
	}
	return store
}

func TestChainedStoreDefaultBuckets(t *testing.T) {
	store := newTestChainedStore(t, 0)
	if store.Buckets() != types.DefaultBuckets {
		t.Errorf("Expected %d buckets, got %d", types.DefaultBuckets, store.Buckets())
	}
}

func TestChainedStoreBucketRange(t *testing.T) {
	store := newTestChainedStore(t, types.DefaultBuckets)

	for _, key := range []int{0, 1, 1009, 1010, -1, -1010, -123456789, 1 << 40} {
		idx := store.bucket(key)
		if idx < 0 || idx >= types.DefaultBuckets {
			t.Errorf("bucket(%d) = %d, outside [0, %d)", key, idx, types.DefaultBuckets)
		}
	}
}

func TestChainedStorePutDoesNotDeduplicate(t *testing.T) {
	ctx := context.Background()
	store := newTestChainedStore(t, 10)

	_ = store.Put(ctx, 5, 1)
	_ = store.Put(ctx, 5, 2)
	_ = store.Put(ctx, 15, 7) // same bucket as 5

	t.Run("GetReturnsMostRecent", func(t *testing.T) {
		if value, _ := store.Get(ctx, 5); value != 2 {
			t.Errorf("Expected most recent value 2, got %d", value)
		}
		if value, _ := store.Get(ctx, 15); value != 7 {
			t.Errorf("Expected 7, got %d", value)
		}
	})

	t.Run("LenCountsDuplicates", func(t *testing.T) {
		if n, _ := store.Len(ctx); n != 3 {
			t.Errorf("Expected 3 nodes, got %d", n)
		}
	})

	t.Run("KeysAreDistinct", func(t *testing.T) {
		keys, _ := store.Keys(ctx)
		if len(keys) != 2 {
			t.Errorf("Expected 2 distinct keys, got %v", keys)
		}
	})

	t.Run("IncrementBumpsFirstMatch", func(t *testing.T) {
		_ = store.Increment(ctx, 5)
		if value, _ := store.Get(ctx, 5); value != 3 {
			t.Errorf("Expected 3, got %d", value)
		}
		if n, _ := store.Len(ctx); n != 3 {
			t.Errorf("Expected increment to update in place, got %d nodes", n)
		}
	})
}

func TestChainedStoreClose(t *testing.T) {
	ctx := context.Background()
	store := newTestChainedStore(t, 4)

	for i := 0; i < 100; i++ {
		_ = store.Increment(ctx, i%9)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Failed to close: %v", err)
	}
	if n, _ := store.Len(ctx); n != 0 {
		t.Errorf("Expected no nodes after close, got %d", n)
	}
}
