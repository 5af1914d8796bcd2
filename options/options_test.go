package options

import (
	"context"
	"testing"

	"github.com/botirk38/pairscore/backends/inmemory"
	"github.com/botirk38/pairscore/internal/logging"
	"github.com/botirk38/pairscore/sorter"
	"github.com/botirk38/pairscore/types"
)

func TestConfigCreation(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		cfg := NewConfig()
		if cfg.Sorter == nil {
			t.Error("Expected default sorter to be set")
		}
		if cfg.Distance == nil {
			t.Error("Expected default distance to be set")
		}
		if cfg.Logger == nil {
			t.Error("Expected default logger to be set")
		}
		if cfg.Store != nil {
			t.Error("Expected store to be nil initially")
		}
	})

	t.Run("Validation", func(t *testing.T) {
		cfg := NewConfig()

		if err := cfg.Validate(); err == nil {
			t.Error("Expected validation error for missing store")
		}

		if err := cfg.Apply(WithMapStore()); err != nil {
			t.Fatalf("Failed to apply option: %v", err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Expected valid config, got %v", err)
		}
	})
}

func TestStoreOptions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		opt  Option
	}{
		{"Chained", WithChainedStore(0)},
		{"Map", WithMapStore()},
		{"LRU", WithLRUStore(8)},
		{"Factory", WithStore(types.StoreChained, types.StoreConfig{Buckets: 3})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			if err := cfg.Apply(tt.opt); err != nil {
				t.Fatalf("Failed to apply option: %v", err)
			}
			if cfg.Store == nil {
				t.Fatal("Expected store to be set")
			}
			if err := cfg.Store.Increment(ctx, 1); err != nil {
				t.Errorf("Store not usable: %v", err)
			}
		})
	}

	t.Run("ChainedBucketCount", func(t *testing.T) {
		cfg := NewConfig()
		_ = cfg.Apply(WithChainedStore(0))
		chained, ok := cfg.Store.(*inmemory.ChainedStore)
		if !ok {
			t.Fatalf("Expected *inmemory.ChainedStore, got %T", cfg.Store)
		}
		if chained.Buckets() != types.DefaultBuckets {
			t.Errorf("Expected %d buckets, got %d", types.DefaultBuckets, chained.Buckets())
		}
	})
}

func TestInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"NilStore", WithCustomStore(nil)},
		{"NilSorter", WithSorter(nil)},
		{"NilDistance", WithDistance(nil)},
		{"NilLogger", WithLogger(nil)},
		{"ZeroCapacityLRU", WithLRUStore(0)},
		{"UnknownStore", WithStore(types.StoreType("tree"), types.StoreConfig{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			if err := cfg.Apply(tt.opt); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestCustomOptions(t *testing.T) {
	store, _ := inmemory.NewMapStore(types.StoreConfig{})
	logger := logging.Nop()

	cfg := NewConfig()
	err := cfg.Apply(
		WithCustomStore(store),
		WithSorter(sorter.Std),
		WithLogger(logger),
		WithDistance(func(a, b []int) (int, error) { return 0, nil }),
	)
	if err != nil {
		t.Fatalf("Failed to apply options: %v", err)
	}
	if cfg.Store != store {
		t.Error("Expected custom store")
	}
	if cfg.Logger != logger {
		t.Error("Expected custom logger")
	}
}

func TestStoreOptionClosesReplacedStore(t *testing.T) {
	ctx := context.Background()
	first, _ := inmemory.NewChainedStore(types.StoreConfig{Buckets: 3})
	_ = first.Put(ctx, 1, 5)

	cfg := NewConfig()
	if err := cfg.Apply(WithCustomStore(first), WithMapStore()); err != nil {
		t.Fatalf("Failed to apply options: %v", err)
	}
	if _, ok := cfg.Store.(*inmemory.MapStore); !ok {
		t.Fatalf("Expected the later store to win, got %T", cfg.Store)
	}
	if n, _ := first.Len(ctx); n != 0 {
		t.Errorf("Expected replaced store to be closed and emptied, got %d entries", n)
	}
}
