package similarity

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/botirk38/pairscore/backends/inmemory"
	"github.com/botirk38/pairscore/types"
)

// Columns from the worked example, already sorted
var (
	sortedLeft  = []int{1, 2, 3, 3, 3, 4}
	sortedRight = []int{3, 3, 3, 4, 5, 9}
	left        = []int{3, 4, 2, 1, 3, 3}
	right       = []int{4, 3, 5, 3, 9, 3}
)

func TestManhattanDistance(t *testing.T) {
	t.Run("WorkedExample", func(t *testing.T) {
		d, err := ManhattanDistance(sortedLeft, sortedRight)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if d != 11 {
			t.Errorf("Expected 11, got %d", d)
		}
	})

	t.Run("Symmetric", func(t *testing.T) {
		ab, _ := ManhattanDistance(left, right)
		ba, _ := ManhattanDistance(right, left)
		if ab != ba {
			t.Errorf("Expected symmetric distance, got %d and %d", ab, ba)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		d, err := ManhattanDistance(nil, []int{})
		if err != nil || d != 0 {
			t.Errorf("Expected 0 for empty columns, got %d (%v)", d, err)
		}
	})

	t.Run("Negatives", func(t *testing.T) {
		d, _ := ManhattanDistance([]int{-3, 5}, []int{2, -5})
		if d != 15 {
			t.Errorf("Expected 15, got %d", d)
		}
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := ManhattanDistance([]int{1, 2}, []int{1})
		if !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("Expected ErrLengthMismatch, got %v", err)
		}
	})
}

func TestDifferences(t *testing.T) {
	diffs, err := Differences(sortedLeft, sortedRight)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !slices.Equal(diffs, []int{2, 1, 0, 1, 2, 5}) {
		t.Errorf("Unexpected differences %v", diffs)
	}

	if _, err := Differences([]int{1}, nil); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Expected ErrLengthMismatch, got %v", err)
	}
}

func TestWeightedSimilarity(t *testing.T) {
	ctx := context.Background()

	stores := map[string]func() (types.CountStore, error){
		"chained": func() (types.CountStore, error) { return inmemory.NewChainedStore(types.StoreConfig{}) },
		"map":     func() (types.CountStore, error) { return inmemory.NewMapStore(types.StoreConfig{}) },
		"lru":     func() (types.CountStore, error) { return inmemory.NewLRUStore(types.StoreConfig{Capacity: 16}) },
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			store, err := newStore()
			if err != nil {
				t.Fatalf("Failed to create store: %v", err)
			}
			defer func() { _ = store.Close() }()

			if err := CountFrequencies(ctx, store, right); err != nil {
				t.Fatalf("Failed to count: %v", err)
			}

			for key, want := range map[int]int{3: 3, 4: 1, 5: 1, 9: 1, 2: 0} {
				if got, _ := store.Get(ctx, key); got != want {
					t.Errorf("count(%d) = %d, want %d", key, got, want)
				}
			}

			score, err := WeightedSimilarity(ctx, store, left)
			if err != nil {
				t.Fatalf("Failed to score: %v", err)
			}
			if score != 31 {
				t.Errorf("Expected 31, got %d", score)
			}
		})
	}
}

func TestWeightedSimilarityEmpty(t *testing.T) {
	ctx := context.Background()
	store, _ := inmemory.NewMapStore(types.StoreConfig{})

	score, err := WeightedSimilarity(ctx, store, nil)
	if err != nil || score != 0 {
		t.Errorf("Expected 0 for empty input, got %d (%v)", score, err)
	}
}
