package similarity

import (
	"context"
	"fmt"

	"github.com/botirk38/pairscore/types"
)

// CountFrequencies increments store once per value.
func CountFrequencies(ctx context.Context, store types.CountStore, values []int) error {
	for _, v := range values {
		if err := store.Increment(ctx, v); err != nil {
			return fmt.Errorf("count %d: %w", v, err)
		}
	}
	return nil
}

// WeightedSimilarity computes sum(count(v) * v) over values, where count is
// looked up in counts and is zero for values it does not hold.
func WeightedSimilarity(ctx context.Context, counts types.CountStore, values []int) (int, error) {
	var score int
	for _, v := range values {
		count, err := counts.Get(ctx, v)
		if err != nil {
			return 0, fmt.Errorf("lookup %d: %w", v, err)
		}
		score += count * v
	}
	return score, nil
}
