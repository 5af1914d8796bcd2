package types

import (
	"context"
)

// DefaultBuckets is the bucket count of the chained store when none is configured.
const DefaultBuckets = 1010

// CountStore defines the interface for integer count storage backends.
// This allows for pluggable storage systems including in-memory and Redis.
type CountStore interface {
	// Put stores value under key
	Put(ctx context.Context, key, value int) error

	// Get retrieves the value for key, or zero if the key is absent
	Get(ctx context.Context, key int) (int, error)

	// Increment adds one to the value for key, starting from zero
	Increment(ctx context.Context, key int) error

	// Contains checks if a key exists without retrieving the value
	Contains(ctx context.Context, key int) (bool, error)

	// Len returns the number of entries in the store
	Len(ctx context.Context) (int, error)

	// Keys returns the distinct keys in the store
	Keys(ctx context.Context) ([]int, error)

	// Flush clears all entries from the store
	Flush(ctx context.Context) error

	// Close closes the store and releases resources
	Close() error
}

// StoreConfig provides configuration options for stores
type StoreConfig struct {
	// For the chained store
	Buckets int

	// For bounded in-memory stores
	Capacity int

	// For Redis
	ConnectionString string
	Username         string
	Password         string
	Database         int

	// Additional options
	Options map[string]any
}

// StoreType represents the type of count store
type StoreType string

const (
	StoreChained StoreType = "chained"
	StoreMap     StoreType = "map"
	StoreLRU     StoreType = "lru"
	StoreRedis   StoreType = "redis"
)

// NumberLists holds the two columns read from an input file.
// Left[i] and Right[i] form the i-th input pair.
type NumberLists struct {
	Left  []int
	Right []int

	// Count is the number of parsed pairs
	Count int

	// Lines is the number of newline-delimited lines seen in the input
	Lines int
}

// Empty reports whether no pairs were read.
func (n NumberLists) Empty() bool {
	return n.Count == 0
}
