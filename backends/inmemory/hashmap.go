package inmemory

import (
	"context"
	"sync"

	"github.com/botirk38/pairscore/types"
)

// MapStore implements CountStore on a native map. Put overwrites.
type MapStore struct {
	mu     *sync.RWMutex
	counts map[int]int
}

// NewMapStore creates a new map store
func NewMapStore(config types.StoreConfig) (*MapStore, error) {
	return &MapStore{
		mu:     &sync.RWMutex{},
		counts: make(map[int]int, config.Capacity),
	}, nil
}

// Put stores value under key, replacing any previous value
func (s *MapStore) Put(ctx context.Context, key, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counts[key] = value
	return nil
}

// Get retrieves the value for key
func (s *MapStore) Get(ctx context.Context, key int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.counts[key], nil
}

// Increment adds one to the value for key
func (s *MapStore) Increment(ctx context.Context, key int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counts[key]++
	return nil
}

// Contains checks if a key exists in the map
func (s *MapStore) Contains(ctx context.Context, key int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.counts[key]
	return ok, nil
}

// Len returns the number of keys in the map
func (s *MapStore) Len(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.counts), nil
}

// Keys returns all keys in the map
func (s *MapStore) Keys(ctx context.Context) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]int, 0, len(s.counts))
	for key := range s.counts {
		keys = append(keys, key)
	}
	return keys, nil
}

// Flush clears all entries from the map
func (s *MapStore) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counts = make(map[int]int)
	return nil
}

// Close closes the map store (no-op for in-memory)
func (s *MapStore) Close() error {
	return nil
}
