package inmemory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/botirk38/pairscore/types"
	lru "github.com/hashicorp/golang-lru/v2"
)

var (
	// ErrInvalidCapacity is returned when an LRU store is created without a positive capacity
	ErrInvalidCapacity = errors.New("lru store capacity must be positive")

	// ErrCapacityExceeded is returned by a write that evicted another key's count
	ErrCapacityExceeded = errors.New("lru store capacity exceeded")
)

// LRUStore implements CountStore on a bounded LRU cache. A write that pushes
// out the least recently touched count fails with ErrCapacityExceeded, so a
// lost count is never read back as zero without notice.
type LRUStore struct {
	mu       *sync.Mutex
	cache    *lru.Cache[int, int]
	capacity int
	evicted  int
}

// NewLRUStore creates a new LRU store
func NewLRUStore(config types.StoreConfig) (*LRUStore, error) {
	if config.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	cache, err := lru.New[int, int](config.Capacity)
	if err != nil {
		return nil, err
	}

	return &LRUStore{
		mu:       &sync.Mutex{},
		cache:    cache,
		capacity: config.Capacity,
	}, nil
}

// add stores key and reports an eviction. Caller holds s.mu.
func (s *LRUStore) add(key, value int) error {
	if s.cache.Add(key, value) {
		s.evicted++
		return fmt.Errorf("%w: capacity %d, key %d", ErrCapacityExceeded, s.capacity, key)
	}
	return nil
}

// Put stores value under key in the LRU cache
func (s *LRUStore) Put(ctx context.Context, key, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.add(key, value)
}

// Get retrieves the value for key from the LRU cache
func (s *LRUStore) Get(ctx context.Context, key int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if value, ok := s.cache.Get(key); ok {
		return value, nil
	}
	return 0, nil
}

// Increment adds one to the value for key. The read-modify-write runs under
// the store lock so it is atomic with respect to other store calls.
func (s *LRUStore) Increment(ctx context.Context, key int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, _ := s.cache.Get(key)
	return s.add(key, value+1)
}

// Evicted returns how many counts have been evicted since the last Flush
func (s *LRUStore) Evicted() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.evicted
}

// Contains checks if a key exists in the LRU cache without touching recency
func (s *LRUStore) Contains(ctx context.Context, key int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Contains(key), nil
}

// Len returns the number of entries in the LRU cache
func (s *LRUStore) Len(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Len(), nil
}

// Keys returns all keys in the LRU cache, oldest first
func (s *LRUStore) Keys(ctx context.Context) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Keys(), nil
}

// Flush clears all entries from the LRU cache
func (s *LRUStore) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Purge()
	s.evicted = 0
	return nil
}

// Close closes the LRU store (no-op for in-memory)
func (s *LRUStore) Close() error {
	return nil
}
