package inmemory

import (
	"context"
	"sync"

	"github.com/botirk38/pairscore/types"
)

// chainNode is one entry in a bucket chain
type chainNode struct {
	key   int
	value int
	next  *chainNode
}

// ChainedStore implements CountStore as a fixed-size hash table that resolves
// collisions by chaining. Put does not deduplicate: repeated puts for the same
// key stack up in the chain and Get returns the most recent one.
type ChainedStore struct {
	mu      *sync.RWMutex
	buckets []*chainNode
}

// NewChainedStore creates a new chained store
func NewChainedStore(config types.StoreConfig) (*ChainedStore, error) {
	n := config.Buckets
	if n <= 0 {
		n = types.DefaultBuckets
	}

	return &ChainedStore{
		mu:      &sync.RWMutex{},
		buckets: make([]*chainNode, n),
	}, nil
}

// bucket maps key into the unsigned domain so negative keys still land in [0, N)
func (s *ChainedStore) bucket(key int) int {
	return int(uint64(key) % uint64(len(s.buckets)))
}

// Put prepends a node for key to its bucket chain
func (s *ChainedStore) Put(ctx context.Context, key, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prepend(key, value)
	return nil
}

func (s *ChainedStore) prepend(key, value int) {
	idx := s.bucket(key)
	s.buckets[idx] = &chainNode{key: key, value: value, next: s.buckets[idx]}
}

// Get returns the value of the first node matching key, scanning front to back
func (s *ChainedStore) Get(ctx context.Context, key int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if node := s.find(key); node != nil {
		return node.value, nil
	}
	return 0, nil
}

func (s *ChainedStore) find(key int) *chainNode {
	for node := s.buckets[s.bucket(key)]; node != nil; node = node.next {
		if node.key == key {
			return node
		}
	}
	return nil
}

// Increment bumps the first matching node in place, or inserts key with value one
func (s *ChainedStore) Increment(ctx context.Context, key int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if node := s.find(key); node != nil {
		node.value++
		return nil
	}
	s.prepend(key, 1)
	return nil
}

// Contains checks if any node holds key
func (s *ChainedStore) Contains(ctx context.Context, key int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.find(key) != nil, nil
}

// Len returns the number of nodes across all chains, duplicates included
func (s *ChainedStore) Len(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, head := range s.buckets {
		for node := head; node != nil; node = node.next {
			count++
		}
	}
	return count, nil
}

// Keys returns each distinct key once, in bucket order
func (s *ChainedStore) Keys(ctx context.Context) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]int, 0)
	seen := make(map[int]struct{})
	for _, head := range s.buckets {
		for node := head; node != nil; node = node.next {
			if _, ok := seen[node.key]; ok {
				continue
			}
			seen[node.key] = struct{}{}
			keys = append(keys, node.key)
		}
	}
	return keys, nil
}

// Buckets returns the fixed bucket count
func (s *ChainedStore) Buckets() int {
	return len(s.buckets)
}

// Flush drops every chain
func (s *ChainedStore) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.buckets {
		s.buckets[i] = nil
	}
	return nil
}

// Close releases all chains
func (s *ChainedStore) Close() error {
	return s.Flush(context.Background())
}
