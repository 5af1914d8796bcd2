package backends

import (
	"errors"

	"github.com/botirk38/pairscore/backends/inmemory"
	"github.com/botirk38/pairscore/backends/remote"
	"github.com/botirk38/pairscore/types"
)

var ErrUnsupportedStore = errors.New("unsupported store type")

// StoreFactory creates count stores based on type and configuration
type StoreFactory struct{}

// NewStore creates a new count store of the specified type
func (f *StoreFactory) NewStore(storeType types.StoreType, config types.StoreConfig) (types.CountStore, error) {
	switch storeType {
	case types.StoreChained:
		return NewChainedStore(config)
	case types.StoreMap:
		return NewMapStore(config)
	case types.StoreLRU:
		return NewLRUStore(config)
	case types.StoreRedis:
		return NewRedisStore(config)
	default:
		return nil, ErrUnsupportedStore
	}
}

// NewChainedStore creates a new fixed-bucket chained store
func NewChainedStore(config types.StoreConfig) (types.CountStore, error) {
	return inmemory.NewChainedStore(config)
}

// NewMapStore creates a new map store
func NewMapStore(config types.StoreConfig) (types.CountStore, error) {
	return inmemory.NewMapStore(config)
}

// NewLRUStore creates a new LRU store
func NewLRUStore(config types.StoreConfig) (types.CountStore, error) {
	return inmemory.NewLRUStore(config)
}

// NewRedisStore creates a new Redis store
func NewRedisStore(config types.StoreConfig) (types.CountStore, error) {
	return remote.NewRedisStore(config)
}
