// Package options provides functional options for configuring Pipeline instances.
package options

import (
	"errors"
	"fmt"

	"github.com/botirk38/pairscore/backends"
	"github.com/botirk38/pairscore/internal/logging"
	"github.com/botirk38/pairscore/internal/metrics"
	"github.com/botirk38/pairscore/similarity"
	"github.com/botirk38/pairscore/sorter"
	"github.com/botirk38/pairscore/types"
)

// Option represents a configuration option for a Pipeline
type Option func(*Config) error

// Config holds the configuration for building a Pipeline
type Config struct {
	Store    types.CountStore
	Sorter   sorter.Func
	Distance similarity.DistanceFunc
	Logger   *logging.Logger
	Metrics  *metrics.Metrics
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		Sorter:   sorter.MergeSort[[]int, int],
		Distance: similarity.ManhattanDistance,
		Logger:   logging.Nop(),
	}
}

// Apply applies all the given options to the config
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Store == nil {
		return errors.New("store is required - use WithChainedStore, WithRedisStore, etc.")
	}
	if c.Sorter == nil {
		return errors.New("sorter is required")
	}
	if c.Distance == nil {
		return errors.New("distance function is required")
	}
	return nil
}

// setStore installs store, closing any different store an earlier option set
func (c *Config) setStore(store types.CountStore) error {
	if c.Store != nil && c.Store != store {
		if err := c.Store.Close(); err != nil {
			_ = store.Close()
			return fmt.Errorf("close replaced store: %w", err)
		}
	}
	c.Store = store
	return nil
}

// WithChainedStore sets up the fixed-bucket chained store. buckets <= 0 selects the default.
func WithChainedStore(buckets int) Option {
	return func(cfg *Config) error {
		store, err := backends.NewChainedStore(types.StoreConfig{
			Buckets: buckets,
		})
		if err != nil {
			return err
		}
		return cfg.setStore(store)
	}
}

// WithMapStore sets up a map store with overwrite semantics
func WithMapStore() Option {
	return func(cfg *Config) error {
		store, err := backends.NewMapStore(types.StoreConfig{})
		if err != nil {
			return err
		}
		return cfg.setStore(store)
	}
}

// WithLRUStore sets up a bounded LRU store
func WithLRUStore(capacity int) Option {
	return func(cfg *Config) error {
		store, err := backends.NewLRUStore(types.StoreConfig{
			Capacity: capacity,
		})
		if err != nil {
			return err
		}
		return cfg.setStore(store)
	}
}

// WithRedisStore sets up a Redis store
func WithRedisStore(addr string, db int) Option {
	return func(cfg *Config) error {
		store, err := backends.NewRedisStore(types.StoreConfig{
			ConnectionString: addr,
			Database:         db,
		})
		if err != nil {
			return err
		}
		return cfg.setStore(store)
	}
}

// WithStore builds a store of the given type through the store factory
func WithStore(storeType types.StoreType, config types.StoreConfig) Option {
	return func(cfg *Config) error {
		factory := &backends.StoreFactory{}
		store, err := factory.NewStore(storeType, config)
		if err != nil {
			return err
		}
		return cfg.setStore(store)
	}
}

// WithCustomStore allows using a pre-configured store
func WithCustomStore(store types.CountStore) Option {
	return func(cfg *Config) error {
		if store == nil {
			return errors.New("store cannot be nil")
		}
		return cfg.setStore(store)
	}
}

// WithSorter sets the sort used on both columns before the distance is computed
func WithSorter(fn sorter.Func) Option {
	return func(cfg *Config) error {
		if fn == nil {
			return errors.New("sorter cannot be nil")
		}
		cfg.Sorter = fn
		return nil
	}
}

// WithDistance sets a custom distance function
func WithDistance(fn similarity.DistanceFunc) Option {
	return func(cfg *Config) error {
		if fn == nil {
			return errors.New("distance function cannot be nil")
		}
		cfg.Distance = fn
		return nil
	}
}

// WithLogger sets the logger
func WithLogger(logger *logging.Logger) Option {
	return func(cfg *Config) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.Logger = logger
		return nil
	}
}

// WithMetrics sets the metrics sink
func WithMetrics(m *metrics.Metrics) Option {
	return func(cfg *Config) error {
		cfg.Metrics = m
		return nil
	}
}
