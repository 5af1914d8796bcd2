package remote

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/botirk38/pairscore/types"
	"github.com/redis/go-redis/v9"
)

// DefaultHashKey is the Redis hash that holds the counts when no key option is given
const DefaultHashKey = "pairscore:counts"

// RedisStore implements CountStore on a single Redis hash. Fields are the
// decimal keys and values are the counts. Put overwrites.
type RedisStore struct {
	client *redis.Client
	key    string
}

// parseRedisURL parses a Redis URL and returns redis.Options
func parseRedisURL(connectionString string) (*redis.Options, error) {
	// Handle redis:// or rediss:// URLs
	if strings.HasPrefix(connectionString, "redis://") || strings.HasPrefix(connectionString, "rediss://") {
		parsedURL, err := url.Parse(connectionString)
		if err != nil {
			return nil, fmt.Errorf("invalid Redis URL: %w", err)
		}

		opts := &redis.Options{
			Addr: parsedURL.Host,
		}

		if parsedURL.Scheme == "rediss" {
			opts.TLSConfig = &tls.Config{
				MinVersion: tls.VersionTLS12,
			}
		}

		if parsedURL.User != nil {
			opts.Username = parsedURL.User.Username()
			if password, ok := parsedURL.User.Password(); ok {
				opts.Password = password
			}
		}

		// Database number from path
		if parsedURL.Path != "" && parsedURL.Path != "/" {
			dbStr := strings.TrimPrefix(parsedURL.Path, "/")
			if db, err := strconv.Atoi(dbStr); err == nil {
				opts.DB = db
			}
		}

		return opts, nil
	}

	// For simple address format (host:port), return minimal options
	return &redis.Options{
		Addr: connectionString,
	}, nil
}

// NewRedisStore creates a new Redis store and checks the connection
func NewRedisStore(config types.StoreConfig) (*RedisStore, error) {
	opts, err := parseRedisURL(config.ConnectionString)
	if err != nil {
		return nil, err
	}

	// Override with explicit config values if provided
	if config.Username != "" {
		opts.Username = config.Username
	}
	if config.Password != "" {
		opts.Password = config.Password
	}
	if config.Database != 0 {
		opts.DB = config.Database
	}

	client := redis.NewClient(opts)

	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisStoreFromClient(client, hashKey(config)), nil
}

// NewRedisStoreFromClient wraps an existing client. An empty key selects DefaultHashKey.
func NewRedisStoreFromClient(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultHashKey
	}
	return &RedisStore{
		client: client,
		key:    key,
	}
}

func hashKey(config types.StoreConfig) string {
	if keyOpt, ok := config.Options["key"]; ok {
		if k, ok := keyOpt.(string); ok && k != "" {
			return k
		}
	}
	return DefaultHashKey
}

// HashKey returns the Redis hash this store writes to
func (s *RedisStore) HashKey() string {
	return s.key
}

func field(key int) string {
	return strconv.Itoa(key)
}

// Put stores value under key using HSET
func (s *RedisStore) Put(ctx context.Context, key, value int) error {
	if err := s.client.HSet(ctx, s.key, field(key), value).Err(); err != nil {
		return fmt.Errorf("failed to put count in Redis: %w", err)
	}
	return nil
}

// Get retrieves the value for key using HGET
func (s *RedisStore) Get(ctx context.Context, key int) (int, error) {
	value, err := s.client.HGet(ctx, s.key, field(key)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get count from Redis: %w", err)
	}
	return value, nil
}

// Increment adds one to the value for key using HINCRBY
func (s *RedisStore) Increment(ctx context.Context, key int) error {
	if err := s.client.HIncrBy(ctx, s.key, field(key), 1).Err(); err != nil {
		return fmt.Errorf("failed to increment count in Redis: %w", err)
	}
	return nil
}

// Contains checks if a key exists using HEXISTS
func (s *RedisStore) Contains(ctx context.Context, key int) (bool, error) {
	exists, err := s.client.HExists(ctx, s.key, field(key)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check key existence in Redis: %w", err)
	}
	return exists, nil
}

// Len returns the number of fields in the hash
func (s *RedisStore) Len(ctx context.Context) (int, error) {
	n, err := s.client.HLen(ctx, s.key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count keys in Redis: %w", err)
	}
	return int(n), nil
}

// Keys returns all keys in the hash. Fields that are not integers are skipped.
func (s *RedisStore) Keys(ctx context.Context) ([]int, error) {
	fields, err := s.client.HKeys(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get keys from Redis: %w", err)
	}

	keys := make([]int, 0, len(fields))
	for _, f := range fields {
		if key, err := strconv.Atoi(f); err == nil {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// Flush deletes the hash
func (s *RedisStore) Flush(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to flush Redis: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}
