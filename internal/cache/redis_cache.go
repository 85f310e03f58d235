package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/parlay-recommender-service/internal/models"
)

// ErrCacheMiss is returned when no snapshot is stored for a sport
var ErrCacheMiss = errors.New("odds snapshot not found in cache")

// RedisCache caches per-sport odds snapshots in Redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// RedisCacheConfig holds Redis cache configuration
type RedisCacheConfig struct {
	Addr     string // e.g., "localhost:6379"
	Password string
	DB       int
	TTL      time.Duration // e.g., 5 * time.Minute
}

// retention keeps stale snapshots around as a fallback when the provider is down
const retention = 24 * time.Hour

// NewRedisCache creates a new Redis cache
func NewRedisCache(config RedisCacheConfig, logger zerolog.Logger) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &RedisCache{
		client: client,
		ttl:    config.TTL,
		logger: logger.With().Str("component", "redis_cache").Logger(),
	}
}

func snapshotKey(sport string) string {
	return fmt.Sprintf("odds:snapshot:%s", sport)
}

// Set stores the snapshot for its sport
func (c *RedisCache) Set(ctx context.Context, snapshot *models.OddsSnapshot) error {
	if snapshot.SportKey == "" {
		return fmt.Errorf("snapshot has no sport key")
	}
	key := snapshotKey(snapshot.SportKey)

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := c.client.Set(ctx, key, data, retention).Err(); err != nil {
		return fmt.Errorf("failed to set in Redis: %w", err)
	}

	c.logger.Debug().
		Str("key", key).
		Int("games", len(snapshot.Games)).
		Time("fetched_at", snapshot.FetchedAt).
		Msg("cached odds snapshot")

	return nil
}

// Get retrieves the snapshot for a sport whatever its age; use IsFresh to
// decide whether it can be served
func (c *RedisCache) Get(ctx context.Context, sport string) (*models.OddsSnapshot, error) {
	data, err := c.client.Get(ctx, snapshotKey(sport)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	} else if err != nil {
		return nil, fmt.Errorf("failed to get from Redis: %w", err)
	}

	var snapshot models.OddsSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}

// IsFresh reports whether the snapshot was fetched within the TTL
func (c *RedisCache) IsFresh(snapshot *models.OddsSnapshot, now time.Time) bool {
	if snapshot == nil {
		return false
	}
	return now.Sub(snapshot.FetchedAt) < c.ttl
}

// Sports lists the sports that currently have a snapshot
func (c *RedisCache) Sports(ctx context.Context) ([]string, error) {
	var cursor uint64
	var sports []string
	prefix := snapshotKey("")

	for {
		keys, next, err := c.client.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan keys: %w", err)
		}
		for _, key := range keys {
			sports = append(sports, key[len(prefix):])
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return sports, nil
}

// Ping checks Redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
