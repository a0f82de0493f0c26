// Package cache provides a read-through cache for flight-search responses.
// A Redis-backed implementation is used in production; NoOpCache disables
// caching for tests and local runs without Redis.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/autorescue/flight-disruption-service/internal/domain"
)

// OfferCache caches flight offers keyed by search query.
type OfferCache interface {
	Get(ctx context.Context, query domain.SearchQuery) ([]domain.FlightOffer, bool)
	Set(ctx context.Context, query domain.SearchQuery, offers []domain.FlightOffer) error
	Close() error
}

// RedisCache is a Redis-backed OfferCache with a fixed TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// DefaultRedisConfig returns settings for a local Redis instance.
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Addr: "localhost:6379",
		TTL:  5 * time.Minute,
	}
}

// NewRedisCache connects to Redis and returns a RedisCache. The connection
// is verified with a ping so a misconfigured cache fails at startup, not
// on the first request.
func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

// Get returns the cached offers for the query, if present.
func (c *RedisCache) Get(ctx context.Context, query domain.SearchQuery) ([]domain.FlightOffer, bool) {
	data, err := c.client.Get(ctx, cacheKey(query)).Bytes()
	if err != nil {
		return nil, false
	}

	var offers []domain.FlightOffer
	if err := json.Unmarshal(data, &offers); err != nil {
		return nil, false
	}
	return offers, true
}

// Set stores the offers for the query with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, query domain.SearchQuery, offers []domain.FlightOffer) error {
	data, err := json.Marshal(offers)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(query), data, c.ttl).Err()
}

// Close releases the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// NoOpCache is an OfferCache that never hits.
type NoOpCache struct{}

// NewNoOpCache creates a cache that stores nothing.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (*NoOpCache) Get(ctx context.Context, query domain.SearchQuery) ([]domain.FlightOffer, bool) {
	return nil, false
}

func (*NoOpCache) Set(ctx context.Context, query domain.SearchQuery, offers []domain.FlightOffer) error {
	return nil
}

func (*NoOpCache) Close() error {
	return nil
}

// cacheKey derives a stable key from the query fields that affect results.
func cacheKey(query domain.SearchQuery) string {
	data, _ := json.Marshal(query)
	hash := sha256.Sum256(data)
	return "offers:" + hex.EncodeToString(hash[:])
}

// Ensure implementations satisfy OfferCache at compile time.
var (
	_ OfferCache = (*RedisCache)(nil)
	_ OfferCache = (*NoOpCache)(nil)
)
