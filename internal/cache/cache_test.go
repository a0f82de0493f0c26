package cache

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autorescue/flight-disruption-service/internal/domain"
)

func TestCacheKey(t *testing.T) {
	base := domain.SearchQuery{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: "2025-11-15",
		Adults:        1,
		MaxResults:    5,
	}

	t.Run("is deterministic", func(t *testing.T) {
		assert.Equal(t, cacheKey(base), cacheKey(base))
	})

	t.Run("is namespaced", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(cacheKey(base), "offers:"))
	})

	t.Run("differs per query field", func(t *testing.T) {
		variants := []func(q *domain.SearchQuery){
			func(q *domain.SearchQuery) { q.Origin = "EWR" },
			func(q *domain.SearchQuery) { q.Destination = "SFO" },
			func(q *domain.SearchQuery) { q.DepartureDate = "2025-11-16" },
			func(q *domain.SearchQuery) { q.Adults = 2 },
			func(q *domain.SearchQuery) { q.MaxResults = 10 },
		}

		for _, mutate := range variants {
			q := base
			mutate(&q)
			assert.NotEqual(t, cacheKey(base), cacheKey(q))
		}
	})
}

func TestNoOpCache(t *testing.T) {
	c := NewNoOpCache()
	ctx := context.Background()
	query := domain.SearchQuery{Origin: "JFK", Destination: "LAX", DepartureDate: "2025-11-15"}

	require.NoError(t, c.Set(ctx, query, []domain.FlightOffer{{ID: "1"}}))

	offers, ok := c.Get(ctx, query)
	assert.False(t, ok, "NoOpCache never hits")
	assert.Nil(t, offers)

	assert.NoError(t, c.Close())
}

func TestNewRedisCache_ConnectionFailure(t *testing.T) {
	// Nothing listens on this port; construction must fail fast instead of
	// deferring the error to the first request.
	_, err := NewRedisCache(RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}
