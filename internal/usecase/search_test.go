package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/autorescue/flight-disruption-service/internal/cache"
	"github.com/autorescue/flight-disruption-service/internal/domain"
	"github.com/autorescue/flight-disruption-service/internal/infrastructure/logger"
)

// memoryCache is a map-backed OfferCache for tests.
type memoryCache struct {
	entries map[string][]domain.FlightOffer
	setErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]domain.FlightOffer)}
}

func (m *memoryCache) key(q domain.SearchQuery) string {
	return q.Origin + q.Destination + q.DepartureDate
}

func (m *memoryCache) Get(_ context.Context, q domain.SearchQuery) ([]domain.FlightOffer, bool) {
	offers, ok := m.entries[m.key(q)]
	return offers, ok
}

func (m *memoryCache) Set(_ context.Context, q domain.SearchQuery, offers []domain.FlightOffer) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.entries[m.key(q)] = offers
	return nil
}

func (m *memoryCache) Close() error { return nil }

var _ cache.OfferCache = (*memoryCache)(nil)

func validSearchQuery() domain.SearchQuery {
	return domain.SearchQuery{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: "2025-11-15",
	}
}

func TestFlightSearchUseCase_Search(t *testing.T) {
	t.Run("returns provider offers and caches them", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := domain.NewMockFlightProvider(ctrl)
		offers := []domain.FlightOffer{testOffer("1", "123.44", "USD", "AA", "1", "2025-11-15T08:00:00Z")}

		provider.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			Return(offers, nil).
			Times(1)

		mem := newMemoryCache()
		uc := NewFlightSearchUseCase(provider, mem, 0, logger.Nop())

		result, err := uc.Search(context.Background(), validSearchQuery())

		require.NoError(t, err)
		assert.Equal(t, "JFK", result.Origin)
		assert.Equal(t, "LAX", result.Destination)
		assert.Equal(t, 1, result.FlightCount)
		assert.False(t, result.CacheHit)

		// Second search hits the cache without another provider call.
		result, err = uc.Search(context.Background(), validSearchQuery())
		require.NoError(t, err)
		assert.True(t, result.CacheHit)
		assert.Equal(t, 1, result.FlightCount)
	})

	t.Run("cache write failure is non-fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := domain.NewMockFlightProvider(ctrl)
		provider.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			Return([]domain.FlightOffer{}, nil)

		mem := newMemoryCache()
		mem.setErr = errors.New("redis write failed")
		uc := NewFlightSearchUseCase(provider, mem, 0, logger.Nop())

		result, err := uc.Search(context.Background(), validSearchQuery())

		require.NoError(t, err)
		assert.Zero(t, result.FlightCount)
	})

	t.Run("provider failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := domain.NewMockFlightProvider(ctrl)
		provider.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewProviderUnavailableError("amadeus"))

		uc := NewFlightSearchUseCase(provider, nil, 0, logger.Nop())

		_, err := uc.Search(context.Background(), validSearchQuery())

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
	})

	t.Run("nil provider result becomes an empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := domain.NewMockFlightProvider(ctrl)
		provider.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			Return(nil, nil)

		uc := NewFlightSearchUseCase(provider, nil, 0, logger.Nop())

		result, err := uc.Search(context.Background(), validSearchQuery())

		require.NoError(t, err)
		assert.NotNil(t, result.Flights)
		assert.Empty(t, result.Flights)
	})

	t.Run("validation rejects bad queries before the provider", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*domain.SearchQuery)
			errMsg string
		}{
			{"missing origin", func(q *domain.SearchQuery) { q.Origin = "" }, "origin is required"},
			{"bad origin", func(q *domain.SearchQuery) { q.Origin = "NEWYORK" }, "origin must be a valid 3-letter IATA code"},
			{"missing destination", func(q *domain.SearchQuery) { q.Destination = "" }, "destination is required"},
			{"lowercase destination", func(q *domain.SearchQuery) { q.Destination = "lax" }, "destination must be a valid 3-letter IATA code"},
			{"same airports", func(q *domain.SearchQuery) { q.Destination = "JFK" }, "must be different"},
			{"missing date", func(q *domain.SearchQuery) { q.DepartureDate = "" }, "departure_date is required"},
			{"bad date format", func(q *domain.SearchQuery) { q.DepartureDate = "15/11/2025" }, "departure_date must be a valid"},
			{"impossible date", func(q *domain.SearchQuery) { q.DepartureDate = "2025-02-30" }, "departure_date must be a valid"},
			{"too many adults", func(q *domain.SearchQuery) { q.Adults = 10 }, "adults must be between 1 and 9"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				provider := domain.NewMockFlightProvider(ctrl)
				// No Search expectation: a provider call fails the test.

				uc := NewFlightSearchUseCase(provider, nil, 0, logger.Nop())

				q := validSearchQuery()
				tt.mutate(&q)

				_, err := uc.Search(context.Background(), q)

				require.Error(t, err)
				assert.True(t, domain.IsInvalidRequest(err))
				assert.Contains(t, err.Error(), tt.errMsg)
			})
		}
	})
}
