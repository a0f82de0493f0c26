package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/autorescue/flight-disruption-service/internal/cache"
	"github.com/autorescue/flight-disruption-service/internal/domain"
	"github.com/autorescue/flight-disruption-service/internal/infrastructure/logger"
)

// DefaultSearchTimeout bounds a single-date flight search.
const DefaultSearchTimeout = 5 * time.Second

// SearchResult is the response of a single-date flight search.
type SearchResult struct {
	// Origin and Destination echo the requested route
	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	// DepartureDate echoes the requested date
	DepartureDate string `json:"departure_date"`

	// FlightCount is the number of offers returned
	FlightCount int `json:"flight_count"`

	// Flights contains the offers found for the date
	Flights []domain.FlightOffer `json:"flights"`

	// CacheHit indicates whether the results came from the response cache
	CacheHit bool `json:"cache_hit"`
}

// FlightSearchUseCase defines the interface for single-date flight search.
type FlightSearchUseCase interface {
	Search(ctx context.Context, query domain.SearchQuery) (*SearchResult, error)
}

type flightSearchUseCase struct {
	provider domain.FlightProvider
	cache    cache.OfferCache
	timeout  time.Duration
	log      *logger.Logger
}

// NewFlightSearchUseCase creates a FlightSearchUseCase. The cache may be a
// NoOp implementation; a nil cache is replaced with one.
func NewFlightSearchUseCase(provider domain.FlightProvider, offerCache cache.OfferCache, timeout time.Duration, log *logger.Logger) FlightSearchUseCase {
	if offerCache == nil {
		offerCache = cache.NewNoOpCache()
	}
	if timeout <= 0 {
		timeout = DefaultSearchTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &flightSearchUseCase{
		provider: provider,
		cache:    offerCache,
		timeout:  timeout,
		log:      log,
	}
}

// Search implements FlightSearchUseCase.Search with a read-through cache.
// Cache failures are non-fatal: a miss or a failed write only means the
// provider is queried again next time.
func (uc *flightSearchUseCase) Search(ctx context.Context, query domain.SearchQuery) (*SearchResult, error) {
	query.SetDefaults()
	if err := validateSearchQuery(query); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if offers, ok := uc.cache.Get(ctx, query); ok {
		return &SearchResult{
			Origin:        query.Origin,
			Destination:   query.Destination,
			DepartureDate: query.DepartureDate,
			FlightCount:   len(offers),
			Flights:       offers,
			CacheHit:      true,
		}, nil
	}

	offers, err := uc.provider.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search %s-%s on %s: %w", query.Origin, query.Destination, query.DepartureDate, err)
	}
	if offers == nil {
		offers = []domain.FlightOffer{}
	}

	if err := uc.cache.Set(ctx, query, offers); err != nil {
		uc.log.Warn().Err(err).Msg("Failed to cache search results")
	}

	return &SearchResult{
		Origin:        query.Origin,
		Destination:   query.Destination,
		DepartureDate: query.DepartureDate,
		FlightCount:   len(offers),
		Flights:       offers,
	}, nil
}

// validateSearchQuery applies the same entry gate as disruption analysis:
// strict shape validation before any provider call.
func validateSearchQuery(q domain.SearchQuery) error {
	if q.Origin == "" {
		return domain.WrapInvalidRequest("origin is required")
	}
	if !domain.IsIATACode(q.Origin) {
		return domain.WrapInvalidRequest("origin must be a valid 3-letter IATA code, got %q", q.Origin)
	}
	if q.Destination == "" {
		return domain.WrapInvalidRequest("destination is required")
	}
	if !domain.IsIATACode(q.Destination) {
		return domain.WrapInvalidRequest("destination must be a valid 3-letter IATA code, got %q", q.Destination)
	}
	if q.Origin == q.Destination {
		return domain.WrapInvalidRequest("origin and destination must be different")
	}
	if q.DepartureDate == "" {
		return domain.WrapInvalidRequest("departure_date is required")
	}
	if _, err := time.Parse(domain.DateFormat, q.DepartureDate); err != nil {
		return domain.WrapInvalidRequest("departure_date must be a valid YYYY-MM-DD date, got %q", q.DepartureDate)
	}
	if q.Adults < 1 || q.Adults > 9 {
		return domain.WrapInvalidRequest("adults must be between 1 and 9, got %d", q.Adults)
	}
	return nil
}

// Ensure flightSearchUseCase implements FlightSearchUseCase at compile time.
var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)
