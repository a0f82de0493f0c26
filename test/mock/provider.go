// Package mock provides test doubles for the disruption service.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, per-date responses).
package mock

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/autorescue/flight-disruption-service/internal/domain"
)

// Provider is a configurable mock implementation of domain.FlightProvider.
// It supports configurable delays, errors, and per-date offers for testing
// scenarios including timeouts and partial failures.
type Provider struct {
	name         string
	offers       []domain.FlightOffer
	offersByDate map[string][]domain.FlightOffer
	err          error
	errByDate    map[string]error
	delay        time.Duration
	callCount    int
	mu           sync.Mutex
}

// NewProvider creates a new mock provider with the given name.
// The provider is configured using the builder pattern methods.
func NewProvider(name string) *Provider {
	return &Provider{
		name:         name,
		offersByDate: make(map[string][]domain.FlightOffer),
		errByDate:    make(map[string]error),
	}
}

// WithOffers configures the provider to return the given offers for every date.
func (p *Provider) WithOffers(offers []domain.FlightOffer) *Provider {
	p.offers = offers
	return p
}

// WithOffersOn configures the offers returned for one specific date.
func (p *Provider) WithOffersOn(date string, offers []domain.FlightOffer) *Provider {
	p.offersByDate[date] = offers
	return p
}

// WithError configures the provider to return the given error.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithErrorOn configures an error for one specific date only.
func (p *Provider) WithErrorOn(date string, err error) *Provider {
	p.errByDate[date] = err
	return p
}

// WithDelay configures the provider to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return p.name
}

// Search implements domain.FlightProvider.Search.
// It respects context cancellation, applies the configured delay, and
// returns the offers or error configured for the requested date.
func (p *Provider) Search(ctx context.Context, query domain.SearchQuery) ([]domain.FlightOffer, error) {
	p.mu.Lock()
	p.callCount++
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if err, ok := p.errByDate[query.DepartureDate]; ok {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}

	if offers, ok := p.offersByDate[query.DepartureDate]; ok {
		return offers, nil
	}
	return p.offers, nil
}

// CallCount returns the number of times Search was called.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// Reset resets the call count to zero.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
}

// Ensure Provider implements domain.FlightProvider at compile time.
var _ domain.FlightProvider = (*Provider)(nil)

// Pricer is a configurable mock implementation of domain.OfferPricer.
type Pricer struct {
	priced *domain.PricedOffer
	err    error
}

// NewPricer creates a mock pricer returning the given priced offer.
func NewPricer(priced *domain.PricedOffer) *Pricer {
	return &Pricer{priced: priced}
}

// WithError configures the pricer to fail.
func (p *Pricer) WithError(err error) *Pricer {
	p.err = err
	return p
}

// Price implements domain.OfferPricer.Price.
func (p *Pricer) Price(ctx context.Context, offer json.RawMessage) (*domain.PricedOffer, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.priced != nil {
		return p.priced, nil
	}

	// Default: echo the offer back with a fixed confirmed price.
	var probe struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(offer, &probe)
	return &domain.PricedOffer{
		OfferID: probe.ID,
		Pricing: domain.PricingDetail{
			Currency:   "USD",
			Total:      "130.00",
			Base:       "110.00",
			GrandTotal: "130.00",
		},
		RawOffer: offer,
	}, nil
}

// Ensure Pricer implements domain.OfferPricer at compile time.
var _ domain.OfferPricer = (*Pricer)(nil)

// Passenger is a configurable mock implementation of
// domain.PassengerInfoSupplier.
type Passenger struct {
	info domain.PassengerInfo
	err  error
}

// NewPassenger creates a mock supplier returning the given passenger.
func NewPassenger(info domain.PassengerInfo) *Passenger {
	return &Passenger{info: info}
}

// WithError configures the supplier to fail.
func (p *Passenger) WithError(err error) *Passenger {
	p.err = err
	return p
}

// PassengerInfo implements domain.PassengerInfoSupplier.PassengerInfo.
func (p *Passenger) PassengerInfo(ctx context.Context) (domain.PassengerInfo, error) {
	if p.err != nil {
		return domain.PassengerInfo{}, p.err
	}
	return p.info, nil
}

// Ensure Passenger implements domain.PassengerInfoSupplier at compile time.
var _ domain.PassengerInfoSupplier = (*Passenger)(nil)

// SampleOffers returns a slice of sample one-segment offers for the given
// departure date. The offers have ascending prices and staggered departure
// times so ranking tests get a deterministic ordering.
func SampleOffers(date string, count int) []domain.FlightOffer {
	day, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		panic("invalid sample date: " + date)
	}

	offers := make([]domain.FlightOffer, count)
	for i := 0; i < count; i++ {
		departure := day.Add(time.Duration(8+2*i) * time.Hour)
		arrival := departure.Add(6 * time.Hour)

		offers[i] = domain.FlightOffer{
			ID: date + "-" + strconv.Itoa(i+1),
			Price: domain.Price{
				Total:    decimal.NewFromInt(int64(100 + 20*i)),
				Currency: "USD",
			},
			Segments: []domain.Segment{
				{
					CarrierCode: "AA",
					Number:      strconv.Itoa(100 + i),
					Departure:   domain.AirportTime{Airport: "JFK", At: departure},
					Arrival:     domain.AirportTime{Airport: "LAX", At: arrival},
				},
			},
		}
	}
	return offers
}
