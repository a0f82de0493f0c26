package domain

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// SearchQuery defines the parameters for a single-date flight search
// against a provider.
type SearchQuery struct {
	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// DepartureDate is the departure date in YYYY-MM-DD format
	DepartureDate string `json:"departure_date"`

	// Adults is the number of adult passengers (default: 1)
	Adults int `json:"adults"`

	// MaxResults caps the number of offers returned per search
	MaxResults int `json:"max_results"`
}

// SetDefaults applies default values to empty optional fields.
func (q *SearchQuery) SetDefaults() {
	if q.Adults == 0 {
		q.Adults = 1
	}
	if q.MaxResults == 0 {
		q.MaxResults = 5
	}
}

// FlightProvider is the outbound port to a flight-search capability.
// Implementations own authentication, retries, and rate limiting; callers
// see offers or an error.
type FlightProvider interface {
	// Name returns the provider's unique identifier for logging and metrics.
	Name() string

	// Search returns the offers available for the given query. An empty
	// slice with a nil error means the provider found nothing, which is a
	// legitimate outcome rather than a failure.
	Search(ctx context.Context, query SearchQuery) ([]FlightOffer, error)
}

// OfferPricer is the outbound port to an offer re-pricing capability. The
// offer payload is passed through opaquely because pricing requires the
// provider's complete original offer document, not the normalized form.
type OfferPricer interface {
	// Price returns confirmed pricing for a previously searched offer.
	Price(ctx context.Context, offer json.RawMessage) (*PricedOffer, error)
}

// PricedOffer is the reshaped result of re-pricing a flight offer.
type PricedOffer struct {
	// OfferID is the provider-assigned offer identifier
	OfferID string `json:"offer_id"`

	// Pricing contains the confirmed price breakdown
	Pricing PricingDetail `json:"pricing"`

	// BookingInfo contains ticketing constraints for the offer
	BookingInfo BookingInfo `json:"booking_info"`

	// Segments describes the priced itinerary
	Segments []Segment `json:"segments"`

	// Travelers contains the per-traveler fare breakdown
	Travelers []TravelerPricing `json:"travelers,omitempty"`

	// RawOffer is the provider's full priced offer document, retained so a
	// subsequent booking call can submit it unmodified
	RawOffer json.RawMessage `json:"raw_offer,omitempty"`
}

// PricingDetail is the confirmed price breakdown for a priced offer.
type PricingDetail struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	Base       string `json:"base"`
	GrandTotal string `json:"grand_total"`
}

// TravelerPricing is the fare charged to one traveler within a priced offer.
type TravelerPricing struct {
	TravelerID   string `json:"traveler_id"`
	FareOption   string `json:"fare_option,omitempty"`
	TravelerType string `json:"traveler_type"`
	Currency     string `json:"currency"`
	Total        string `json:"total"`
}

// BookingInfo contains ticketing constraints attached to a priced offer.
type BookingInfo struct {
	InstantTicketingRequired bool     `json:"instant_ticketing_required"`
	LastTicketingDate        string   `json:"last_ticketing_date,omitempty"`
	NumberOfBookableSeats    int      `json:"number_of_bookable_seats"`
	ValidatingAirlineCodes   []string `json:"validating_airline_codes,omitempty"`
}
