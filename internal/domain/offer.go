// Package domain contains the core business entities and rules for the
// disruption-alternatives service. These entities are provider-agnostic and
// form the foundation upon which all other components are built.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlightOffer represents one priced, bookable itinerary returned by a
// flight-search provider.
type FlightOffer struct {
	// ID is the provider-assigned identifier for this offer (opaque)
	ID string `json:"id"`

	// Price contains the total price and currency for the whole itinerary
	Price Price `json:"price"`

	// Segments is the ordered sequence of flight legs forming the itinerary.
	// It is never empty for a valid offer.
	Segments []Segment `json:"segments"`
}

// Price contains pricing information for an offer.
type Price struct {
	// Total is the total price as a decimal amount.
	// Decimal is used so provider amounts like "123.44" compare exactly.
	Total decimal.Decimal `json:"total"`

	// Currency is the ISO 4217 currency code (e.g., "USD")
	Currency string `json:"currency"`
}

// Segment represents one flight leg within an offer.
type Segment struct {
	// CarrierCode is the IATA airline code (e.g., "AA")
	CarrierCode string `json:"carrierCode"`

	// Number is the flight number within the carrier (e.g., "123")
	Number string `json:"number"`

	// Departure is the departure airport and time
	Departure AirportTime `json:"departure"`

	// Arrival is the arrival airport and time
	Arrival AirportTime `json:"arrival"`
}

// AirportTime is a point in a journey: an airport plus a scheduled time.
type AirportTime struct {
	// Airport is the IATA airport code (e.g., "JFK")
	Airport string `json:"airport"`

	// At is the scheduled local departure or arrival time
	At time.Time `json:"at"`
}

// PriceRange is the min/max spread of offer prices across a result set.
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`

	// Currency is the currency of the cheapest offer. Offers are never
	// converted between currencies, so with mixed-currency results this is
	// informational only.
	Currency string `json:"currency"`
}

// FirstDeparture returns the departure time of the first segment, or the
// zero time for an offer with no segments.
func (o *FlightOffer) FirstDeparture() time.Time {
	if len(o.Segments) == 0 {
		return time.Time{}
	}
	return o.Segments[0].Departure.At
}

// FlightDesignator returns the carrier code and number of the first segment
// joined as a single string (e.g., "AA123"). Used as the final sorting
// tie-break so result ordering is fully deterministic.
func (o *FlightOffer) FlightDesignator() string {
	if len(o.Segments) == 0 {
		return ""
	}
	return o.Segments[0].CarrierCode + o.Segments[0].Number
}

// Valid reports whether the offer satisfies the basic entity invariants:
// a non-empty itinerary, a non-negative total, and segments that are
// individually and mutually time-ordered.
func (o *FlightOffer) Valid() bool {
	if len(o.Segments) == 0 {
		return false
	}
	if o.Price.Total.IsNegative() {
		return false
	}
	for i, s := range o.Segments {
		if !s.Departure.At.Before(s.Arrival.At) {
			return false
		}
		if i > 0 {
			prev := o.Segments[i-1]
			if prev.Arrival.Airport != s.Departure.Airport {
				return false
			}
			if s.Departure.At.Before(prev.Arrival.At) {
				return false
			}
		}
	}
	return true
}
