package amadeus

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/autorescue/flight-disruption-service/internal/domain"
)

// datetime layouts seen in Amadeus responses. Segment times carry no zone
// designator because they are airport-local.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// normalizeOffer converts one raw search offer into the domain shape.
// Offers that cannot be normalized are reported as malformed so the
// caller can skip them instead of failing the whole search.
func normalizeOffer(p offerPayload) (domain.FlightOffer, error) {
	if len(p.Itineraries) == 0 {
		return domain.FlightOffer{}, fmt.Errorf("%w: offer %s has no itineraries", domain.ErrMalformedOffer, p.ID)
	}

	total, err := decimal.NewFromString(p.Price.Total)
	if err != nil {
		return domain.FlightOffer{}, fmt.Errorf("%w: offer %s price %q: %v", domain.ErrMalformedOffer, p.ID, p.Price.Total, err)
	}

	// Only the outbound itinerary matters for a same-route replacement.
	segments, err := normalizeSegments(p.ID, p.Itineraries[0].Segments)
	if err != nil {
		return domain.FlightOffer{}, err
	}

	return domain.FlightOffer{
		ID: p.ID,
		Price: domain.Price{
			Total:    total,
			Currency: p.Price.Currency,
		},
		Segments: segments,
	}, nil
}

func normalizeSegments(offerID string, payloads []segmentPayload) ([]domain.Segment, error) {
	if len(payloads) == 0 {
		return nil, fmt.Errorf("%w: offer %s itinerary has no segments", domain.ErrMalformedOffer, offerID)
	}

	segments := make([]domain.Segment, 0, len(payloads))
	for _, s := range payloads {
		dep, err := parseDateTime(s.Departure.At)
		if err != nil {
			return nil, fmt.Errorf("%w: offer %s departure time %q: %v", domain.ErrMalformedOffer, offerID, s.Departure.At, err)
		}
		arr, err := parseDateTime(s.Arrival.At)
		if err != nil {
			return nil, fmt.Errorf("%w: offer %s arrival time %q: %v", domain.ErrMalformedOffer, offerID, s.Arrival.At, err)
		}
		segments = append(segments, domain.Segment{
			CarrierCode: s.CarrierCode,
			Number:      s.Number,
			Departure:   domain.AirportTime{Airport: s.Departure.IATACode, At: dep},
			Arrival:     domain.AirportTime{Airport: s.Arrival.IATACode, At: arr},
		})
	}
	return segments, nil
}

func parseDateTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range datetimeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// normalizePricedOffer converts one pricing-confirmation offer into the
// domain shape, keeping the raw document for later booking.
func normalizePricedOffer(p pricedOfferPayload, raw []byte) (*domain.PricedOffer, error) {
	var segments []domain.Segment
	if len(p.Itineraries) > 0 {
		var err error
		segments, err = normalizeSegments(p.ID, p.Itineraries[0].Segments)
		if err != nil {
			return nil, err
		}
	}

	var travelers []domain.TravelerPricing
	for _, tp := range p.TravelerPricings {
		travelers = append(travelers, domain.TravelerPricing{
			TravelerID:   tp.TravelerID,
			FareOption:   tp.FareOption,
			TravelerType: tp.TravelerType,
			Currency:     tp.Price.Currency,
			Total:        tp.Price.Total,
		})
	}

	return &domain.PricedOffer{
		OfferID: p.ID,
		Pricing: domain.PricingDetail{
			Currency:   p.Price.Currency,
			Total:      p.Price.Total,
			Base:       p.Price.Base,
			GrandTotal: p.Price.GrandTotal,
		},
		BookingInfo: domain.BookingInfo{
			InstantTicketingRequired: p.InstantTicketingRequired,
			LastTicketingDate:        p.LastTicketingDate,
			NumberOfBookableSeats:    p.NumberOfBookableSeats,
			ValidatingAirlineCodes:   p.ValidatingAirlineCodes,
		},
		Segments:  segments,
		Travelers: travelers,
		RawOffer:  raw,
	}, nil
}
