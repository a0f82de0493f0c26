package domain

import "context"

//go:generate mockgen -source=booking.go -destination=mock_booking.go -package=domain

// BookingStatusConfirmed is the status of a successfully created booking.
const BookingStatusConfirmed = "CONFIRMED"

// PassengerInfo identifies the traveler a booking is made for.
type PassengerInfo struct {
	// FirstName is the traveler's given name
	FirstName string `json:"first_name"`

	// LastName is the traveler's family name
	LastName string `json:"last_name"`

	// Email receives the booking confirmation
	Email string `json:"email"`

	// Phone is the traveler's contact number
	Phone string `json:"phone"`
}

// FullName joins the name parts for display and confirmation messages.
func (p PassengerInfo) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// PassengerInfoSupplier is the outbound port to the traveler profile
// store. Implementations own fetching and caching; callers see a
// passenger or an error.
type PassengerInfoSupplier interface {
	// PassengerInfo returns the traveler the rebooking is made for.
	PassengerInfo(ctx context.Context) (PassengerInfo, error)
}

// BookingConfirmation is the result of booking a priced offer.
type BookingConfirmation struct {
	// BookingReference is the confirmation number issued for the booking
	BookingReference string `json:"booking_reference"`

	// Status is the booking state, CONFIRMED on success
	Status string `json:"status"`

	// Passenger is the traveler the booking was made for
	Passenger PassengerInfo `json:"passenger"`

	// Flight summarizes the booked itinerary
	Flight BookedFlight `json:"flight"`

	// Price is the confirmed fare for the booking
	Price BookedPrice `json:"price"`
}

// BookedFlight summarizes the itinerary of a confirmed booking. Origin
// and departure time come from the first segment, destination from the
// last, so connecting itineraries read end to end.
type BookedFlight struct {
	// FlightNumber is the carrier code and number of the first segment
	FlightNumber string `json:"flight_number"`

	// Carrier is the IATA airline code of the first segment
	Carrier string `json:"carrier"`

	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the final arrival airport
	Destination string `json:"destination"`

	// DepartureAt is the scheduled local departure time as supplied by
	// the provider
	DepartureAt string `json:"departure_at"`
}

// BookedPrice is the fare charged for a confirmed booking.
type BookedPrice struct {
	Currency string `json:"currency"`
	Total    string `json:"total"`
}
