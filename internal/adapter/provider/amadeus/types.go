package amadeus

import "encoding/json"

// Wire types for the Amadeus self-service APIs. Field names follow the
// provider's JSON exactly; normalization into domain types happens in
// normalizer.go.

// tokenResponse is the OAuth2 client-credentials grant response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// searchResponse is the Flight Offers Search response envelope.
type searchResponse struct {
	Data []offerPayload `json:"data"`
}

// offerPayload is one flight offer as returned by the search API.
type offerPayload struct {
	ID          string             `json:"id"`
	Price       pricePayload       `json:"price"`
	Itineraries []itineraryPayload `json:"itineraries"`
}

type pricePayload struct {
	Total      string `json:"total"`
	Base       string `json:"base"`
	GrandTotal string `json:"grandTotal"`
	Currency   string `json:"currency"`
}

type itineraryPayload struct {
	Duration string           `json:"duration"`
	Segments []segmentPayload `json:"segments"`
}

type segmentPayload struct {
	ID          string         `json:"id"`
	CarrierCode string         `json:"carrierCode"`
	Number      string         `json:"number"`
	Departure   airportPayload `json:"departure"`
	Arrival     airportPayload `json:"arrival"`
}

type airportPayload struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"`
}

// pricingRequest is the Flight Offers Pricing request envelope.
type pricingRequest struct {
	Data pricingRequestData `json:"data"`
}

type pricingRequestData struct {
	Type         string            `json:"type"`
	FlightOffers []json.RawMessage `json:"flightOffers"`
}

// pricingResponse is the Flight Offers Pricing response envelope.
type pricingResponse struct {
	Data pricingResponseData `json:"data"`
}

type pricingResponseData struct {
	FlightOffers []pricedOfferPayload `json:"flightOffers"`
}

// pricedOfferPayload is one confirmed-price offer. RawPayload retains the
// provider's full document for a later booking call.
type pricedOfferPayload struct {
	ID                       string                   `json:"id"`
	Price                    pricePayload             `json:"price"`
	Itineraries              []itineraryPayload       `json:"itineraries"`
	InstantTicketingRequired bool                     `json:"instantTicketingRequired"`
	LastTicketingDate        string                   `json:"lastTicketingDate"`
	NumberOfBookableSeats    int                      `json:"numberOfBookableSeats"`
	ValidatingAirlineCodes   []string                 `json:"validatingAirlineCodes"`
	TravelerPricings         []travelerPricingPayload `json:"travelerPricings"`
}

// travelerPricingPayload is one traveler's fare within a priced offer.
type travelerPricingPayload struct {
	TravelerID   string       `json:"travelerId"`
	FareOption   string       `json:"fareOption"`
	TravelerType string       `json:"travelerType"`
	Price        pricePayload `json:"price"`
}

// apiError is the Amadeus error envelope.
type apiError struct {
	Errors []struct {
		Status int    `json:"status"`
		Code   int    `json:"code"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}
