// Package http provides the HTTP handler layer for the disruption service.
// It handles request parsing, alias resolution, validation, response
// formatting, and error mapping.
package http

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/autorescue/flight-disruption-service/internal/domain"
)

// Upstream callers historically spelled the same logical field several
// ways, so each field resolves against a small alias table in fixed
// priority order. The canonical name comes first.
var (
	originalFlightAliases = []string{"original_flight", "originalFlightNumber", "original_flight_number", "flight_number", "flightNumber"}
	originAliases         = []string{"origin", "originLocationCode"}
	destinationAliases    = []string{"destination", "destinationLocationCode"}
	originalDateAliases   = []string{"original_date", "originalDate", "date", "departure_date", "departureDate"}
	reasonAliases         = []string{"disruption_reason", "disruptionReason", "reason"}
)

// AnalyzeDisruptionRequest is the request body for disruption analysis.
type AnalyzeDisruptionRequest struct {
	OriginalFlight   string `json:"original_flight"`
	Origin           string `json:"origin"`
	Destination      string `json:"destination"`
	OriginalDate     string `json:"original_date"`
	DisruptionReason string `json:"disruption_reason"`
}

// UnmarshalJSON resolves field aliases so inconsistent upstream spellings
// all land on the canonical fields.
func (r *AnalyzeDisruptionRequest) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	r.OriginalFlight = resolveString(fields, originalFlightAliases)
	r.Origin = resolveString(fields, originAliases)
	r.Destination = resolveString(fields, destinationAliases)
	r.OriginalDate = resolveString(fields, originalDateAliases)
	r.DisruptionReason = resolveString(fields, reasonAliases)
	return nil
}

// resolveString returns the first alias present in fields that holds a
// JSON string.
func resolveString(fields map[string]json.RawMessage, aliases []string) string {
	for _, key := range aliases {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return s
		}
	}
	return ""
}

// ValidationErrors holds field-level validation failures.
type ValidationErrors struct {
	Errors []domain.ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Error()
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, domain.ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API responses.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the analyze request after alias resolution. Airport
// codes are normalized to uppercase before pattern checks.
func (r *AnalyzeDisruptionRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Origin = strings.ToUpper(strings.TrimSpace(r.Origin))
	r.Destination = strings.ToUpper(strings.TrimSpace(r.Destination))

	if r.OriginalFlight == "" {
		errs.Add("original_flight", "original_flight is required")
	}

	switch {
	case r.Origin == "":
		errs.Add("origin", "origin is required")
	case !domain.IsIATACode(r.Origin):
		errs.Add("origin", "origin must be a valid 3-letter IATA airport code")
	}

	switch {
	case r.Destination == "":
		errs.Add("destination", "destination is required")
	case !domain.IsIATACode(r.Destination):
		errs.Add("destination", "destination must be a valid 3-letter IATA airport code")
	}

	if r.Origin != "" && r.Origin == r.Destination {
		errs.Add("destination", "origin and destination must be different")
	}

	switch {
	case r.OriginalDate == "":
		errs.Add("original_date", "original_date is required")
	default:
		if _, err := time.Parse(domain.DateFormat, r.OriginalDate); err != nil {
			errs.Add("original_date", "original_date must be a valid date in YYYY-MM-DD format")
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ToDomain converts the request to a domain DisruptionRequest.
func (r *AnalyzeDisruptionRequest) ToDomain() domain.DisruptionRequest {
	req := domain.DisruptionRequest{
		OriginalFlight:   r.OriginalFlight,
		Origin:           strings.ToUpper(r.Origin),
		Destination:      strings.ToUpper(r.Destination),
		OriginalDate:     r.OriginalDate,
		DisruptionReason: r.DisruptionReason,
	}
	req.SetDefaults()
	return req
}

// SearchFlightsRequest is the request body for single-date flight search.
type SearchFlightsRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	Adults        int    `json:"adults"`
	MaxResults    int    `json:"max_results"`
}

// UnmarshalJSON resolves date aliases for the search request.
func (r *SearchFlightsRequest) UnmarshalJSON(data []byte) error {
	type plain SearchFlightsRequest
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = SearchFlightsRequest(p)

	if r.DepartureDate == "" {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err == nil {
			r.DepartureDate = resolveString(fields, originalDateAliases)
		}
	}
	return nil
}

// ToDomain converts the request to a domain SearchQuery.
func (r *SearchFlightsRequest) ToDomain() domain.SearchQuery {
	q := domain.SearchQuery{
		Origin:        strings.ToUpper(strings.TrimSpace(r.Origin)),
		Destination:   strings.ToUpper(strings.TrimSpace(r.Destination)),
		DepartureDate: r.DepartureDate,
		Adults:        r.Adults,
		MaxResults:    r.MaxResults,
	}
	q.SetDefaults()
	return q
}

// PriceOfferRequest is the request body for offer re-pricing. The offer
// may arrive wrapped in a flight_offer field or as the bare offer object.
type PriceOfferRequest struct {
	Offer json.RawMessage
}

// UnmarshalJSON accepts both the wrapped and the bare offer form.
func (r *PriceOfferRequest) UnmarshalJSON(data []byte) error {
	var wrapper struct {
		FlightOffer json.RawMessage `json:"flight_offer"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}
	if len(wrapper.FlightOffer) > 0 && string(wrapper.FlightOffer) != "null" {
		r.Offer = wrapper.FlightOffer
		return nil
	}
	r.Offer = append(json.RawMessage(nil), data...)
	return nil
}

// BookFlightRequest is the request body for booking a priced offer. It
// accepts the same forms as pricing: the offer wrapped in a
// flight_offer field, or the bare offer object.
type BookFlightRequest struct {
	Offer json.RawMessage
}

// UnmarshalJSON accepts both the wrapped and the bare offer form.
func (r *BookFlightRequest) UnmarshalJSON(data []byte) error {
	var wrapper struct {
		FlightOffer json.RawMessage `json:"flight_offer"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}
	if len(wrapper.FlightOffer) > 0 && string(wrapper.FlightOffer) != "null" {
		r.Offer = wrapper.FlightOffer
		return nil
	}
	r.Offer = append(json.RawMessage(nil), data...)
	return nil
}

// gatewayEnvelope is the calling convention of the upstream gateway layer:
// the real payload may be nested as a JSON string under "body".
type gatewayEnvelope struct {
	Body json.RawMessage `json:"body"`
}

// UnwrapEnvelope returns the effective request payload. If data is an
// envelope whose body field holds a JSON string or object, the inner
// payload is returned; otherwise data itself is.
func UnwrapEnvelope(data []byte) []byte {
	var env gatewayEnvelope
	if err := json.Unmarshal(data, &env); err != nil || len(env.Body) == 0 || string(env.Body) == "null" {
		return data
	}

	// body as a JSON-encoded string containing the payload
	var inner string
	if err := json.Unmarshal(env.Body, &inner); err == nil && inner != "" {
		return []byte(inner)
	}

	// body as a direct JSON object
	trimmed := strings.TrimSpace(string(env.Body))
	if strings.HasPrefix(trimmed, "{") {
		return env.Body
	}

	return data
}
