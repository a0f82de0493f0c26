package domain

import (
	"fmt"
	"regexp"
	"time"
)

// DateFormat is the calendar-date layout used throughout the service.
const DateFormat = "2006-01-02"

// DefaultDisruptionReason is applied when a request omits the reason.
const DefaultDisruptionReason = "cancellation"

// BucketLabel names a partition of candidate rebooking dates, used to
// prioritize recommendations.
type BucketLabel string

// Recommendation buckets in precedence order. When a window configuration
// maps one calendar date to more than one bucket, the higher-precedence
// bucket wins.
const (
	BucketSameDay       BucketLabel = "same_day"
	BucketNextDay       BucketLabel = "next_day"
	BucketAlternateDate BucketLabel = "alternate_date"
)

// Precedence returns the ordering rank of the bucket; lower ranks win on
// date collisions.
func (b BucketLabel) Precedence() int {
	switch b {
	case BucketSameDay:
		return 0
	case BucketNextDay:
		return 1
	case BucketAlternateDate:
		return 2
	default:
		return 3
	}
}

// DisruptionRequest describes a disrupted flight for which rebooking
// alternatives should be found.
type DisruptionRequest struct {
	// OriginalFlight is the disrupted flight number (e.g., "AA123")
	OriginalFlight string `json:"original_flight"`

	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// OriginalDate is the original departure date in YYYY-MM-DD format.
	// Past dates are accepted: rebooking analysis may run against
	// already-elapsed disruptions.
	OriginalDate string `json:"original_date"`

	// DisruptionReason is free text such as "cancellation" or
	// "mechanical issue" (default: "cancellation")
	DisruptionReason string `json:"disruption_reason"`
}

var iataCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// IsIATACode reports whether s is a valid 3-letter IATA airport code.
func IsIATACode(s string) bool {
	return iataCodeRegex.MatchString(s)
}

var disruptionDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks the request against the entity invariants. It returns a
// wrapped ErrInvalidRequest error if validation fails.
func (r *DisruptionRequest) Validate() error {
	if r.Origin == "" {
		return WrapInvalidRequest("origin is required")
	}
	if !iataCodeRegex.MatchString(r.Origin) {
		return WrapInvalidRequest("origin must be a valid 3-letter IATA code, got %q", r.Origin)
	}

	if r.Destination == "" {
		return WrapInvalidRequest("destination is required")
	}
	if !iataCodeRegex.MatchString(r.Destination) {
		return WrapInvalidRequest("destination must be a valid 3-letter IATA code, got %q", r.Destination)
	}

	if r.Origin == r.Destination {
		return WrapInvalidRequest("origin and destination must be different")
	}

	if r.OriginalDate == "" {
		return WrapInvalidRequest("original_date is required")
	}
	if !disruptionDateRegex.MatchString(r.OriginalDate) {
		return WrapInvalidRequest("original_date must be in YYYY-MM-DD format, got %q", r.OriginalDate)
	}
	if _, err := time.Parse(DateFormat, r.OriginalDate); err != nil {
		return WrapInvalidRequest("original_date is not a valid date: %s", r.OriginalDate)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (r *DisruptionRequest) SetDefaults() {
	if r.DisruptionReason == "" {
		r.DisruptionReason = DefaultDisruptionReason
	}
}

// ParsedDate returns the original date as a time.Time at midnight UTC.
// Validate must have succeeded first.
func (r *DisruptionRequest) ParsedDate() (time.Time, error) {
	t, err := time.Parse(DateFormat, r.OriginalDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse original date: %w", err)
	}
	return t, nil
}

// AlternativesResult is the output of a disruption analysis: rebooking
// alternatives bucketed by rebooking date, with summary statistics. It is
// constructed fresh per request and never persisted.
type AlternativesResult struct {
	// OriginalFlight echoes the disrupted flight number
	OriginalFlight string `json:"original_flight"`

	// Origin and Destination echo the requested route
	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	// OriginalDate echoes the disrupted departure date
	OriginalDate string `json:"original_date"`

	// DisruptionReason echoes the reason supplied by the caller
	DisruptionReason string `json:"disruption_reason"`

	// Buckets maps each bucket label to its offers, sorted by ascending
	// price. Buckets that received no offers are present and empty.
	Buckets map[BucketLabel][]FlightOffer `json:"buckets"`

	// PriceRange spans all offers across all buckets. It is nil when no
	// alternatives were found; "no alternatives" and "a zero-cost
	// alternative" are distinct outcomes.
	PriceRange *PriceRange `json:"price_range,omitempty"`

	// TotalAlternatives is the offer count across all buckets
	TotalAlternatives int `json:"total_alternatives"`
}
