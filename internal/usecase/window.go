// Package usecase contains the business logic for disruption analysis.
// It orchestrates per-date provider calls using the Scatter-Gather
// concurrency pattern and assembles bucketed, ranked rebooking alternatives.
package usecase

import (
	"time"

	"github.com/autorescue/flight-disruption-service/internal/domain"
)

// DefaultAlternateOffsets is the alternate-date window relative to the
// original date, in days. The production default looks two days earlier,
// capturing "could have flown before the disruption" options. The offset
// set is configurable because no business rule pins it down.
var DefaultAlternateOffsets = []int{-2}

// DateCandidate pairs a candidate rebooking date with the bucket its
// results belong to.
type DateCandidate struct {
	// Date is the candidate departure date at midnight UTC
	Date time.Time

	// Bucket is the recommendation bucket this date feeds
	Bucket domain.BucketLabel
}

// DateString returns the candidate date in YYYY-MM-DD form.
func (c DateCandidate) DateString() string {
	return c.Date.Format(domain.DateFormat)
}

// BuildDateWindow produces the ordered, deduplicated sequence of candidate
// dates to search for a disruption on originalDate.
//
// The window always contains the same-day and next-day entries plus one
// entry per alternate offset. Date arithmetic uses AddDate, so month and
// year boundaries roll over correctly (2025-01-31 + 1 day = 2025-02-01).
// A date can belong to exactly one bucket: on collision the
// higher-precedence bucket wins (same_day > next_day > alternate_date).
func BuildDateWindow(originalDate time.Time, alternateOffsets []int) []DateCandidate {
	if alternateOffsets == nil {
		alternateOffsets = DefaultAlternateOffsets
	}

	day := originalDate.Truncate(24 * time.Hour)

	candidates := []DateCandidate{
		{Date: day, Bucket: domain.BucketSameDay},
		{Date: day.AddDate(0, 0, 1), Bucket: domain.BucketNextDay},
	}
	for _, offset := range alternateOffsets {
		candidates = append(candidates, DateCandidate{
			Date:   day.AddDate(0, 0, offset),
			Bucket: domain.BucketAlternateDate,
		})
	}

	// Deduplicate by date, keeping the highest-precedence bucket.
	seen := make(map[string]int, len(candidates))
	window := make([]DateCandidate, 0, len(candidates))
	for _, c := range candidates {
		key := c.DateString()
		if i, ok := seen[key]; ok {
			if c.Bucket.Precedence() < window[i].Bucket.Precedence() {
				window[i].Bucket = c.Bucket
			}
			continue
		}
		seen[key] = len(window)
		window = append(window, c)
	}

	return window
}
