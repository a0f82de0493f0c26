package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/autorescue/flight-disruption-service/internal/domain"
	"github.com/autorescue/flight-disruption-service/internal/infrastructure/logger"
	"github.com/autorescue/flight-disruption-service/internal/metrics"
)

// Default timeout values for disruption analysis.
const (
	DefaultAnalyzeTimeout = 10 * time.Second
	DefaultPerDateTimeout = 3 * time.Second

	// DefaultMaxOffersPerDate caps how many offers one candidate date
	// contributes to its bucket.
	DefaultMaxOffersPerDate = 3
)

// DisruptionAnalyzer defines the interface for disruption analysis.
type DisruptionAnalyzer interface {
	// Analyze searches the provider across the candidate date window and
	// returns bucketed, ranked rebooking alternatives. It fails only on
	// invalid input; provider-side problems degrade into fewer results.
	Analyze(ctx context.Context, req domain.DisruptionRequest) (*domain.AlternativesResult, error)
}

// AnalyzerConfig contains configuration options for the analyzer.
type AnalyzerConfig struct {
	// AnalyzeTimeout bounds the whole analysis
	AnalyzeTimeout time.Duration

	// PerDateTimeout bounds each per-date provider call
	PerDateTimeout time.Duration

	// AlternateOffsets is the alternate-date window in days relative to
	// the original date (default: two days earlier)
	AlternateOffsets []int

	// MaxOffersPerDate caps offers requested per candidate date
	MaxOffersPerDate int
}

// DefaultAnalyzerConfig returns the default analyzer configuration.
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		AnalyzeTimeout:   DefaultAnalyzeTimeout,
		PerDateTimeout:   DefaultPerDateTimeout,
		AlternateOffsets: DefaultAlternateOffsets,
		MaxOffersPerDate: DefaultMaxOffersPerDate,
	}
}

// disruptionAnalyzer implements DisruptionAnalyzer using the
// Scatter-Gather pattern over the candidate date window.
type disruptionAnalyzer struct {
	provider domain.FlightProvider
	cfg      AnalyzerConfig
	metrics  *metrics.Metrics
	log      *logger.Logger
}

// NewDisruptionAnalyzer creates a DisruptionAnalyzer backed by the given
// provider. If config is nil, defaults are used; m may be nil.
func NewDisruptionAnalyzer(provider domain.FlightProvider, config *AnalyzerConfig, m *metrics.Metrics, log *logger.Logger) DisruptionAnalyzer {
	cfg := DefaultAnalyzerConfig()
	if config != nil {
		if config.AnalyzeTimeout > 0 {
			cfg.AnalyzeTimeout = config.AnalyzeTimeout
		}
		if config.PerDateTimeout > 0 {
			cfg.PerDateTimeout = config.PerDateTimeout
		}
		if config.AlternateOffsets != nil {
			cfg.AlternateOffsets = config.AlternateOffsets
		}
		if config.MaxOffersPerDate > 0 {
			cfg.MaxOffersPerDate = config.MaxOffersPerDate
		}
	}
	if log == nil {
		log = logger.Nop()
	}

	return &disruptionAnalyzer{
		provider: provider,
		cfg:      cfg,
		metrics:  m,
		log:      log,
	}
}

// dateResult holds the outcome of one per-date provider call.
type dateResult struct {
	Candidate DateCandidate
	Offers    []domain.FlightOffer
	Err       error
}

// Analyze implements DisruptionAnalyzer.Analyze.
func (a *disruptionAnalyzer) Analyze(ctx context.Context, req domain.DisruptionRequest) (*domain.AlternativesResult, error) {
	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	originalDate, err := req.ParsedDate()
	if err != nil {
		return nil, domain.WrapInvalidRequest("original_date is not a valid date: %s", req.OriginalDate)
	}

	window := BuildDateWindow(originalDate, a.cfg.AlternateOffsets)

	ctx, cancel := context.WithTimeout(ctx, a.cfg.AnalyzeTimeout)
	defer cancel()

	// Scatter: one goroutine per candidate date. Failures are captured
	// per result and never cancel sibling searches; a single date's
	// failure must not abort the whole analysis.
	resultsChan := make(chan dateResult, len(window))
	var wg sync.WaitGroup
	for _, candidate := range window {
		wg.Add(1)
		go func(c DateCandidate) {
			defer wg.Done()
			a.searchDate(ctx, req, c, resultsChan)
		}(candidate)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	// Gather: bucket assignment is keyed by the candidate that produced
	// the result, so arrival order does not matter.
	buckets := map[domain.BucketLabel][]domain.FlightOffer{
		domain.BucketSameDay:       {},
		domain.BucketNextDay:       {},
		domain.BucketAlternateDate: {},
	}
	for result := range resultsChan {
		if result.Err != nil {
			a.log.Warn().
				Err(result.Err).
				Str("date", result.Candidate.DateString()).
				Str("bucket", string(result.Candidate.Bucket)).
				Msg("Candidate date search failed, continuing with remaining dates")
			continue
		}
		buckets[result.Candidate.Bucket] = append(buckets[result.Candidate.Bucket], result.Offers...)
	}

	ranked := RankBuckets(buckets)
	total, priceRange := Summarize(ranked)
	a.metrics.ObserveAlternatives(total)

	a.log.Info().
		Str("original_flight", req.OriginalFlight).
		Str("route", req.Origin+"-"+req.Destination).
		Int("total_alternatives", total).
		Msg("Disruption analysis complete")

	return &domain.AlternativesResult{
		OriginalFlight:    req.OriginalFlight,
		Origin:            req.Origin,
		Destination:       req.Destination,
		OriginalDate:      req.OriginalDate,
		DisruptionReason:  req.DisruptionReason,
		Buckets:           ranked,
		PriceRange:        priceRange,
		TotalAlternatives: total,
	}, nil
}

// searchDate queries the provider for one candidate date with its own
// timeout and panic recovery, so a misbehaving provider cannot take down
// the sibling searches.
func (a *disruptionAnalyzer) searchDate(ctx context.Context, req domain.DisruptionRequest, candidate DateCandidate, results chan<- dateResult) {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.PerDateTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			results <- dateResult{
				Candidate: candidate,
				Err:       fmt.Errorf("provider panic: %v", r),
			}
		}
	}()

	query := domain.SearchQuery{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: candidate.DateString(),
		Adults:        1,
		MaxResults:    a.cfg.MaxOffersPerDate,
	}

	offers, err := a.provider.Search(ctx, query)
	if err != nil {
		results <- dateResult{Candidate: candidate, Err: err}
		return
	}

	// Drop offers that fail the entity invariants; a partially parseable
	// response still contributes its well-formed offers.
	kept := make([]domain.FlightOffer, 0, len(offers))
	for _, offer := range offers {
		if !offer.Valid() {
			a.log.Warn().
				Str("offer_id", offer.ID).
				Str("date", candidate.DateString()).
				Msg("Skipping malformed offer")
			continue
		}
		kept = append(kept, offer)
	}

	results <- dateResult{Candidate: candidate, Offers: kept}
}

// Ensure disruptionAnalyzer implements DisruptionAnalyzer at compile time.
var _ DisruptionAnalyzer = (*disruptionAnalyzer)(nil)
