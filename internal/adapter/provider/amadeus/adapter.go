package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/autorescue/flight-disruption-service/internal/adapter/secrets"
	"github.com/autorescue/flight-disruption-service/internal/domain"
	"github.com/autorescue/flight-disruption-service/internal/infrastructure/logger"
	"github.com/autorescue/flight-disruption-service/internal/infrastructure/retry"
	"github.com/autorescue/flight-disruption-service/internal/infrastructure/timeutil"
	"github.com/autorescue/flight-disruption-service/internal/metrics"
	"github.com/autorescue/flight-disruption-service/internal/ratelimit"
)

// Adapter implements domain.FlightProvider and domain.OfferPricer on top
// of the Amadeus self-service APIs.
type Adapter struct {
	client   *client
	limiter  *ratelimit.ProviderLimiter
	metrics  *metrics.Metrics
	log      *logger.Logger
	currency string
	retryCfg retry.Config
}

// Config holds the adapter's construction options. Zero values fall back
// to test-environment defaults.
type Config struct {
	// BaseURL is the API host, defaulting to the Amadeus test environment.
	BaseURL string

	// CurrencyCode is requested on searches so offers price consistently.
	CurrencyCode string

	// HTTPClient overrides the default HTTP client, mainly for tests.
	HTTPClient *http.Client

	// Clock overrides the token-expiry clock, mainly for tests.
	Clock timeutil.Clock
}

// New creates an Amadeus adapter. The credential supplier is required;
// limiter, metrics and logger may be nil.
func New(creds secrets.CredentialSupplier, limiter *ratelimit.ProviderLimiter, m *metrics.Metrics, log *logger.Logger, cfg Config) *Adapter {
	if log == nil {
		log = logger.Nop()
	}
	currency := cfg.CurrencyCode
	if currency == "" {
		currency = "USD"
	}
	return &Adapter{
		client:   newClient(cfg.BaseURL, cfg.HTTPClient, creds, cfg.Clock),
		limiter:  limiter,
		metrics:  m,
		log:      log.WithProvider(ProviderName),
		currency: currency,
		retryCfg: retry.ProviderConfig.WithRetryIf(domain.IsRetryable),
	}
}

// Name returns the provider identifier used in logs and metrics.
func (a *Adapter) Name() string {
	return ProviderName
}

// Search queries the Flight Offers Search API for one date and returns
// normalized offers. Individual malformed offers are logged and dropped;
// the search fails only when the API call itself fails.
func (a *Adapter) Search(ctx context.Context, query domain.SearchQuery) ([]domain.FlightOffer, error) {
	query.SetDefaults()

	if err := a.wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{
		"originLocationCode":      {query.Origin},
		"destinationLocationCode": {query.Destination},
		"departureDate":           {query.DepartureDate},
		"adults":                  {strconv.Itoa(query.Adults)},
		"max":                     {strconv.Itoa(query.MaxResults)},
		"currencyCode":            {a.currency},
	}

	body, err := retry.DoWithResult(ctx, func() ([]byte, error) {
		payload, callErr := a.client.get(ctx, "/v2/shopping/flight-offers", params)
		a.metrics.ObserveProviderCall(ProviderName, callErr)
		return payload, callErr
	}, a.retryCfg)
	if err != nil {
		a.log.Error().
			Err(err).
			Str("origin", query.Origin).
			Str("destination", query.Destination).
			Str("departure_date", query.DepartureDate).
			Msg("Flight offers search failed")
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("decode search response: %w", err))
	}

	offers := make([]domain.FlightOffer, 0, len(resp.Data))
	for _, payload := range resp.Data {
		offer, err := normalizeOffer(payload)
		if err != nil {
			a.log.Warn().
				Err(err).
				Str("offer_id", payload.ID).
				Msg("Skipping malformed offer")
			continue
		}
		offers = append(offers, offer)
	}

	a.log.Debug().
		Str("departure_date", query.DepartureDate).
		Int("offer_count", len(offers)).
		Msg("Flight offers search completed")

	return offers, nil
}

// Price confirms the current price of a previously searched offer via the
// Flight Offers Pricing API. The offer document is forwarded unmodified;
// Amadeus requires the original payload, and the method-override header,
// because the endpoint is semantically a GET with a body.
func (a *Adapter) Price(ctx context.Context, offer json.RawMessage) (*domain.PricedOffer, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}

	reqBody, err := json.Marshal(pricingRequest{
		Data: pricingRequestData{
			Type:         "flight-offers-pricing",
			FlightOffers: []json.RawMessage{offer},
		},
	})
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("encode pricing request: %w", err))
	}

	headers := map[string]string{"X-HTTP-Method-Override": "GET"}

	body, err := retry.DoWithResult(ctx, func() ([]byte, error) {
		payload, callErr := a.client.post(ctx, "/v1/shopping/flight-offers/pricing", reqBody, headers)
		a.metrics.ObserveProviderCall(ProviderName, callErr)
		return payload, callErr
	}, a.retryCfg)
	if err != nil {
		a.log.Error().Err(err).Msg("Flight offer pricing failed")
		return nil, err
	}

	var resp pricingResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("decode pricing response: %w", err))
	}
	if len(resp.Data.FlightOffers) == 0 {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("pricing response contains no offers"))
	}

	confirmed := resp.Data.FlightOffers[0]
	raw, err := json.Marshal(confirmed)
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("re-encode priced offer: %w", err))
	}

	priced, err := normalizePricedOffer(confirmed, raw)
	if err != nil {
		return nil, err
	}

	a.log.Debug().
		Str("offer_id", priced.OfferID).
		Str("total", priced.Pricing.Total).
		Msg("Offer price confirmed")

	return priced, nil
}

func (a *Adapter) wait(ctx context.Context) error {
	if a.limiter == nil {
		return nil
	}
	if err := a.limiter.Wait(ctx, ProviderName); err != nil {
		return domain.NewProviderError(ProviderName, fmt.Errorf("rate limit wait: %w", err))
	}
	return nil
}

var (
	_ domain.FlightProvider = (*Adapter)(nil)
	_ domain.OfferPricer    = (*Adapter)(nil)
)
