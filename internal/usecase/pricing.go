package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/autorescue/flight-disruption-service/internal/domain"
	"github.com/autorescue/flight-disruption-service/internal/infrastructure/logger"
)

// DefaultPricingTimeout bounds a single offer-pricing call.
const DefaultPricingTimeout = 15 * time.Second

// OfferPricingUseCase defines the interface for offer re-pricing.
type OfferPricingUseCase interface {
	// PriceOffer confirms pricing for a previously searched offer. The
	// offer document is passed through opaquely to the pricer.
	PriceOffer(ctx context.Context, offer json.RawMessage) (*domain.PricedOffer, error)
}

type offerPricingUseCase struct {
	pricer  domain.OfferPricer
	timeout time.Duration
	log     *logger.Logger
}

// NewOfferPricingUseCase creates an OfferPricingUseCase backed by the
// given pricer.
func NewOfferPricingUseCase(pricer domain.OfferPricer, timeout time.Duration, log *logger.Logger) OfferPricingUseCase {
	if timeout <= 0 {
		timeout = DefaultPricingTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &offerPricingUseCase{
		pricer:  pricer,
		timeout: timeout,
		log:     log,
	}
}

// PriceOffer implements OfferPricingUseCase.PriceOffer.
func (uc *offerPricingUseCase) PriceOffer(ctx context.Context, offer json.RawMessage) (*domain.PricedOffer, error) {
	if len(offer) == 0 {
		return nil, domain.WrapInvalidRequest("flight_offer is required")
	}

	// The offer must at least be a JSON object carrying an id; anything
	// less cannot be re-priced.
	var probe struct {
		ID   string `json:"id"`
		Type string `json:"type"`
	}
	if err := json.Unmarshal(offer, &probe); err != nil {
		return nil, domain.WrapInvalidRequest("flight_offer is not a valid JSON object")
	}
	if probe.ID == "" {
		return nil, domain.WrapInvalidRequest("flight_offer must carry an id")
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	priced, err := uc.pricer.Price(ctx, offer)
	if err != nil {
		uc.log.Error().Err(err).Str("offer_id", probe.ID).Msg("Offer pricing failed")
		return nil, err
	}

	uc.log.Info().
		Str("offer_id", priced.OfferID).
		Str("grand_total", priced.Pricing.GrandTotal).
		Msg("Offer priced")

	return priced, nil
}

// Ensure offerPricingUseCase implements OfferPricingUseCase at compile time.
var _ OfferPricingUseCase = (*offerPricingUseCase)(nil)
