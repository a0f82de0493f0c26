package http

import (
	"context"
	"errors"
	"io"

	"encoding/json"

	"github.com/labstack/echo/v4"

	"github.com/autorescue/flight-disruption-service/internal/adapter/http/response"
	"github.com/autorescue/flight-disruption-service/internal/domain"
	"github.com/autorescue/flight-disruption-service/internal/usecase"
)

// DisruptionHandler handles HTTP requests for disruption analysis, flight
// search, offer pricing, and booking.
type DisruptionHandler struct {
	analyzer usecase.DisruptionAnalyzer
	search   usecase.FlightSearchUseCase
	pricing  usecase.OfferPricingUseCase
	booking  usecase.BookingUseCase
}

// NewDisruptionHandler creates a DisruptionHandler with the given use cases.
func NewDisruptionHandler(analyzer usecase.DisruptionAnalyzer, search usecase.FlightSearchUseCase, pricing usecase.OfferPricingUseCase, booking usecase.BookingUseCase) *DisruptionHandler {
	return &DisruptionHandler{
		analyzer: analyzer,
		search:   search,
		pricing:  pricing,
		booking:  booking,
	}
}

// AnalyzeDisruption handles POST /api/v1/disruptions/analyze
//
// @Summary Analyze a flight disruption
// @Description Searches rebooking alternatives across a window of candidate dates and returns them bucketed by priority
// @Tags disruptions
// @Accept json
// @Produce json
// @Param request body AnalyzeDisruptionRequest true "Disrupted flight details"
// @Success 200 {object} domain.AlternativesResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/disruptions/analyze [post]
func (h *DisruptionHandler) AnalyzeDisruption(c echo.Context) error {
	var req AnalyzeDisruptionRequest
	if err := bindEnveloped(c, &req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.analyzer.Analyze(c.Request().Context(), req.ToDomain())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, result)
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search flights for a single date
// @Description Searches the flight provider for offers on one departure date
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria"
// @Success 200 {object} usecase.SearchResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Provider unavailable"
// @Router /api/v1/flights/search [post]
func (h *DisruptionHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := bindEnveloped(c, &req); err != nil {
		return response.InvalidRequestBody(c)
	}

	result, err := h.search.Search(c.Request().Context(), req.ToDomain())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, result)
}

// PriceOffer handles POST /api/v1/offers/price
//
// @Summary Price a flight offer
// @Description Confirms pricing for a previously searched flight offer
// @Tags offers
// @Accept json
// @Produce json
// @Param request body object true "Flight offer, bare or wrapped in flight_offer"
// @Success 200 {object} domain.PricedOffer
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Provider unavailable"
// @Router /api/v1/offers/price [post]
func (h *DisruptionHandler) PriceOffer(c echo.Context) error {
	var req PriceOfferRequest
	if err := bindEnveloped(c, &req); err != nil {
		return response.InvalidRequestBody(c)
	}

	priced, err := h.pricing.PriceOffer(c.Request().Context(), req.Offer)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, priced)
}

// BookFlight handles POST /api/v1/bookings
//
// @Summary Book a priced flight offer
// @Description Creates a booking confirmation for a priced offer, using the passenger profile on file
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body object true "Priced flight offer, bare or wrapped in flight_offer"
// @Success 201 {object} domain.BookingConfirmation
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/bookings [post]
func (h *DisruptionHandler) BookFlight(c echo.Context) error {
	var req BookFlightRequest
	if err := bindEnveloped(c, &req); err != nil {
		return response.InvalidRequestBody(c)
	}

	confirmation, err := h.booking.Book(c.Request().Context(), req.Offer)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Created(c, confirmation)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *DisruptionHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// bindEnveloped decodes the request body into v, transparently unwrapping
// the upstream gateway envelope when present.
func bindEnveloped(c echo.Context, v interface{}) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return errors.New("empty request body")
	}
	return json.Unmarshal(UnwrapEnvelope(body), v)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *DisruptionHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *DisruptionHandler) handleError(c echo.Context, err error) error {
	if domain.IsInvalidRequest(err) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	var providerErr *domain.ProviderError
	if errors.As(err, &providerErr) {
		return response.ServiceUnavailable(c)
	}
	if errors.Is(err, domain.ErrProviderUnavailable) || errors.Is(err, domain.ErrProviderTimeout) {
		return response.ServiceUnavailable(c)
	}

	return response.InternalServerError(c)
}
