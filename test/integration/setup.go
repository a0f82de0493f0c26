// Package integration provides helpers and integration tests for the
// disruption-alternatives service. Integration tests verify that components
// work together correctly, including HTTP handlers, use cases, and mock
// providers.
package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/autorescue/flight-disruption-service/internal/adapter/http"
	"github.com/autorescue/flight-disruption-service/internal/cache"
	"github.com/autorescue/flight-disruption-service/internal/domain"
	"github.com/autorescue/flight-disruption-service/internal/infrastructure/logger"
	"github.com/autorescue/flight-disruption-service/internal/infrastructure/timeutil"
	"github.com/autorescue/flight-disruption-service/internal/usecase"
	"github.com/autorescue/flight-disruption-service/test/mock"
)

// BookedPassenger is the traveler profile integration-test bookings are
// made for, and BookingTime is the frozen instant references derive from.
var (
	BookedPassenger = domain.PassengerInfo{
		FirstName: "Jane",
		LastName:  "Smith",
		Email:     "jane.smith@example.com",
		Phone:     "+1-555-0199",
	}
	BookingTime = "2025-11-15T10:30:00Z"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.DisruptionHandler
}

// NewTestServer creates a test server wiring the full handler and use-case
// stack over the given provider and pricer.
func NewTestServer(provider domain.FlightProvider, pricer domain.OfferPricer) *TestServer {
	return NewTestServerWithConfig(provider, pricer, nil)
}

// NewTestServerWithConfig creates a test server with a custom analyzer
// configuration. A nil config uses short test-friendly timeouts.
func NewTestServerWithConfig(provider domain.FlightProvider, pricer domain.OfferPricer, cfg *usecase.AnalyzerConfig) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	if cfg == nil {
		cfg = &usecase.AnalyzerConfig{
			AnalyzeTimeout: 2 * time.Second,
			PerDateTimeout: 1 * time.Second,
		}
	}

	log := logger.NewWithOutput(logger.Config{Level: "error", Format: "json"}, io.Discard)

	analyzer := usecase.NewDisruptionAnalyzer(provider, cfg, nil, log)
	search := usecase.NewFlightSearchUseCase(provider, cache.NewNoOpCache(), 1*time.Second, log)
	pricing := usecase.NewOfferPricingUseCase(pricer, 1*time.Second, log)
	booking := usecase.NewBookingUseCase(
		mock.NewPassenger(BookedPassenger),
		timeutil.NewMockClockFromString(BookingTime),
		1*time.Second,
		log,
	)

	handler := httpAdapter.NewDisruptionHandler(analyzer, search, pricing, booking)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// AnalyzeRequest posts a disruption-analysis request.
func (ts *TestServer) AnalyzeRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/disruptions/analyze",
		Body:   body,
	})
}

// SearchRequest posts a single-date flight search request.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/search",
		Body:   body,
	})
}

// PriceRequest posts an offer-pricing request.
func (ts *TestServer) PriceRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/offers/price",
		Body:   body,
	})
}

// BookingRequest posts a flight-booking request.
func (ts *TestServer) BookingRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/bookings",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseAlternatives parses the response body as an AlternativesResult.
func (r *Response) ParseAlternatives() (*domain.AlternativesResult, error) {
	var resp domain.AlternativesResult
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseSearchResult parses the response body as a SearchResult.
func (r *Response) ParseSearchResult() (*usecase.SearchResult, error) {
	var resp usecase.SearchResult
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// AnalyzeRequestBody is a helper struct for building analyze request bodies.
type AnalyzeRequestBody struct {
	OriginalFlight   string `json:"original_flight"`
	Origin           string `json:"origin"`
	Destination      string `json:"destination"`
	OriginalDate     string `json:"original_date"`
	DisruptionReason string `json:"disruption_reason,omitempty"`
}

// DefaultAnalyzeRequest returns a valid analyze request body for testing.
// It uses a fixed original date so bucket dates are deterministic.
func DefaultAnalyzeRequest() AnalyzeRequestBody {
	return AnalyzeRequestBody{
		OriginalFlight:   "AA123",
		Origin:           "JFK",
		Destination:      "LAX",
		OriginalDate:     OriginalDate,
		DisruptionReason: "cancellation",
	}
}

// Candidate dates derived from OriginalDate with the default offsets.
const (
	OriginalDate  = "2025-11-15"
	NextDate      = "2025-11-16"
	AlternateDate = "2025-11-13"
)
