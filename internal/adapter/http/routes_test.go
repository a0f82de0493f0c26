package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/autorescue/flight-disruption-service/internal/domain"
	"github.com/autorescue/flight-disruption-service/internal/infrastructure/logger"
	"github.com/autorescue/flight-disruption-service/internal/usecase"
)

func TestRegisterRoutesWithMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := domain.NewMockFlightProvider(ctrl)
	provider.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return([]domain.FlightOffer{sampleOffer("1", "123.44")}, nil).
		AnyTimes()
	pricer := domain.NewMockOfferPricer(ctrl)

	analyzer := usecase.NewDisruptionAnalyzer(provider, &usecase.AnalyzerConfig{
		AnalyzeTimeout: 2 * time.Second,
		PerDateTimeout: time.Second,
	}, nil, logger.Nop())
	search := usecase.NewFlightSearchUseCase(provider, nil, time.Second, logger.Nop())
	pricing := usecase.NewOfferPricingUseCase(pricer, time.Second, logger.Nop())
	booking := usecase.NewBookingUseCase(stubPassengerSupplier{info: testPassenger}, nil, time.Second, logger.Nop())
	handler := NewDisruptionHandler(analyzer, search, pricing, booking)

	// The counting middleware must wrap the API group but not /health.
	var wrapped int
	counter := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			wrapped++
			return next(c)
		}
	}

	e := echo.New()
	RegisterRoutesWithMiddleware(e, handler, counter)

	rec := doPost(e, "/api/v1/flights/search",
		`{"origin":"JFK","destination":"LAX","departure_date":"2025-11-15"}`)
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, 1, wrapped)

	healthReq := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	healthRec := httptest.NewRecorder()
	e.ServeHTTP(healthRec, healthReq)
	assert.Equal(t, nethttp.StatusOK, healthRec.Code)
	assert.Equal(t, 1, wrapped, "health endpoint must stay unwrapped")
}
