package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all disruption service API routes.
func RegisterRoutes(e *echo.Echo, h *DisruptionHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	api.POST("/disruptions/analyze", h.AnalyzeDisruption)
	api.POST("/flights/search", h.SearchFlights)
	api.POST("/offers/price", h.PriceOffer)
	api.POST("/bookings", h.BookFlight)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware on
// the API group, leaving the health endpoint unwrapped for load balancers.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *DisruptionHandler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	api.POST("/disruptions/analyze", h.AnalyzeDisruption)
	api.POST("/flights/search", h.SearchFlights)
	api.POST("/offers/price", h.PriceOffer)
	api.POST("/bookings", h.BookFlight)
}
