// Package response holds the wire shapes and status helpers shared by
// the disruption API handlers. Successful calls return their payload
// directly; failures return a flat ErrorDetail so the airline's
// rebooking clients can branch on a stable machine-readable code.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail is the error body for every non-2xx API response.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details carries field-level problems on validation failures
	Details map[string]string `json:"details,omitempty"`
}

// Error codes returned by the API. Clients match on these, so they are
// part of the contract and must not change meaning.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeValidationError    = "validation_error"
	CodeServiceUnavailable = "service_unavailable"
	CodeTimeout            = "timeout"
	CodeInternalError      = "internal_error"
)

// Canned messages for the common failure modes.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgServiceUnavailable = "The flight provider is currently unavailable"
	MsgTimeout            = "Request timed out"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"
)

// OK writes the payload with a 200 status.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// Created writes the payload with a 201 status. Used by the booking
// endpoint, where a confirmation is a newly created resource.
func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

// HealthResponse is the body of the health probe.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health answers load balancer probes. It reports liveness only and
// deliberately does not reach out to the flight provider.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{Status: "ok"})
}
