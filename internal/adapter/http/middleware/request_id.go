// Package middleware carries the cross-cutting HTTP concerns of the
// disruption API: request correlation, structured request logging, and
// panic recovery. Setup wires them in the order the handlers expect.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader carries the correlation ID between the airline's
	// gateway and this service.
	RequestIDHeader = "X-Request-ID"

	// requestIDKey stores the correlation ID in the echo context.
	requestIDKey = "request_id"
)

// RequestID propagates the caller's X-Request-ID, or mints a UUID when
// the header is absent. Disruption events fan out across several
// systems, so every analyze call must stay traceable end to end; the ID
// is echoed back in the response header and attached to every log line.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Request().Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.New().String()
			}

			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(RequestIDHeader, reqID)

			return next(c)
		}
	}
}

// GetRequestID returns the correlation ID for the current request, or
// an empty string outside the middleware chain.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDKey).(string); ok {
		return id
	}
	return ""
}
