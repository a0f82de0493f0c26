package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup installs the middleware stack on the echo instance. Order
// matters: RequestID runs first so the logger and the recovery handler
// can tag their output with the correlation ID, and Recover sits
// innermost so a panicking handler still produces a logged 500.
//
// Call Setup before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
}
