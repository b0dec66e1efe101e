package middleware

import (
	"github.com/IfedayoAwe/webhook-callback-service/utils"
	"github.com/labstack/echo/v4"
)

const maxTraceIDLength = 128

// TraceIDMiddleware propagates X-Trace-ID, generating one when the caller
// did not send a usable value. The id is echoed on the response and carried
// on the request context so logs and outbound callbacks can use it.
func TraceIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(utils.TraceIDHeader)
			if !validTraceID(traceID) {
				traceID = utils.GenerateTraceID()
			}

			ctx := utils.WithTraceID(c.Request().Context(), traceID)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set(utils.TraceIDHeader, traceID)

			return next(c)
		}
	}
}

func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
