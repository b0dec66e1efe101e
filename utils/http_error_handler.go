package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler renders errors that escape a handler, including echo's own
// routing, body-limit and recovered-panic errors.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	he, ok := err.(*echo.HTTPError)
	if ok {
		if he.Code >= http.StatusInternalServerError {
			_ = InternalError(c, err)
			return
		}

		message := http.StatusText(he.Code)
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
		_ = c.String(he.Code, message)
		return
	}

	_ = HandleError(c, err)
}
