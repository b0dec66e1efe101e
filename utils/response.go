package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	MalformedJSONMessage = "Invalid or malformed JSON"
	InternalErrorMessage = "Internal server error"

	// BearerChallenge is sent with every 401 from the webhook endpoint.
	BearerChallenge = `Bearer realm="webhook"`
)

// HandleError maps a service error onto a plain-text response. Errors that
// are not one of the known client kinds become a generic 500 and are logged.
func HandleError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	var (
		baseErr error
		message string
	)

	if wrappedErr, ok := IsWrappedError(err); ok {
		message = wrappedErr.GetMessage()
		baseErr = wrappedErr.Unwrap()
	} else {
		message = err.Error()
		baseErr = err
	}

	switch {
	case errors.Is(baseErr, ErrNotFound):
		return NotFound(c, message)
	case errors.Is(baseErr, ErrDuplicatedKey):
		return Conflict(c, message)
	case errors.Is(baseErr, ErrBadRequest):
		return BadRequest(c, message)
	case errors.Is(baseErr, ErrNotAuthorized):
		return Unauthorized(c, message)
	case errors.Is(baseErr, ErrInternal):
		fallthrough
	default:
		return InternalError(c, err)
	}
}

func Success(c echo.Context, message string) error {
	return c.String(http.StatusOK, message)
}

func BadRequest(c echo.Context, message string) error {
	return clientError(c, http.StatusBadRequest, message)
}

func Unauthorized(c echo.Context, message string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, BearerChallenge)
	return clientError(c, http.StatusUnauthorized, message)
}

func NotFound(c echo.Context, message string) error {
	return clientError(c, http.StatusNotFound, message)
}

func Conflict(c echo.Context, message string) error {
	return clientError(c, http.StatusConflict, message)
}

func InternalError(c echo.Context, err error) error {
	logger := LoggerFromContext(c.Request().Context())
	logger.Error().Err(err).Str("path", c.Path()).Msg("unexpected error handling request")
	return c.String(http.StatusInternalServerError, InternalErrorMessage)
}

func clientError(c echo.Context, code int, message string) error {
	logger := LoggerFromContext(c.Request().Context())
	logger.Info().Int("status", code).Str("reason", message).Msg("request rejected")
	return c.String(code, message)
}
