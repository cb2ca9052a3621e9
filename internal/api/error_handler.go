package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dealerhub/dealer-portal/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Preserves backend-provided failure messages verbatim where the
//     contract requires it (login failures, proxied upstream errors).
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Login failures carry the message the backend chose, already resolved
	// against the fallback chain. It goes out untouched.
	var ae *domain.AuthenticationError
	if errors.As(err, &ae) {
		return http.StatusUnauthorized, ae.Message
	}

	// Proxied backend errors mirror the backend's own status and reason.
	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		msg := ue.Message
		if msg == "" {
			msg = http.StatusText(ue.Status)
		}
		return ue.Status, msg
	}

	switch {
	case errors.Is(err, domain.ErrTokenRejected):
		return http.StatusUnauthorized, "session expired"
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		log.Warn().Err(err).Str("path", c.Path()).Msg("backend unreachable")
		return http.StatusBadGateway, "dealership backend unavailable"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
