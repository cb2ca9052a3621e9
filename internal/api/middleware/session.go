package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/dealerhub/dealer-portal/internal/core/domain"
	"github.com/dealerhub/dealer-portal/internal/core/ports"
	"github.com/dealerhub/dealer-portal/internal/pkg/cookie"
)

const (
	ctxKeyState     = "sessionState"
	ctxKeySessionID = "sessionID"
)

// Resolver turns the session cookie into a SessionState and injects it into
// the request context. An absent or invalid cookie resolves to an anonymous
// state; only a store failure becomes an error.
func Resolver(sessions ports.SessionService, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state := domain.SessionState{}

			if sid, ok := cookie.SessionID(c.Request(), secret); ok {
				resolved, err := sessions.Resolve(c.Request().Context(), sid)
				if err != nil {
					return err
				}
				state = resolved
				c.Set(ctxKeySessionID, sid)
			}

			c.Set(ctxKeyState, state)
			return next(c)
		}
	}
}

// State returns the session state resolved for this request. When the
// resolver has not run the state reads as initializing, which keeps the
// guard from redirecting on a half-configured route.
func State(c echo.Context) domain.SessionState {
	state, ok := c.Get(ctxKeyState).(domain.SessionState)
	if !ok {
		return domain.SessionState{Initializing: true}
	}
	return state
}

// SessionID returns the verified session ID for this request, or "".
func SessionID(c echo.Context) string {
	sid, _ := c.Get(ctxKeySessionID).(string)
	return sid
}
