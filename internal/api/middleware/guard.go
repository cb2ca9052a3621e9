package middleware

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dealerhub/dealer-portal/internal/api/metrics"
	"github.com/dealerhub/dealer-portal/internal/core/domain"
	"github.com/dealerhub/dealer-portal/internal/core/ports"
	"github.com/dealerhub/dealer-portal/internal/core/service"
)

// DashboardPath is the neutral landing route and the single recovery action
// offered on an access-denied response.
const DashboardPath = "/dashboard"

// LoginPath is the login entry point unauthenticated navigation redirects to.
const LoginPath = "/login"

type accessDeniedResponse struct {
	Error   string `json:"error"`
	Recover string `json:"recover"`
}

// RouteGuard enforces authentication and role requirements on every
// navigation, preserving the attempted path across the login redirect.
type RouteGuard struct {
	sessions ports.SessionService
	audit    ports.AuditSink
}

// NewRouteGuard creates a RouteGuard. audit may be nil.
func NewRouteGuard(sessions ports.SessionService, audit ports.AuditSink) *RouteGuard {
	return &RouteGuard{sessions: sessions, audit: audit}
}

// Authenticated gates a role-neutral route: any authenticated session passes.
func (g *RouteGuard) Authenticated() echo.MiddlewareFunc {
	return g.Require(domain.RoleUnknown)
}

// Require gates a route on an authenticated session holding exactly the
// given role.
func (g *RouteGuard) Require(required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state := State(c)
			decision := service.Decide(state, required)
			metrics.GuardDecisionsTotal.WithLabelValues(decision.String()).Inc()

			switch decision {
			case service.DecisionPending:
				// Session state unresolved: render a neutral placeholder,
				// never a premature redirect.
				return echo.NewHTTPError(http.StatusServiceUnavailable, "session state not ready")

			case service.DecisionDeniedUnauthenticated:
				return c.Redirect(http.StatusFound, LoginRedirect(c.Request().URL.Path))

			case service.DecisionDeniedWrongRole:
				g.record(c, state, domain.AuditAccessDenied)
				return c.JSON(http.StatusForbidden, accessDeniedResponse{
					Error:   "access denied",
					Recover: DashboardPath,
				})

			default: // DecisionAllowed
				err := next(c)
				if errors.Is(err, domain.ErrTokenRejected) {
					return g.expelStaleSession(c)
				}
				return err
			}
		}
	}
}

// expelStaleSession clears a session whose token the backend rejected and
// sends the user back through login with their destination preserved.
func (g *RouteGuard) expelStaleSession(c echo.Context) error {
	path := c.Request().URL.Path
	if sid := SessionID(c); sid != "" {
		if err := g.sessions.Invalidate(c.Request().Context(), sid, path); err != nil {
			return err
		}
	}
	return c.Redirect(http.StatusFound, LoginRedirect(path))
}

func (g *RouteGuard) record(c echo.Context, state domain.SessionState, action domain.AuditAction) {
	if g.audit == nil {
		return
	}
	ev := domain.AuditEvent{
		SessionID: SessionID(c),
		Role:      state.Role,
		Action:    action,
		Path:      c.Request().URL.Path,
		At:        time.Now().UTC(),
	}
	if state.User != nil {
		ev.Username = state.User.Username
	}
	g.audit.Record(ev)
}

// LoginRedirect builds the login URL carrying the attempted path as the
// navigation intent.
func LoginRedirect(attempted string) string {
	return LoginPath + "?redirect=" + url.QueryEscape(attempted)
}
