package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dealerhub/dealer-portal/internal/core/domain"
	"github.com/dealerhub/dealer-portal/internal/pkg/cookie"
)

type recordingAudit struct {
	events []domain.AuditEvent
}

func (r *recordingAudit) Record(ev domain.AuditEvent) {
	r.events = append(r.events, ev)
}

func guardedRequest(t *testing.T, sessions *fakeSessions, audit *recordingAudit, path, sid string, required domain.Role, next echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e, req, rec := request(t, path, sid)
	c := e.NewContext(req, rec)

	guard := NewRouteGuard(sessions, audit)
	h := Resolver(sessions, testSecret)(guard.Require(required)(next))
	return rec, h(c)
}

func authenticated(role domain.Role) domain.SessionState {
	return domain.SessionState{
		Authenticated: true,
		Role:          role,
		User:          &domain.Session{Token: "tok", UserID: "1", Username: "sally", Role: role},
	}
}

func TestGuard_AnonymousRedirectsWithIntent(t *testing.T) {
	sessions := newFakeSessions()
	rec, err := guardedRequest(t, sessions, nil, "/salesperson/cars", "", domain.RoleSalesperson, func(c echo.Context) error {
		t.Fatal("handler must not run")
		return nil
	})
	if err != nil {
		t.Fatalf("guard: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if loc != "/login?redirect="+url.QueryEscape("/salesperson/cars") {
		t.Fatalf("Location = %q", loc)
	}
}

func TestGuard_WrongRoleDeniedWithRecovery(t *testing.T) {
	sessions := newFakeSessions()
	sessions.states["sid-1"] = authenticated(domain.RoleCustomer)
	audit := &recordingAudit{}

	rec, err := guardedRequest(t, sessions, audit, "/salesperson/cars", "sid-1", domain.RoleSalesperson, func(c echo.Context) error {
		t.Fatal("handler must not run")
		return nil
	})
	if err != nil {
		t.Fatalf("guard: %v", err)
	}

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "access denied" || body["recover"] != DashboardPath {
		t.Fatalf("unexpected denial payload %+v", body)
	}
	if len(audit.events) != 1 || audit.events[0].Action != domain.AuditAccessDenied {
		t.Fatalf("expected access_denied audit event, got %+v", audit.events)
	}
}

func TestGuard_MatchingRolePasses(t *testing.T) {
	sessions := newFakeSessions()
	sessions.states["sid-1"] = authenticated(domain.RoleMechanic)

	ran := false
	rec, err := guardedRequest(t, sessions, nil, "/mechanic/services", "sid-1", domain.RoleMechanic, func(c echo.Context) error {
		ran = true
		return c.NoContent(http.StatusOK)
	})
	if err != nil {
		t.Fatalf("guard: %v", err)
	}
	if !ran || rec.Code != http.StatusOK {
		t.Fatalf("expected handler to run, ran=%v status=%d", ran, rec.Code)
	}
}

func TestGuard_AnyAuthenticatedRoleReachesNeutralRoute(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleSalesperson, domain.RoleMechanic, domain.RoleCustomer, domain.RoleUnknown} {
		sessions := newFakeSessions()
		sessions.states["sid-1"] = authenticated(role)

		ran := false
		_, err := guardedRequest(t, sessions, nil, "/dashboard", "sid-1", domain.RoleUnknown, func(c echo.Context) error {
			ran = true
			return c.NoContent(http.StatusOK)
		})
		if err != nil {
			t.Fatalf("role %q: %v", role, err)
		}
		if !ran {
			t.Fatalf("role %q blocked from neutral route", role)
		}
	}
}

func TestGuard_PendingStateRendersPlaceholder(t *testing.T) {
	// Guard without resolver: the state reads as initializing. It must not
	// redirect, the attempted destination would be lost.
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	guard := NewRouteGuard(newFakeSessions(), nil)
	err := guard.Authenticated()(func(c echo.Context) error {
		t.Fatal("handler must not run")
		return nil
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %v", err)
	}
}

func TestGuard_TokenRejectionPurgesSession(t *testing.T) {
	sessions := newFakeSessions()
	sessions.states["sid-1"] = authenticated(domain.RoleSalesperson)

	rec, err := guardedRequest(t, sessions, nil, "/salesperson/parts", "sid-1", domain.RoleSalesperson, func(c echo.Context) error {
		return domain.ErrTokenRejected
	})
	if err != nil {
		t.Fatalf("guard: %v", err)
	}

	if len(sessions.invalidated) != 1 || sessions.invalidated[0] != "sid-1" {
		t.Fatalf("expected sid-1 invalidated, got %v", sessions.invalidated)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if rec.Header().Get("Location") != "/login?redirect="+url.QueryEscape("/salesperson/parts") {
		t.Fatalf("Location = %q", rec.Header().Get("Location"))
	}
}

func TestGuard_ExpiredCookieIsAnonymous(t *testing.T) {
	sessions := newFakeSessions()
	sessions.states["sid-1"] = authenticated(domain.RoleCustomer)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/customer/invoices", nil)
	ck, _ := cookie.Issue("sid-1", testSecret, -time.Minute)
	req.AddCookie(ck)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	guard := NewRouteGuard(sessions, nil)
	h := Resolver(sessions, testSecret)(guard.Require(domain.RoleCustomer)(func(c echo.Context) error {
		t.Fatal("handler must not run")
		return nil
	}))
	if err := h(c); err != nil {
		t.Fatalf("guard: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302 to login", rec.Code)
	}
}

func TestLoginRedirect_EscapesPath(t *testing.T) {
	got := LoginRedirect("/salesperson/cars/search")
	if got != "/login?redirect=%2Fsalesperson%2Fcars%2Fsearch" {
		t.Fatalf("LoginRedirect = %q", got)
	}
}
