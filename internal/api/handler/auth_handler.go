package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dealerhub/dealer-portal/internal/api/middleware"
	"github.com/dealerhub/dealer-portal/internal/core/domain"
	"github.com/dealerhub/dealer-portal/internal/core/ports"
	"github.com/dealerhub/dealer-portal/internal/pkg/cookie"
)

// AuthHandler drives login and logout. Every successful login mints a fresh
// session ID, so a new login always replaces the whole session and a
// pre-login cookie can never be fixated onto an authenticated session.
type AuthHandler struct {
	sessions ports.SessionService
	secret   string
	ttl      time.Duration
}

func NewAuthHandler(sessions ports.SessionService, secret string, ttl time.Duration) *AuthHandler {
	return &AuthHandler{sessions: sessions, secret: secret, ttl: ttl}
}

// loginRequest covers both credential variants. Staff send username and
// password; customers send name and phone (no password — the backend treats
// the phone as the shared secret, a deliberately weak scheme the portal
// preserves as-is).
type loginRequest struct {
	Username string `json:"username" validate:"required_without=Phone"`
	Password string `json:"password" validate:"required_without=Phone"`
	Name     string `json:"name"     validate:"required_with=Phone"`
	Phone    string `json:"phone"    validate:"omitempty,min=7,max=20"`
}

func (r loginRequest) isCustomer() bool {
	return r.Phone != ""
}

type loginResponse struct {
	User     *domain.Session `json:"user"`
	Redirect string          `json:"redirect"`
}

type loginInfoResponse struct {
	Message  string   `json:"message"`
	Methods  []string `json:"methods"`
	Redirect string   `json:"redirect"`
}

// LoginEntry describes the login entry point reached by guard redirects.
//
// @Summary      Login entry point
// @Tags         auth
// @Produce      json
// @Param        redirect  query     string  false  "Path to return to after login"
// @Success      200       {object}  loginInfoResponse
// @Router       /login [get]
func (h *AuthHandler) LoginEntry(c echo.Context) error {
	return c.JSON(http.StatusOK, loginInfoResponse{
		Message:  "authenticate via POST /login",
		Methods:  []string{"staff", "customer"},
		Redirect: safeRedirect(c.QueryParam("redirect")),
	})
}

// Login authenticates against the dealership backend and opens a session.
//
// @Summary      Login (staff or customer)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        redirect  query     string        false  "Path to return to after login"
// @Param        body      body      loginRequest  true   "Credentials"
// @Success      200       {object}  loginResponse
// @Failure      400       {object}  map[string]string
// @Failure      401       {object}  map[string]string
// @Failure      502       {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	sid := uuid.NewString()

	var sess *domain.Session
	var err error
	if req.isCustomer() {
		sess, err = h.sessions.LoginCustomer(ctx, sid, req.Name, req.Phone)
	} else {
		sess, err = h.sessions.LoginStaff(ctx, sid, req.Username, req.Password)
	}
	if err != nil {
		return err
	}

	// The old session, if any, is dead the moment the new one exists.
	if old := middleware.SessionID(c); old != "" && old != sid {
		_ = h.sessions.Logout(ctx, old)
	}

	ck, err := cookie.Issue(sid, h.secret, h.ttl)
	if err != nil {
		return err
	}
	c.SetCookie(ck)

	return c.JSON(http.StatusOK, loginResponse{
		User:     sess,
		Redirect: safeRedirect(c.QueryParam("redirect")),
	})
}

// Logout destroys the session and hard-redirects to the login entry point.
//
// @Summary      Logout
// @Tags         auth
// @Success      303  {string}  string  "redirect to /login"
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if sid := middleware.SessionID(c); sid != "" {
		if err := h.sessions.Logout(c.Request().Context(), sid); err != nil {
			return err
		}
	}
	c.SetCookie(cookie.Expire())
	return c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

// safeRedirect consumes the navigation intent, allowing only local paths.
// Anything else falls back to the dashboard root.
func safeRedirect(p string) string {
	if p == "" || !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return middleware.DashboardPath
	}
	return p
}
