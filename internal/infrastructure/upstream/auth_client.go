package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dealerhub/dealer-portal/internal/core/domain"
)

// loginFallback is shown when the backend rejects a login without giving a
// reason of its own.
const loginFallback = "Login failed. Please check your credentials."

// AuthClient implements ports.AuthGateway against POST /auth/login.
type AuthClient struct {
	c *Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type loginResponse struct {
	Token    string          `json:"token"`
	Role     string          `json:"role"`
	UserID   json.RawMessage `json:"userId"` // number or string, backend-dependent
	Username string          `json:"username"`
}

func (a *AuthClient) LoginStaff(ctx context.Context, username, password string) (*domain.Session, error) {
	return a.login(ctx, loginRequest{Username: username, Password: password})
}

// LoginCustomer sends the customer's name in the username field alongside a
// phone instead of a password; that is how the backend tells the two login
// variants apart.
func (a *AuthClient) LoginCustomer(ctx context.Context, name, phone string) (*domain.Session, error) {
	return a.login(ctx, loginRequest{Username: name, Phone: phone})
}

func (a *AuthClient) login(ctx context.Context, req loginRequest) (*domain.Session, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode login request: %w", err)
	}

	payload, err := a.c.Post(ctx, "", "/auth/login", body)
	if err != nil {
		var ue *domain.UpstreamError
		if errors.As(err, &ue) {
			msg := ue.Message
			if msg == "" {
				msg = http.StatusText(ue.Status)
			}
			if msg == "" {
				msg = loginFallback
			}
			return nil, &domain.AuthenticationError{Message: msg}
		}
		return nil, err
	}

	var resp loginResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("%w: malformed login response", domain.ErrUpstreamUnavailable)
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("%w: login response missing token", domain.ErrUpstreamUnavailable)
	}

	return &domain.Session{
		Token:    resp.Token,
		UserID:   strings.Trim(string(resp.UserID), `"`),
		Username: resp.Username,
		Role:     domain.ParseRole(resp.Role),
	}, nil
}
