package ports

import (
	"context"

	"github.com/dealerhub/dealer-portal/internal/core/domain"
)

// SessionService is the single writer of the session store and the identity
// source for everything behind the router: the middleware resolves request
// state through it and the auth handler drives logins and logouts through it.
type SessionService interface {
	LoginStaff(ctx context.Context, sid, username, password string) (*domain.Session, error)
	LoginCustomer(ctx context.Context, sid, name, phone string) (*domain.Session, error)
	Logout(ctx context.Context, sid string) error

	// Resolve returns the current session state for a request. An empty or
	// unknown sid resolves to an unauthenticated state, never an error.
	Resolve(ctx context.Context, sid string) (domain.SessionState, error)

	// Invalidate drops a session whose token the backend stopped accepting.
	Invalidate(ctx context.Context, sid, path string) error
}
