package ports

import (
	"context"

	"github.com/dealerhub/dealer-portal/internal/core/domain"
)

// AuthGateway performs login calls against the dealership backend. It is the
// only component allowed to talk to the authentication endpoint; it never
// touches the session store itself.
type AuthGateway interface {
	// LoginStaff exchanges username/password credentials for a session.
	LoginStaff(ctx context.Context, username, password string) (*domain.Session, error)

	// LoginCustomer exchanges name/phone credentials for a session. The
	// backend recognizes a customer login by the presence of a phone field
	// instead of a password. The weak shared-secret scheme is the backend's
	// contract; the portal does not strengthen it.
	LoginCustomer(ctx context.Context, name, phone string) (*domain.Session, error)
}
