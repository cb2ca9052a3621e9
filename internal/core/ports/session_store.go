package ports

import (
	"context"

	"github.com/dealerhub/dealer-portal/internal/core/domain"
)

// SessionStore is the durable record of authenticated identities, keyed by
// session ID. Implementations must make Save atomic (no partial session ever
// observable), treat malformed persisted state as absent rather than failing,
// and keep Clear idempotent.
type SessionStore interface {
	// Save replaces the whole session in one write.
	Save(ctx context.Context, sid string, session domain.Session) error

	// Read returns the stored session, or (nil, nil) when no token is
	// present or the stored identity blob fails to parse.
	Read(ctx context.Context, sid string) (*domain.Session, error)

	// Clear removes every field of the session. Clearing an absent session
	// is a no-op.
	Clear(ctx context.Context, sid string) error

	// HasToken reports token presence without deserializing the identity.
	HasToken(ctx context.Context, sid string) (bool, error)
}
