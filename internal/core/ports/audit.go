package ports

import (
	"context"

	"github.com/dealerhub/dealer-portal/internal/core/domain"
)

// AuditSink accepts audit events for asynchronous recording. Record must not
// block the caller; an overloaded sink drops events rather than stalling a
// login.
type AuditSink interface {
	Record(event domain.AuditEvent)
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event domain.AuditEvent) error
}
