package domain

import "time"

// AuditAction classifies an entry in the authentication audit trail.
type AuditAction string

const (
	AuditLoginSucceeded AuditAction = "login_succeeded"
	AuditLoginFailed    AuditAction = "login_failed"
	AuditLogout         AuditAction = "logout"
	AuditAccessDenied   AuditAction = "access_denied"
	AuditTokenRejected  AuditAction = "token_rejected"
)

// AuditEvent records a single authentication-related occurrence.
type AuditEvent struct {
	SessionID string
	Username  string
	Role      Role
	Action    AuditAction
	Path      string
	At        time.Time
}
