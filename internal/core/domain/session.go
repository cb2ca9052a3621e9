package domain

import "errors"

var ErrUpstreamUnavailable = errors.New("dealership backend unavailable")
var ErrTokenRejected = errors.New("session token rejected by backend")

// AuthenticationError is a login rejected by the dealership backend. The
// message is the server-provided reason and is surfaced to the user verbatim.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// UpstreamError carries a non-2xx resource response through to the edge so
// the error handler can mirror the upstream status.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// Session is the authenticated identity bound to one browser session.
// A session is either fully present or fully absent; the store never exposes
// a partially written one. Token presence is the sole authority for
// "is authenticated" — Role may still be RoleUnknown for an authenticated
// user the portal does not recognize.
type Session struct {
	Token    string `json:"-"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Complete reports whether the session satisfies the all-or-nothing
// invariant: token and identity fields populated.
func (s *Session) Complete() bool {
	return s != nil && s.Token != "" && s.UserID != "" && s.Username != ""
}

// SessionState is the per-request view of the session, consumed by the route
// guard and the handlers. Initializing is true only before the session
// resolver has run; the guard must not redirect while it is set.
type SessionState struct {
	Initializing  bool
	Authenticated bool
	Role          Role
	User          *Session
}
