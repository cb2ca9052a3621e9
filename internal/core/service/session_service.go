package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/dealerhub/dealer-portal/internal/api/metrics"
	"github.com/dealerhub/dealer-portal/internal/core/domain"
	"github.com/dealerhub/dealer-portal/internal/core/ports"
)

type sessionService struct {
	store ports.SessionStore
	auth  ports.AuthGateway
	audit ports.AuditSink
	log   zerolog.Logger
}

// NewSessionService returns the session context implementation. It is the
// only writer of the session store: a failed login is rejected before any
// write happens, so the store can never hold a partially written session.
// audit may be nil when no trail is configured.
func NewSessionService(
	store ports.SessionStore,
	auth ports.AuthGateway,
	audit ports.AuditSink,
	log zerolog.Logger,
) ports.SessionService {
	return &sessionService{
		store: store,
		auth:  auth,
		audit: audit,
		log:   log,
	}
}

func (s *sessionService) LoginStaff(ctx context.Context, sid, username, password string) (*domain.Session, error) {
	sess, err := s.auth.LoginStaff(ctx, username, password)
	return s.finishLogin(ctx, sid, username, "staff", sess, err)
}

func (s *sessionService) LoginCustomer(ctx context.Context, sid, name, phone string) (*domain.Session, error) {
	sess, err := s.auth.LoginCustomer(ctx, name, phone)
	return s.finishLogin(ctx, sid, name, "customer", sess, err)
}

// finishLogin persists a successful login and records the attempt. On any
// failure the store is left untouched.
func (s *sessionService) finishLogin(ctx context.Context, sid, username, method string, sess *domain.Session, err error) (*domain.Session, error) {
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(method, "failure").Inc()
		s.record(domain.AuditEvent{
			SessionID: sid,
			Username:  username,
			Action:    domain.AuditLoginFailed,
			At:        time.Now().UTC(),
		})
		return nil, err
	}

	if !sess.Complete() {
		metrics.LoginAttemptsTotal.WithLabelValues(method, "failure").Inc()
		return nil, fmt.Errorf("%w: incomplete login response", domain.ErrUpstreamUnavailable)
	}

	if err := s.store.Save(ctx, sid, *sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	metrics.LoginAttemptsTotal.WithLabelValues(method, "success").Inc()
	s.record(domain.AuditEvent{
		SessionID: sid,
		Username:  sess.Username,
		Role:      sess.Role,
		Action:    domain.AuditLoginSucceeded,
		At:        time.Now().UTC(),
	})
	s.log.Info().Str("username", sess.Username).Str("role", string(sess.Role)).Msg("login succeeded")
	return sess, nil
}

func (s *sessionService) Logout(ctx context.Context, sid string) error {
	sess, err := s.store.Read(ctx, sid)
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}

	if err := s.store.Clear(ctx, sid); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	ev := domain.AuditEvent{SessionID: sid, Action: domain.AuditLogout, At: time.Now().UTC()}
	if sess != nil {
		ev.Username = sess.Username
		ev.Role = sess.Role
	}
	s.record(ev)
	return nil
}

func (s *sessionService) Resolve(ctx context.Context, sid string) (domain.SessionState, error) {
	if sid == "" {
		return domain.SessionState{}, nil
	}

	sess, err := s.store.Read(ctx, sid)
	if err != nil {
		return domain.SessionState{}, fmt.Errorf("read session: %w", err)
	}
	if sess == nil {
		return domain.SessionState{}, nil
	}

	return domain.SessionState{
		Authenticated: true,
		Role:          sess.Role,
		User:          sess,
	}, nil
}

// Invalidate drops a session whose stored token the backend no longer
// accepts, so a stale token cannot outlive its rejection.
func (s *sessionService) Invalidate(ctx context.Context, sid, path string) error {
	sess, err := s.store.Read(ctx, sid)
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}

	if err := s.store.Clear(ctx, sid); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	ev := domain.AuditEvent{SessionID: sid, Action: domain.AuditTokenRejected, Path: path, At: time.Now().UTC()}
	if sess != nil {
		ev.Username = sess.Username
		ev.Role = sess.Role
	}
	s.record(ev)
	s.log.Warn().Str("path", path).Msg("session invalidated after backend token rejection")
	return nil
}

func (s *sessionService) record(ev domain.AuditEvent) {
	if s.audit != nil {
		s.audit.Record(ev)
	}
}
