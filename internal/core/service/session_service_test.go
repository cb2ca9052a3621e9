package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dealerhub/dealer-portal/internal/core/domain"
)

type stubStore struct {
	sessions map[string]domain.Session
	saves    int
	readErr  error
}

func newStubStore() *stubStore {
	return &stubStore{sessions: make(map[string]domain.Session)}
}

func (s *stubStore) Save(_ context.Context, sid string, sess domain.Session) error {
	s.saves++
	s.sessions[sid] = sess
	return nil
}

func (s *stubStore) Read(_ context.Context, sid string) (*domain.Session, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	sess, ok := s.sessions[sid]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

func (s *stubStore) Clear(_ context.Context, sid string) error {
	delete(s.sessions, sid)
	return nil
}

func (s *stubStore) HasToken(_ context.Context, sid string) (bool, error) {
	sess, ok := s.sessions[sid]
	return ok && sess.Token != "", nil
}

type stubGateway struct {
	sess *domain.Session
	err  error
}

func (g *stubGateway) LoginStaff(context.Context, string, string) (*domain.Session, error) {
	return g.sess, g.err
}

func (g *stubGateway) LoginCustomer(context.Context, string, string) (*domain.Session, error) {
	return g.sess, g.err
}

type recordingSink struct {
	events []domain.AuditEvent
}

func (r *recordingSink) Record(ev domain.AuditEvent) {
	r.events = append(r.events, ev)
}

func TestSessionService_LoginStaffSuccess(t *testing.T) {
	store := newStubStore()
	sink := &recordingSink{}
	want := domain.Session{Token: "tok", UserID: "7", Username: "sally", Role: domain.RoleSalesperson}
	svc := NewSessionService(store, &stubGateway{sess: &want}, sink, zerolog.Nop())

	got, err := svc.LoginStaff(context.Background(), "sid-1", "sally", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if *got != want {
		t.Fatalf("session mismatch: got %+v want %+v", got, want)
	}
	if store.sessions["sid-1"] != want {
		t.Fatalf("store holds %+v, want %+v", store.sessions["sid-1"], want)
	}

	state, err := svc.Resolve(context.Background(), "sid-1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !state.Authenticated || state.Role != domain.RoleSalesperson {
		t.Fatalf("expected authenticated salesperson, got %+v", state)
	}

	if len(sink.events) != 1 || sink.events[0].Action != domain.AuditLoginSucceeded {
		t.Fatalf("expected one login_succeeded audit event, got %+v", sink.events)
	}
}

func TestSessionService_FailedLoginLeavesStoreUntouched(t *testing.T) {
	store := newStubStore()
	store.sessions["sid-old"] = domain.Session{Token: "old", UserID: "1", Username: "prev", Role: domain.RoleMechanic}
	authErr := &domain.AuthenticationError{Message: "Invalid username or password"}
	svc := NewSessionService(store, &stubGateway{err: authErr}, nil, zerolog.Nop())

	_, err := svc.LoginStaff(context.Background(), "sid-new", "sally", "wrong")
	var ae *domain.AuthenticationError
	if !errors.As(err, &ae) || ae.Message != "Invalid username or password" {
		t.Fatalf("expected verbatim auth error, got %v", err)
	}

	if store.saves != 0 {
		t.Fatalf("failed login wrote to the store %d times", store.saves)
	}
	if _, ok := store.sessions["sid-new"]; ok {
		t.Fatal("failed login created a session")
	}
	// The previous session is unaffected by an unrelated failed attempt.
	if store.sessions["sid-old"].Token != "old" {
		t.Fatalf("previous session mutated: %+v", store.sessions["sid-old"])
	}
}

func TestSessionService_IncompleteLoginResponseRejected(t *testing.T) {
	store := newStubStore()
	partial := domain.Session{Token: "tok", Username: "sally"} // no user ID
	svc := NewSessionService(store, &stubGateway{sess: &partial}, nil, zerolog.Nop())

	_, err := svc.LoginStaff(context.Background(), "sid", "sally", "pw")
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected upstream error for incomplete response, got %v", err)
	}
	if store.saves != 0 {
		t.Fatal("incomplete login must not be persisted")
	}
}

func TestSessionService_LoginCustomer(t *testing.T) {
	store := newStubStore()
	want := domain.Session{Token: "tok", UserID: "9", Username: "Pat Jones", Role: domain.RoleCustomer}
	svc := NewSessionService(store, &stubGateway{sess: &want}, nil, zerolog.Nop())

	got, err := svc.LoginCustomer(context.Background(), "sid-c", "Pat Jones", "5551234567")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.Role != domain.RoleCustomer {
		t.Fatalf("expected customer role, got %s", got.Role)
	}
}

func TestSessionService_LogoutClearsAndAudits(t *testing.T) {
	store := newStubStore()
	sink := &recordingSink{}
	store.sessions["sid"] = domain.Session{Token: "tok", UserID: "1", Username: "mike", Role: domain.RoleMechanic}
	svc := NewSessionService(store, &stubGateway{}, sink, zerolog.Nop())

	if err := svc.Logout(context.Background(), "sid"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := store.sessions["sid"]; ok {
		t.Fatal("session survived logout")
	}
	if len(sink.events) != 1 || sink.events[0].Action != domain.AuditLogout || sink.events[0].Username != "mike" {
		t.Fatalf("expected logout audit event for mike, got %+v", sink.events)
	}

	// Logout of an already absent session stays clean.
	if err := svc.Logout(context.Background(), "sid"); err != nil {
		t.Fatalf("repeat logout: %v", err)
	}
}

func TestSessionService_ResolveAnonymous(t *testing.T) {
	svc := NewSessionService(newStubStore(), &stubGateway{}, nil, zerolog.Nop())

	state, err := svc.Resolve(context.Background(), "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if state.Authenticated || state.Initializing {
		t.Fatalf("expected settled anonymous state, got %+v", state)
	}

	state, err = svc.Resolve(context.Background(), "missing")
	if err != nil || state.Authenticated {
		t.Fatalf("expected anonymous for unknown sid, got %+v err=%v", state, err)
	}
}

func TestSessionService_ResolveStoreFailureSurfaces(t *testing.T) {
	store := newStubStore()
	store.readErr = errors.New("redis down")
	svc := NewSessionService(store, &stubGateway{}, nil, zerolog.Nop())

	if _, err := svc.Resolve(context.Background(), "sid"); err == nil {
		t.Fatal("store failure must surface, not read as anonymous")
	}
}

func TestSessionService_Invalidate(t *testing.T) {
	store := newStubStore()
	sink := &recordingSink{}
	store.sessions["sid"] = domain.Session{Token: "stale", UserID: "1", Username: "sally", Role: domain.RoleSalesperson}
	svc := NewSessionService(store, &stubGateway{}, sink, zerolog.Nop())

	if err := svc.Invalidate(context.Background(), "sid", "/salesperson/cars"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, ok := store.sessions["sid"]; ok {
		t.Fatal("stale session survived invalidation")
	}
	if len(sink.events) != 1 || sink.events[0].Action != domain.AuditTokenRejected || sink.events[0].Path != "/salesperson/cars" {
		t.Fatalf("expected token_rejected audit event, got %+v", sink.events)
	}
}
