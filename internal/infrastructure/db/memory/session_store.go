// Package memory provides an in-process session store for development and
// tests. It mirrors the persisted layout of the Redis store (token, role,
// serialized identity blob) so both backends share the same recovery
// semantics for malformed state.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dealerhub/dealer-portal/internal/core/domain"
)

type record struct {
	token string
	role  string
	info  string
}

// SessionStore keeps sessions in a mutex-guarded map.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]record
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]record)}
}

type userInfo struct {
	UserID   string      `json:"userId"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

func (s *SessionStore) Save(_ context.Context, sid string, session domain.Session) error {
	info, err := json.Marshal(userInfo{
		UserID:   session.UserID,
		Username: session.Username,
		Role:     session.Role,
	})
	if err != nil {
		return fmt.Errorf("encode user info: %w", err)
	}
	s.Put(sid, session.Token, string(session.Role), string(info))
	return nil
}

// Put writes the three raw fields directly. Exposed so tests can inject
// malformed persisted state.
func (s *SessionStore) Put(sid, token, role, info string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sid] = record{token: token, role: role, info: info}
}

func (s *SessionStore) Read(_ context.Context, sid string) (*domain.Session, error) {
	s.mu.RLock()
	rec, ok := s.sessions[sid]
	s.mu.RUnlock()
	if !ok || rec.token == "" {
		return nil, nil
	}

	var info userInfo
	if err := json.Unmarshal([]byte(rec.info), &info); err != nil {
		return nil, nil
	}
	if info.UserID == "" || info.Username == "" {
		return nil, nil
	}

	return &domain.Session{
		Token:    rec.token,
		UserID:   info.UserID,
		Username: info.Username,
		Role:     domain.ParseRole(string(info.Role)),
	}, nil
}

func (s *SessionStore) Clear(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}

func (s *SessionStore) HasToken(_ context.Context, sid string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.sessions[sid]
	return ok && rec.token != "", nil
}
