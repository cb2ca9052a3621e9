package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dealerhub/dealer-portal/internal/core/domain"
)

const defaultSessionTTL = 24 * time.Hour

// Persisted field names. Resource clients and tests depend on this layout.
const (
	fieldToken = "authToken"
	fieldRole  = "userRole"
	fieldInfo  = "userInfo"
)

// SessionStore persists sessions as Redis hashes, one per session ID.
// Key format: session:<sid>
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
// If ttl <= 0, defaultSessionTTL is used.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

type userInfo struct {
	UserID   string      `json:"userId"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

// Save writes token, role, and the serialized identity blob in a single HSET,
// so readers observe either the whole new session or none of it.
func (s *SessionStore) Save(ctx context.Context, sid string, session domain.Session) error {
	info, err := json.Marshal(userInfo{
		UserID:   session.UserID,
		Username: session.Username,
		Role:     session.Role,
	})
	if err != nil {
		return fmt.Errorf("encode user info: %w", err)
	}

	key := s.key(sid)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, fieldToken, session.Token, fieldRole, string(session.Role), fieldInfo, string(info))
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Read returns the stored session, or (nil, nil) when no token is present or
// the persisted state fails to parse. Corruption is recovered silently as
// "logged out", never an error.
func (s *SessionStore) Read(ctx context.Context, sid string) (*domain.Session, error) {
	vals, err := s.client.HGetAll(ctx, s.key(sid)).Result()
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	return decodeSession(vals), nil
}

// Clear removes the whole session hash. Deleting a missing key is a no-op,
// which makes Clear idempotent.
func (s *SessionStore) Clear(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, s.key(sid)).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// HasToken reports token presence without touching the identity blob.
func (s *SessionStore) HasToken(ctx context.Context, sid string) (bool, error) {
	ok, err := s.client.HExists(ctx, s.key(sid), fieldToken).Result()
	if err != nil {
		return false, fmt.Errorf("check session token: %w", err)
	}
	return ok, nil
}

func (s *SessionStore) key(sid string) string {
	return "session:" + sid
}

// decodeSession reassembles a session from the raw hash fields. Any partial
// or malformed state decodes to nil (absent).
func decodeSession(vals map[string]string) *domain.Session {
	token := vals[fieldToken]
	if token == "" {
		return nil
	}

	var info userInfo
	if err := json.Unmarshal([]byte(vals[fieldInfo]), &info); err != nil {
		return nil
	}
	if info.UserID == "" || info.Username == "" {
		return nil
	}

	return &domain.Session{
		Token:    token,
		UserID:   info.UserID,
		Username: info.Username,
		Role:     domain.ParseRole(string(info.Role)),
	}
}
