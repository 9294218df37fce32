package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"webclass/internal/cache"
	apperrors "webclass/internal/errors"
	"webclass/internal/model"
)

const sessionKeyPrefix = "session:"

// SessionStore defines the interface for server-side session storage.
type SessionStore interface {
	Load(ctx context.Context, id string) (*model.Session, error)
	Save(ctx context.Context, s *model.Session, ttl time.Duration) error
	Touch(ctx context.Context, id string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, id string) error
}

// RedisSessionStore keeps sessions in Redis as JSON with a TTL.
type RedisSessionStore struct {
	cache *cache.Client
}

// Ensure RedisSessionStore implements SessionStore
var _ SessionStore = (*RedisSessionStore)(nil)

// NewRedisSessionStore creates a new session store.
func NewRedisSessionStore(cache *cache.Client) *RedisSessionStore {
	return &RedisSessionStore{cache: cache}
}

// Load retrieves a session. It returns ErrSessionNotFound when the id is unknown or expired.
func (s *RedisSessionStore) Load(ctx context.Context, id string) (*model.Session, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+id)
	if errors.Is(err, cache.ErrMiss) {
		return nil, apperrors.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	sess.ID = id
	sess.MarkPersisted(true)
	return &sess, nil
}

// Save writes the session and resets its TTL.
func (s *RedisSessionStore) Save(ctx context.Context, sess *model.Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.cache.Set(ctx, sessionKeyPrefix+sess.ID, payload, ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Touch extends the TTL of a live session. It reports false when the session is gone.
func (s *RedisSessionStore) Touch(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	ok, err := s.cache.Expire(ctx, sessionKeyPrefix+id, ttl)
	if err != nil {
		return false, fmt.Errorf("touch session: %w", err)
	}
	return ok, nil
}

// Delete removes a session.
func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.cache.Delete(ctx, sessionKeyPrefix+id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
