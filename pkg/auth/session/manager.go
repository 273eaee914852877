package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Christian112b/costanzo-backend/pkg/config"
	pkgredis "github.com/Christian112b/costanzo-backend/pkg/redis"
)

// AccessSessionChecker verifies a session id is still live.
type AccessSessionChecker interface {
	HasSession(ctx context.Context, sessionID string) (bool, error)
}

// Manager stores session presence in redis keyed by JWT id.
type Manager struct {
	redis *pkgredis.Client
	ttl   time.Duration
}

// NewManager builds a redis-backed session manager.
func NewManager(redisClient *pkgredis.Client, cfg config.JWTConfig) (*Manager, error) {
	if redisClient == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &Manager{redis: redisClient, ttl: cfg.SessionTTL()}, nil
}

// Put registers a live session for the user.
func (m *Manager) Put(ctx context.Context, sessionID string, userID int64) error {
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	return m.redis.Set(ctx, pkgredis.SessionKey(sessionID), strconv.FormatInt(userID, 10), m.ttl)
}

// HasSession reports whether the session id is still registered.
func (m *Manager) HasSession(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}
	_, err := m.redis.Get(ctx, pkgredis.SessionKey(sessionID))
	if err != nil {
		if pkgredis.IsNil(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Revoke removes the session.
func (m *Manager) Revoke(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return m.redis.Del(ctx, pkgredis.SessionKey(sessionID))
}
