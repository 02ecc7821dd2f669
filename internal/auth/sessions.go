package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNoSession is returned when a token is unknown, expired, or revoked.
var ErrNoSession = errors.New("no active session")

// Sessions stores bearer tokens in Redis with a TTL. A token disappearing
// (expiry or revocation) is the "session absent" signal: the next guarded
// request returns 401 and the client falls back to the login prompt.
type Sessions struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSessions returns a Sessions store with the given token TTL.
func NewSessions(rdb *redis.Client, ttl time.Duration) *Sessions {
	return &Sessions{rdb: rdb, ttl: ttl}
}

func sessionKey(token string) string { return "session:" + token }

// Issue creates a fresh token for email.
func (s *Sessions) Issue(ctx context.Context, email string) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, sessionKey(token), email, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("session store: %w", err)
	}
	return token, nil
}

// Validate returns the email bound to token, or ErrNoSession.
func (s *Sessions) Validate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrNoSession
	}
	email, err := s.rdb.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNoSession
		}
		return "", fmt.Errorf("session lookup: %w", err)
	}
	return email, nil
}

// Revoke deletes token. Revoking an unknown token is not an error.
func (s *Sessions) Revoke(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("session revoke: %w", err)
	}
	return nil
}
