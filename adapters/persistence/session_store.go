package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dimasadrian/portfolio/internal/application/service"
)

const (
	loginAttemptsPrefix = "login_attempts:"
	revokedTokenPrefix  = "revoked_token:"
)

// redisSessionStore keeps sign-in counters and revoked token ids in Redis.
// With a nil client every check passes and nothing is stored.
type redisSessionStore struct {
	rdb *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) service.SessionStore {
	return &redisSessionStore{rdb: rdb}
}

func attemptsKey(email string) string {
	return loginAttemptsPrefix + strings.ToLower(strings.TrimSpace(email))
}

func (s *redisSessionStore) LoginAttempts(ctx context.Context, email string) (int, error) {
	if s.rdb == nil {
		return 0, nil
	}
	n, err := s.rdb.Get(ctx, attemptsKey(email)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read login attempts: %w", err)
	}
	return n, nil
}

// RegisterFailedLogin bumps the counter. The window starts at the first failure.
func (s *redisSessionStore) RegisterFailedLogin(ctx context.Context, email string, window time.Duration) (int, error) {
	if s.rdb == nil {
		return 0, nil
	}
	key := attemptsKey(email)

	n, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("increment login attempts: %w", err)
	}
	if n == 1 {
		if err := s.rdb.Expire(ctx, key, window).Err(); err != nil {
			return int(n), fmt.Errorf("set login attempts window: %w", err)
		}
	}
	return int(n), nil
}

func (s *redisSessionStore) ResetLoginAttempts(ctx context.Context, email string) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Del(ctx, attemptsKey(email)).Err()
}

func (s *redisSessionStore) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Set(ctx, revokedTokenPrefix+tokenID, "1", ttl).Err()
}

func (s *redisSessionStore) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	if s.rdb == nil {
		return false, nil
	}
	n, err := s.rdb.Exists(ctx, revokedTokenPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}
