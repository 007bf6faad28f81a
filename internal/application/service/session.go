package service

import (
	"context"
	"time"
)

// SessionStore tracks failed sign-ins and revoked tokens.
type SessionStore interface {
	LoginAttempts(ctx context.Context, email string) (int, error)
	RegisterFailedLogin(ctx context.Context, email string, window time.Duration) (int, error)
	ResetLoginAttempts(ctx context.Context, email string) error
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}
