package auth

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/pkg/apperror"
	"github.com/dimasadrian/portfolio/pkg/auth"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

type LogoutUseCase struct {
	sessions service.SessionStore
	logger   logger.Logger
}

func NewLogoutUseCase(sessions service.SessionStore, log logger.Logger) *LogoutUseCase {
	return &LogoutUseCase{sessions: sessions, logger: log}
}

// Execute deny-lists the token id until the token would expire anyway.
func (uc *LogoutUseCase) Execute(ctx context.Context, claims *auth.CustomClaims) error {
	if claims == nil || claims.ID == "" {
		return apperror.NewUnauthorized("token has no id", nil)
	}

	ttl := claims.Remaining(time.Now())
	if ttl == 0 {
		return nil
	}

	if err := uc.sessions.RevokeToken(ctx, claims.ID, ttl); err != nil {
		return apperror.NewInternal("failed to revoke token", err)
	}
	uc.logger.Info("Token revoked", zap.String("owner_id", claims.OwnerID.String()))
	return nil
}
