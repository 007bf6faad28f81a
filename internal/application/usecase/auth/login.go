package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/google/uuid"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/domain/profile"
	"github.com/dimasadrian/portfolio/internal/domain/user"
	"github.com/dimasadrian/portfolio/pkg/apperror"
	"github.com/dimasadrian/portfolio/pkg/auth"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

var (
	ErrInvalidCredentials = errors.New("email or password is incorrect")
)

// LoginLimits bounds failed sign-ins per email inside a sliding window.
type LoginLimits struct {
	MaxAttempts int
	Window      time.Duration
}

type LoginUseCase struct {
	userRepo    user.Repository
	profileRepo profile.Repository
	sessions    service.SessionStore
	jwtSvc      *auth.JWTService
	limits      LoginLimits
	logger      logger.Logger
}

func NewLoginUseCase(
	uRepo user.Repository,
	pRepo profile.Repository,
	sessions service.SessionStore,
	jwtSvc *auth.JWTService,
	limits LoginLimits,
	log logger.Logger,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:    uRepo,
		profileRepo: pRepo,
		sessions:    sessions,
		jwtSvc:      jwtSvc,
		limits:      limits,
		logger:      log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string
	UserID      uuid.UUID
}

var tracer = otel.Tracer("auth_usecase")

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	email := strings.ToLower(strings.TrimSpace(input.Email))

	if uc.limits.MaxAttempts > 0 {
		attempts, err := uc.sessions.LoginAttempts(ctx, email)
		if err != nil {
			uc.logger.Warn("Cannot read login attempts, allowing", zap.Error(err))
		} else if attempts >= uc.limits.MaxAttempts {
			err := apperror.NewRateLimited("too many failed sign-in attempts")
			span.RecordError(err)
			return nil, err
		}
	}

	u, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			uc.registerFailure(ctx, email)
			err = apperror.NewUnauthorized(ErrInvalidCredentials.Error(), nil)
		}
		span.RecordError(err)
		return nil, err
	}

	if !auth.CheckPasswordHash(input.Password, u.PasswordHash) {
		uc.registerFailure(ctx, email)
		err := apperror.NewUnauthorized(ErrInvalidCredentials.Error(), nil)
		span.RecordError(err)
		return nil, err
	}

	if err := uc.sessions.ResetLoginAttempts(ctx, email); err != nil {
		uc.logger.Warn("Failed to reset login attempts", zap.Error(err))
	}

	if err := uc.profileRepo.CreateIfAbsent(ctx, profile.NewForEmail(u.ID, u.Email)); err != nil {
		uc.logger.Warn("Failed to ensure profile on sign-in", zap.String("user_id", u.ID.String()), zap.Error(err))
	}

	token, err := uc.jwtSvc.GenerateToken(u.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("user_id", u.ID.String()))
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.String("user_id", u.ID.String()))
	return &LoginOutput{AccessToken: token, UserID: u.ID}, nil
}

func (uc *LoginUseCase) registerFailure(ctx context.Context, email string) {
	if uc.limits.MaxAttempts <= 0 {
		return
	}
	attempts, err := uc.sessions.RegisterFailedLogin(ctx, email, uc.limits.Window)
	if err != nil {
		uc.logger.Warn("Failed to record login attempt", zap.Error(err))
		return
	}
	uc.logger.Warn("Failed sign-in", zap.String("email", email), zap.Int("attempts", attempts))
}
