package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/dimasadrian/portfolio/internal/domain/profile"
	"github.com/dimasadrian/portfolio/internal/domain/user"
)

// SessionUseCase answers the dashboard's gate check.
type SessionUseCase struct {
	userRepo    user.Repository
	profileRepo profile.Repository
}

func NewSessionUseCase(uRepo user.Repository, pRepo profile.Repository) *SessionUseCase {
	return &SessionUseCase{userRepo: uRepo, profileRepo: pRepo}
}

type SessionOutput struct {
	User    *user.User
	Profile *profile.Profile
}

func (uc *SessionUseCase) Execute(ctx context.Context, ownerID uuid.UUID) (*SessionOutput, error) {
	u, err := uc.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	p, err := uc.profileRepo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return &SessionOutput{User: u, Profile: p}, nil
}
