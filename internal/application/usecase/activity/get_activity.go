package activity

import (
	"context"

	"github.com/google/uuid"

	"github.com/dimasadrian/portfolio/internal/domain/activity"
)

type GetActivityUseCase struct {
	activityRepo activity.Repository
}

func NewGetActivityUseCase(repo activity.Repository) *GetActivityUseCase {
	return &GetActivityUseCase{activityRepo: repo}
}

func (uc *GetActivityUseCase) Execute(ctx context.Context, id uuid.UUID) (*activity.Activity, error) {
	return uc.activityRepo.FindByID(ctx, id)
}
