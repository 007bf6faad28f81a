package activity

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/application/usecase"
	"github.com/dimasadrian/portfolio/internal/application/usecase/media"
	"github.com/dimasadrian/portfolio/internal/domain/activity"
	"github.com/dimasadrian/portfolio/internal/domain/asset"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

type DeleteActivityUseCase struct {
	activityRepo activity.Repository
	media        *media.Manager
	events       service.EventPublisher
	logger       logger.Logger
}

func NewDeleteActivityUseCase(repo activity.Repository, m *media.Manager, events service.EventPublisher, log logger.Logger) *DeleteActivityUseCase {
	return &DeleteActivityUseCase{activityRepo: repo, media: m, events: events, logger: log}
}

func (uc *DeleteActivityUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	a, err := uc.activityRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if a.ImageURL != nil {
		uc.media.Discard(ctx, asset.BucketActivities, *a.ImageURL)
	}

	if err := uc.activityRepo.Delete(ctx, a.ID); err != nil {
		return err
	}

	uc.logger.Info("Activity deleted", zap.String("activity_id", a.ID.String()))
	usecase.PublishAsync(uc.events, uc.logger, service.EventActivityDeleted, entityType, a.ID)
	return nil
}
