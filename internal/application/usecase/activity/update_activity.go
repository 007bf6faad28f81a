package activity

import (
	"context"

	"github.com/google/uuid"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/application/usecase"
	"github.com/dimasadrian/portfolio/internal/application/usecase/media"
	"github.com/dimasadrian/portfolio/internal/domain/activity"
	"github.com/dimasadrian/portfolio/internal/domain/asset"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

type UpdateActivityUseCase struct {
	activityRepo activity.Repository
	media        *media.Manager
	events       service.EventPublisher
	logger       logger.Logger
}

func NewUpdateActivityUseCase(repo activity.Repository, m *media.Manager, events service.EventPublisher, log logger.Logger) *UpdateActivityUseCase {
	return &UpdateActivityUseCase{activityRepo: repo, media: m, events: events, logger: log}
}

type UpdateActivityInput struct {
	ID uuid.UUID
	ActivityFields
}

func (uc *UpdateActivityUseCase) Execute(ctx context.Context, input UpdateActivityInput) (*SaveActivityOutput, error) {
	existing, err := uc.activityRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	updated := &activity.Activity{ID: existing.ID, CreatedAt: existing.CreatedAt}
	if err := input.applyTo(updated); err != nil {
		return nil, err
	}

	imageURL, err := uc.media.Apply(ctx, asset.BucketActivities, asset.PrefixActivity, existing.ImageURL, input.Image)
	if err != nil {
		return nil, err
	}
	updated.ImageURL = imageURL

	if err := uc.activityRepo.Update(ctx, updated); err != nil {
		if input.Image.Action == media.ImageReplace && imageURL != nil {
			uc.media.RecordOrphan(asset.BucketActivities, *imageURL, entityType, &updated.ID, err)
		}
		return nil, err
	}

	usecase.PublishAsync(uc.events, uc.logger, service.EventActivityUpdated, entityType, updated.ID)
	return &SaveActivityOutput{Activity: updated, Redirect: ListPath}, nil
}
