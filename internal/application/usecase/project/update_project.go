package project

import (
	"context"

	"github.com/google/uuid"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/application/usecase"
	"github.com/dimasadrian/portfolio/internal/application/usecase/media"
	"github.com/dimasadrian/portfolio/internal/domain/asset"
	"github.com/dimasadrian/portfolio/internal/domain/project"
	"github.com/dimasadrian/portfolio/pkg/apperror"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	media       *media.Manager
	events      service.EventPublisher
	logger      logger.Logger
}

func NewUpdateProjectUseCase(repo project.Repository, m *media.Manager, events service.EventPublisher, log logger.Logger) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{projectRepo: repo, media: m, events: events, logger: log}
}

type UpdateProjectInput struct {
	ID uuid.UUID
	ProjectFields
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*SaveProjectOutput, error) {
	existing, err := uc.projectRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	updated := &project.Project{ID: existing.ID, CreatedAt: existing.CreatedAt}
	input.applyTo(updated)
	if err := updated.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	imageURL, err := uc.media.Apply(ctx, asset.BucketProjects, asset.PrefixProject, existing.ImageURL, input.Image)
	if err != nil {
		return nil, err
	}
	updated.ImageURL = imageURL

	if err := uc.projectRepo.Update(ctx, updated); err != nil {
		if input.Image.Action == media.ImageReplace && imageURL != nil {
			uc.media.RecordOrphan(asset.BucketProjects, *imageURL, entityType, &updated.ID, err)
		}
		return nil, err
	}

	usecase.PublishAsync(uc.events, uc.logger, service.EventProjectUpdated, entityType, updated.ID)
	return &SaveProjectOutput{Project: updated, Redirect: ListPath}, nil
}
