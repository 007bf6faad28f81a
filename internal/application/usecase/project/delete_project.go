package project

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/application/usecase"
	"github.com/dimasadrian/portfolio/internal/application/usecase/media"
	"github.com/dimasadrian/portfolio/internal/domain/asset"
	"github.com/dimasadrian/portfolio/internal/domain/project"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	media       *media.Manager
	events      service.EventPublisher
	logger      logger.Logger
}

func NewDeleteProjectUseCase(repo project.Repository, m *media.Manager, events service.EventPublisher, log logger.Logger) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{projectRepo: repo, media: m, events: events, logger: log}
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	p, err := uc.projectRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if p.ImageURL != nil {
		uc.media.Discard(ctx, asset.BucketProjects, *p.ImageURL)
	}

	if err := uc.projectRepo.Delete(ctx, p.ID); err != nil {
		return err
	}

	uc.logger.Info("Project deleted", zap.String("project_id", p.ID.String()))
	usecase.PublishAsync(uc.events, uc.logger, service.EventProjectDeleted, entityType, p.ID)
	return nil
}
