package article

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/application/usecase"
	"github.com/dimasadrian/portfolio/internal/application/usecase/media"
	"github.com/dimasadrian/portfolio/internal/domain/article"
	"github.com/dimasadrian/portfolio/internal/domain/asset"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

type DeleteArticleUseCase struct {
	articleRepo article.Repository
	media       *media.Manager
	events      service.EventPublisher
	logger      logger.Logger
}

func NewDeleteArticleUseCase(repo article.Repository, m *media.Manager, events service.EventPublisher, log logger.Logger) *DeleteArticleUseCase {
	return &DeleteArticleUseCase{articleRepo: repo, media: m, events: events, logger: log}
}

type DeleteArticleInput struct {
	ID uuid.UUID
}

// Execute removes the stored image first, then the record.
func (uc *DeleteArticleUseCase) Execute(ctx context.Context, input DeleteArticleInput) error {
	a, err := uc.articleRepo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}

	if a.ImageURL != nil {
		uc.media.Discard(ctx, asset.BucketArticles, *a.ImageURL)
	}

	if err := uc.articleRepo.Delete(ctx, a.ID); err != nil {
		return err
	}

	uc.logger.Info("Article deleted", zap.String("article_id", a.ID.String()))
	usecase.PublishAsync(uc.events, uc.logger, service.EventArticleDeleted, entityType, a.ID)
	return nil
}
