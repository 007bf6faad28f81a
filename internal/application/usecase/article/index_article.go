package article

import (
	"context"
	"errors"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/domain/article"
	"github.com/dimasadrian/portfolio/pkg/apperror"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

// IndexArticleUseCase keeps the search index in step with article events.
type IndexArticleUseCase struct {
	articleRepo article.Repository
	index       service.ArticleIndex
	policy      *bluemonday.Policy
	logger      logger.Logger
}

func NewIndexArticleUseCase(repo article.Repository, index service.ArticleIndex, log logger.Logger) *IndexArticleUseCase {
	return &IndexArticleUseCase{
		articleRepo: repo,
		index:       index,
		policy:      bluemonday.StrictPolicy(),
		logger:      log,
	}
}

func (uc *IndexArticleUseCase) Execute(ctx context.Context, payload service.ContentEventPayload) error {
	if payload.EntityID == nil {
		return fmt.Errorf("event %s has no entity id", payload.EventType)
	}
	id := *payload.EntityID

	switch payload.EventType {
	case service.EventArticleCreated, service.EventArticleUpdated:
		a, err := uc.articleRepo.FindByID(ctx, id)
		if errors.Is(err, apperror.ErrNotFound) {
			uc.logger.Warn("Article vanished before indexing", zap.String("article_id", id.String()))
			return uc.index.Remove(ctx, id)
		}
		if err != nil {
			return err
		}
		return uc.index.Upsert(ctx, uc.document(a))
	case service.EventArticleDeleted:
		return uc.index.Remove(ctx, id)
	default:
		return nil
	}
}

func (uc *IndexArticleUseCase) document(a *article.Article) service.ArticleDocument {
	doc := service.ArticleDocument{
		ID:          a.ID.String(),
		Title:       uc.policy.Sanitize(a.Title),
		Slug:        a.Slug,
		Content:     uc.policy.Sanitize(a.Content),
		PublishedAt: a.PublishedAt,
	}
	if a.ImageURL != nil {
		doc.ImageURL = *a.ImageURL
	}
	return doc
}
