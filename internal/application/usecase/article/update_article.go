package article

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/application/usecase"
	"github.com/dimasadrian/portfolio/internal/application/usecase/media"
	"github.com/dimasadrian/portfolio/internal/domain/article"
	"github.com/dimasadrian/portfolio/internal/domain/asset"
	"github.com/dimasadrian/portfolio/pkg/apperror"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

type UpdateArticleUseCase struct {
	articleRepo article.Repository
	media       *media.Manager
	events      service.EventPublisher
	logger      logger.Logger
}

func NewUpdateArticleUseCase(repo article.Repository, m *media.Manager, events service.EventPublisher, log logger.Logger) *UpdateArticleUseCase {
	return &UpdateArticleUseCase{articleRepo: repo, media: m, events: events, logger: log}
}

// UpdateArticleInput carries the edit form. An empty Slug keeps the stored one.
type UpdateArticleInput struct {
	ID      uuid.UUID
	Title   string
	Slug    string
	Content string
	Image   media.ImageChange
}

// editedSlug keeps the public URL stable: edits never re-derive the slug
// from the title, they take the submitted slug or keep the stored one.
func editedSlug(current, submitted string) string {
	if s := strings.TrimSpace(submitted); s != "" {
		return s
	}
	return current
}

// Execute overwrites every editable field. Concurrent edits are last write wins.
func (uc *UpdateArticleUseCase) Execute(ctx context.Context, input UpdateArticleInput) (*SaveArticleOutput, error) {
	existing, err := uc.articleRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updated := &article.Article{
		ID:          existing.ID,
		Title:       input.Title,
		Slug:        editedSlug(existing.Slug, input.Slug),
		Content:     input.Content,
		PublishedAt: existing.PublishedAt,
		UpdatedAt:   &now,
	}
	if err := updated.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	imageURL, err := uc.media.Apply(ctx, asset.BucketArticles, asset.PrefixArticle, existing.ImageURL, input.Image)
	if err != nil {
		return nil, err
	}
	updated.ImageURL = imageURL

	if err := uc.articleRepo.Update(ctx, updated); err != nil {
		if input.Image.Action == media.ImageReplace && imageURL != nil {
			uc.media.RecordOrphan(asset.BucketArticles, *imageURL, entityType, &updated.ID, err)
		}
		return nil, err
	}

	usecase.PublishAsync(uc.events, uc.logger, service.EventArticleUpdated, entityType, updated.ID)

	return &SaveArticleOutput{Article: updated, Redirect: ListPath}, nil
}
