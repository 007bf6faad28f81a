package article

import (
	"context"
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

// ListPath is where the dashboard goes after a successful save.
const ListPath = "/dashboard/articles"

const entityType = "article"

type CreateArticleUseCase struct {
	articleRepo article.Repository
	media       *media.Manager
	events      service.EventPublisher
	logger      logger.Logger
}

func NewCreateArticleUseCase(repo article.Repository, m *media.Manager, events service.EventPublisher, log logger.Logger) *CreateArticleUseCase {
	return &CreateArticleUseCase{articleRepo: repo, media: m, events: events, logger: log}
}

type CreateArticleInput struct {
	Title      string
	Slug       string
	SlugLocked bool
	Content    string
	Image      media.ImageChange
}

type SaveArticleOutput struct {
	Article  *article.Article
	Redirect string
}

func (uc *CreateArticleUseCase) Execute(ctx context.Context, input CreateArticleInput) (*SaveArticleOutput, error) {
	a := &article.Article{
		ID:          uuid.New(),
		Title:       input.Title,
		Slug:        article.ResolveSlug(input.Title, input.Slug, input.SlugLocked),
		Content:     input.Content,
		PublishedAt: time.Now().UTC(),
	}
	if err := a.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	imageURL, err := uc.media.Apply(ctx, asset.BucketArticles, asset.PrefixArticle, nil, input.Image)
	if err != nil {
		return nil, err
	}
	a.ImageURL = imageURL

	if err := uc.articleRepo.Save(ctx, a); err != nil {
		if input.Image.Action == media.ImageReplace && imageURL != nil {
			uc.media.RecordOrphan(asset.BucketArticles, *imageURL, entityType, &a.ID, err)
		}
		return nil, err
	}

	usecase.PublishAsync(uc.events, uc.logger, service.EventArticleCreated, entityType, a.ID)

	return &SaveArticleOutput{Article: a, Redirect: ListPath}, nil
}
