package article

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dimasadrian/portfolio/internal/application/mocks"
	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/domain/article"
	"github.com/dimasadrian/portfolio/pkg/apperror"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

func TestIndexArticleSanitizesContent(t *testing.T) {
	repo := new(mocks.ArticleRepository)
	index := new(mocks.ArticleIndex)
	id := uuid.New()

	repo.On("FindByID", mock.Anything, id).Return(&article.Article{
		ID: id, Title: "Hi", Slug: "hi", Content: "<script>alert(1)</script>**bold**", PublishedAt: time.Now(),
	}, nil)
	index.On("Upsert", mock.Anything, mock.MatchedBy(func(d service.ArticleDocument) bool {
		return d.ID == id.String() && d.Content == "**bold**"
	})).Return(nil)

	uc := NewIndexArticleUseCase(repo, index, logger.NewNop())
	err := uc.Execute(context.Background(), service.ContentEventPayload{EventType: service.EventArticleUpdated, EntityID: &id})

	require.NoError(t, err)
	index.AssertExpectations(t)
}

func TestIndexArticleRemovesDeletedAndMissing(t *testing.T) {
	repo := new(mocks.ArticleRepository)
	index := new(mocks.ArticleIndex)
	gone := uuid.New()
	deleted := uuid.New()

	repo.On("FindByID", mock.Anything, gone).Return(nil, apperror.NewNotFound("article", gone.String()))
	index.On("Remove", mock.Anything, gone).Return(nil)
	index.On("Remove", mock.Anything, deleted).Return(nil)

	uc := NewIndexArticleUseCase(repo, index, logger.NewNop())
	require.NoError(t, uc.Execute(context.Background(), service.ContentEventPayload{EventType: service.EventArticleCreated, EntityID: &gone}))
	require.NoError(t, uc.Execute(context.Background(), service.ContentEventPayload{EventType: service.EventArticleDeleted, EntityID: &deleted}))
	index.AssertExpectations(t)

	assert.Error(t, uc.Execute(context.Background(), service.ContentEventPayload{EventType: service.EventArticleDeleted}))
}

func TestSearchArticlesRequiresQuery(t *testing.T) {
	index := new(mocks.ArticleIndex)
	uc := NewSearchArticlesUseCase(index)

	_, err := uc.Execute(context.Background(), SearchArticlesInput{Query: "  "})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	index.On("Search", mock.Anything, "golang", 10).Return(nil, nil)
	docs, err := uc.Execute(context.Background(), SearchArticlesInput{Query: " golang ", Limit: 500})
	require.NoError(t, err)
	assert.NotNil(t, docs)
}
