package article

import (
	"context"

	"github.com/google/uuid"

	"github.com/dimasadrian/portfolio/internal/domain/article"
)

type GetArticleUseCase struct {
	articleRepo article.Repository
}

func NewGetArticleUseCase(repo article.Repository) *GetArticleUseCase {
	return &GetArticleUseCase{articleRepo: repo}
}

func (uc *GetArticleUseCase) Execute(ctx context.Context, id uuid.UUID) (*article.Article, error) {
	return uc.articleRepo.FindByID(ctx, id)
}

type GetArticleBySlugUseCase struct {
	articleRepo article.Repository
}

func NewGetArticleBySlugUseCase(repo article.Repository) *GetArticleBySlugUseCase {
	return &GetArticleBySlugUseCase{articleRepo: repo}
}

func (uc *GetArticleBySlugUseCase) Execute(ctx context.Context, slug string) (*article.Article, error) {
	return uc.articleRepo.FindBySlug(ctx, slug)
}
