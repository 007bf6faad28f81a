package article

import (
	"context"
	"fmt"

	"github.com/dimasadrian/portfolio/internal/domain/article"
)

const maxListLimit = 100

type ListArticlesUseCase struct {
	articleRepo article.Repository
}

func NewListArticlesUseCase(repo article.Repository) *ListArticlesUseCase {
	return &ListArticlesUseCase{articleRepo: repo}
}

type ListArticlesInput struct {
	// Limit <= 0 lists everything.
	Limit int
}

type ListArticlesOutput struct {
	Articles []*article.Article
}

func (uc *ListArticlesUseCase) Execute(ctx context.Context, input ListArticlesInput) (*ListArticlesOutput, error) {
	if input.Limit > maxListLimit {
		input.Limit = maxListLimit
	}

	articles, err := uc.articleRepo.List(ctx, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("list articles failed: %w", err)
	}
	if articles == nil {
		articles = []*article.Article{}
	}
	return &ListArticlesOutput{Articles: articles}, nil
}
