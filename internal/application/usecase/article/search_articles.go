package article

import (
	"context"
	"strings"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/pkg/apperror"
)

type SearchArticlesUseCase struct {
	index service.ArticleIndex
}

func NewSearchArticlesUseCase(index service.ArticleIndex) *SearchArticlesUseCase {
	return &SearchArticlesUseCase{index: index}
}

type SearchArticlesInput struct {
	Query string
	Limit int
}

func (uc *SearchArticlesUseCase) Execute(ctx context.Context, input SearchArticlesInput) ([]service.ArticleDocument, error) {
	q := strings.TrimSpace(input.Query)
	if q == "" {
		return nil, apperror.NewInvalidInput("query is required", nil)
	}
	if input.Limit <= 0 || input.Limit > 50 {
		input.Limit = 10
	}

	docs, err := uc.index.Search(ctx, q, input.Limit)
	if err != nil {
		return nil, apperror.NewInternal("search failed", err)
	}
	if docs == nil {
		docs = []service.ArticleDocument{}
	}
	return docs, nil
}
