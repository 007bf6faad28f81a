package search

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/meilisearch/meilisearch-go"
	"go.uber.org/zap"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/config"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

const articlesIndex = "articles"

type meiliArticleIndex struct {
	client meilisearch.ServiceManager
	logger logger.Logger
}

func NewMeiliArticleIndex(cfg config.Config, log logger.Logger) service.ArticleIndex {
	client := meilisearch.New(cfg.Meili.Host, meilisearch.WithAPIKey(cfg.Meili.APIKey))
	idx := &meiliArticleIndex{client: client, logger: log}
	idx.initIndex()
	return idx
}

// initIndex is best effort; search still works with default settings.
func (m *meiliArticleIndex) initIndex() {
	searchable := []string{"title", "content", "slug"}
	if _, err := m.client.Index(articlesIndex).UpdateSearchableAttributes(&searchable); err != nil {
		m.logger.Warn("Failed to update articles searchable attributes", zap.Error(err))
		return
	}
	m.logger.Info("Meilisearch articles index initialized")
}

func (m *meiliArticleIndex) Upsert(ctx context.Context, doc service.ArticleDocument) error {
	pk := "id"
	task, err := m.client.Index(articlesIndex).AddDocumentsWithContext(ctx, []service.ArticleDocument{doc}, &pk)
	if err != nil {
		return fmt.Errorf("index article %s: %w", doc.ID, err)
	}
	m.logger.Info("Indexed article", zap.String("article_id", doc.ID), zap.Any("task_uid", task.TaskUID))
	return nil
}

func (m *meiliArticleIndex) Remove(ctx context.Context, id uuid.UUID) error {
	if _, err := m.client.Index(articlesIndex).DeleteDocumentWithContext(ctx, id.String()); err != nil {
		return fmt.Errorf("remove article %s from index: %w", id, err)
	}
	return nil
}

func (m *meiliArticleIndex) Search(ctx context.Context, query string, limit int) ([]service.ArticleDocument, error) {
	resp, err := m.client.Index(articlesIndex).SearchWithContext(ctx, query, &meilisearch.SearchRequest{
		Limit: int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}

	raw, err := json.Marshal(resp.Hits)
	if err != nil {
		return nil, fmt.Errorf("encode hits: %w", err)
	}
	docs := []service.ArticleDocument{}
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("decode hits: %w", err)
	}
	return docs, nil
}

// NoopIndex is used when no search host is configured. Searches return
// nothing.
type NoopIndex struct{}

func (NoopIndex) Upsert(context.Context, service.ArticleDocument) error { return nil }
func (NoopIndex) Remove(context.Context, uuid.UUID) error { return nil }
func (NoopIndex) Search(context.Context, string, int) ([]service.ArticleDocument, error) {
	return []service.ArticleDocument{}, nil
}
