package orphan

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
	"github.com/dimasadrian/portfolio/internal/domain/asset"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

func TestRecordOrphanSavesLedgerEntry(t *testing.T) {
	repo := new(mocks.OrphanRepository)
	id := uuid.New()
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	repo.On("Save", mock.Anything, mock.MatchedBy(func(o *asset.OrphanedAsset) bool {
		return o.Bucket == asset.BucketArticles &&
			o.ObjectURL == "https://cdn/articles/article-1.png" &&
			*o.EntityID == id &&
			o.RecordedAt.Equal(at)
	})).Return(nil)

	err := NewRecordOrphanUseCase(repo, logger.NewNop()).Execute(context.Background(), service.ContentEventPayload{
		EventType:  service.EventAssetOrphaned,
		EntityType: "article",
		EntityID:   &id,
		Bucket:     "articles",
		ObjectURL:  "https://cdn/articles/article-1.png",
		Reason:     "conflict",
		OccurredAt: at,
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestRecordOrphanIgnoresOtherEvents(t *testing.T) {
	repo := new(mocks.OrphanRepository)
	err := NewRecordOrphanUseCase(repo, logger.NewNop()).Execute(context.Background(), service.ContentEventPayload{
		EventType: service.EventArticleCreated,
	})
	assert.NoError(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestListOrphansDefaultsLimit(t *testing.T) {
	repo := new(mocks.OrphanRepository)
	repo.On("List", mock.Anything, 50).Return(nil, nil)

	out, err := NewListOrphansUseCase(repo).Execute(context.Background(), 0)
	require.NoError(t, err)
	assert.NotNil(t, out)
}
