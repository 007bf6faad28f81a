package orphan

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/domain/asset"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

// RecordOrphanUseCase persists asset.orphaned events into the ledger.
type RecordOrphanUseCase struct {
	orphanRepo asset.OrphanRepository
	logger     logger.Logger
}

func NewRecordOrphanUseCase(repo asset.OrphanRepository, log logger.Logger) *RecordOrphanUseCase {
	return &RecordOrphanUseCase{orphanRepo: repo, logger: log}
}

func (uc *RecordOrphanUseCase) Execute(ctx context.Context, payload service.ContentEventPayload) error {
	if payload.EventType != service.EventAssetOrphaned {
		return nil
	}
	if payload.ObjectURL == "" {
		return fmt.Errorf("orphan event without object url")
	}

	recordedAt := payload.OccurredAt
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}

	o := &asset.OrphanedAsset{
		ID:         uuid.New(),
		Bucket:     asset.Bucket(payload.Bucket),
		ObjectURL:  payload.ObjectURL,
		EntityType: payload.EntityType,
		EntityID:   payload.EntityID,
		Reason:     payload.Reason,
		RecordedAt: recordedAt,
	}
	if err := uc.orphanRepo.Save(ctx, o); err != nil {
		return fmt.Errorf("save orphan failed: %w", err)
	}

	uc.logger.Info("Orphaned asset recorded", zap.String("bucket", payload.Bucket), zap.String("url", payload.ObjectURL))
	return nil
}

type ListOrphansUseCase struct {
	orphanRepo asset.OrphanRepository
}

func NewListOrphansUseCase(repo asset.OrphanRepository) *ListOrphansUseCase {
	return &ListOrphansUseCase{orphanRepo: repo}
}

func (uc *ListOrphansUseCase) Execute(ctx context.Context, limit int) ([]*asset.OrphanedAsset, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	orphans, err := uc.orphanRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list orphans failed: %w", err)
	}
	if orphans == nil {
		orphans = []*asset.OrphanedAsset{}
	}
	return orphans, nil
}
