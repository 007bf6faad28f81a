package persistence

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dimasadrian/portfolio/internal/domain/asset"
	"github.com/dimasadrian/portfolio/pkg/apperror"
)

type postgresOrphanRepo struct {
	db *pgxpool.Pool
}

func NewPostgresOrphanRepo(db *pgxpool.Pool) asset.OrphanRepository {
	return &postgresOrphanRepo{db: db}
}

func (r *postgresOrphanRepo) Save(ctx context.Context, o *asset.OrphanedAsset) error {
	query := `
		INSERT INTO orphaned_assets (id, bucket, object_url, entity_type, entity_id, reason, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, o.ID, string(o.Bucket), o.ObjectURL, o.EntityType, o.EntityID, o.Reason, o.RecordedAt)
	if err != nil {
		return apperror.NewInternal("failed to save orphaned asset", err)
	}
	return nil
}

func (r *postgresOrphanRepo) List(ctx context.Context, limit int) ([]*asset.OrphanedAsset, error) {
	sql, args, err := psql.Select("id, bucket, object_url, entity_type, entity_id, reason, recorded_at").
		From("orphaned_assets").
		OrderBy("recorded_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list orphans query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query orphaned assets", err)
	}
	defer rows.Close()

	orphans := make([]*asset.OrphanedAsset, 0)
	for rows.Next() {
		o := &asset.OrphanedAsset{}
		var bucket string
		if err := rows.Scan(&o.ID, &bucket, &o.ObjectURL, &o.EntityType, &o.EntityID, &o.Reason, &o.RecordedAt); err != nil {
			return nil, apperror.NewInternal("failed to scan orphaned asset", err)
		}
		o.Bucket = asset.Bucket(bucket)
		orphans = append(orphans, o)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating orphan rows", err)
	}
	return orphans, nil
}
