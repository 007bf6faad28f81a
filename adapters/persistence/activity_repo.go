package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dimasadrian/portfolio/internal/domain/activity"
	"github.com/dimasadrian/portfolio/pkg/apperror"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

const activityColumns = "id, title, type, organization, role, start_date, end_date, description, image_url, created_at"

type postgresActivityRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresActivityRepo(db *pgxpool.Pool, logger logger.Logger) activity.Repository {
	return &postgresActivityRepo{db: db, logger: logger}
}

func scanActivity(row pgx.Row) (*activity.Activity, error) {
	a := &activity.Activity{}
	var typ string
	err := row.Scan(
		&a.ID,
		&a.Title,
		&typ,
		&a.Organization,
		&a.Role,
		&a.StartDate,
		&a.EndDate,
		&a.Description,
		&a.ImageURL,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("activity", "")
		}
		return nil, apperror.NewInternal("failed to scan activity row", err)
	}
	a.Type = activity.Type(typ)
	return a, nil
}

func typeStrings(types []activity.Type) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func (r *postgresActivityRepo) Save(ctx context.Context, a *activity.Activity) error {
	query := `
		INSERT INTO activities (id, title, type, organization, role, start_date, end_date, description, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		a.ID, a.Title, string(a.Type), a.Organization, a.Role,
		a.StartDate, a.EndDate, a.Description, a.ImageURL, a.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.NewConflict("activity", "id", a.ID.String())
		}
		return apperror.NewInternal("failed to save activity", err)
	}
	return nil
}

func (r *postgresActivityRepo) Update(ctx context.Context, a *activity.Activity) error {
	query := `
		UPDATE activities SET
			title = $2, type = $3, organization = $4, role = $5,
			start_date = $6, end_date = $7, description = $8, image_url = $9
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		a.ID, a.Title, string(a.Type), a.Organization, a.Role,
		a.StartDate, a.EndDate, a.Description, a.ImageURL,
	)
	if err != nil {
		return apperror.NewInternal("failed to update activity", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("activity", a.ID.String())
	}
	return nil
}

func (r *postgresActivityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete activity", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("activity", id.String())
	}
	return nil
}

func (r *postgresActivityRepo) FindByID(ctx context.Context, id uuid.UUID) (*activity.Activity, error) {
	row := r.db.QueryRow(ctx, "SELECT "+activityColumns+" FROM activities WHERE id = $1", id)
	a, err := scanActivity(row)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.NewNotFound("activity", id.String())
	}
	return a, err
}

func (r *postgresActivityRepo) List(ctx context.Context, filter activity.Filter) ([]*activity.Activity, error) {
	builder := psql.Select(activityColumns).
		From("activities").
		OrderBy("start_date DESC", "id DESC")

	switch {
	case len(filter.Include) > 0:
		builder = builder.Where(sq.Eq{"type": typeStrings(filter.Include)})
	case len(filter.Exclude) > 0:
		builder = builder.Where(sq.NotEq{"type": typeStrings(filter.Exclude)})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list activities query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query activities", err)
	}
	defer rows.Close()

	activities := make([]*activity.Activity, 0)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating activity rows", err)
	}
	return activities, nil
}

func (r *postgresActivityRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "activities")
}
