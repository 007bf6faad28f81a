package activity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/application/usecase"
	"github.com/dimasadrian/portfolio/internal/application/usecase/media"
	"github.com/dimasadrian/portfolio/internal/domain/activity"
	"github.com/dimasadrian/portfolio/internal/domain/asset"
	"github.com/dimasadrian/portfolio/pkg/apperror"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

const (
	ListPath   = "/dashboard/activities"
	entityType = "activity"
)

// ActivityFields are the form values. Dates use YYYY-MM-DD; an empty end
// date means the activity is ongoing. An empty type means Experience.
type ActivityFields struct {
	Title        string
	Type         string
	Organization string
	Role         string
	StartDate    string
	EndDate      string
	Description  string
	Image        media.ImageChange
}

type SaveActivityOutput struct {
	Activity *activity.Activity
	Redirect string
}

func (f ActivityFields) applyTo(a *activity.Activity) error {
	a.Title = strings.TrimSpace(f.Title)
	if a.Title == "" {
		return apperror.NewInvalidInput(activity.ErrTitleRequired.Error(), activity.ErrTitleRequired)
	}

	a.Type = activity.TypeExperience
	if strings.TrimSpace(f.Type) != "" {
		t, err := activity.ParseType(f.Type)
		if err != nil {
			return apperror.NewInvalidInput(err.Error(), err)
		}
		a.Type = t
	}

	start, err := activity.ParseDate(f.StartDate)
	if err != nil {
		return apperror.NewInvalidInput("start_date: "+err.Error(), err)
	}
	if start == nil {
		return apperror.NewInvalidInput(activity.ErrStartDateRequired.Error(), activity.ErrStartDateRequired)
	}
	a.StartDate = *start

	end, err := activity.ParseDate(f.EndDate)
	if err != nil {
		return apperror.NewInvalidInput("end_date: "+err.Error(), err)
	}
	a.EndDate = end

	a.Organization = usecase.Optional(f.Organization)
	a.Role = usecase.Optional(f.Role)
	a.Description = usecase.Optional(f.Description)

	if err := a.Validate(); err != nil {
		return apperror.NewInvalidInput(err.Error(), err)
	}
	return nil
}

type CreateActivityUseCase struct {
	activityRepo activity.Repository
	media        *media.Manager
	events       service.EventPublisher
	logger       logger.Logger
}

func NewCreateActivityUseCase(repo activity.Repository, m *media.Manager, events service.EventPublisher, log logger.Logger) *CreateActivityUseCase {
	return &CreateActivityUseCase{activityRepo: repo, media: m, events: events, logger: log}
}

func (uc *CreateActivityUseCase) Execute(ctx context.Context, input ActivityFields) (*SaveActivityOutput, error) {
	a := &activity.Activity{ID: uuid.New(), CreatedAt: time.Now().UTC()}
	if err := input.applyTo(a); err != nil {
		return nil, err
	}

	imageURL, err := uc.media.Apply(ctx, asset.BucketActivities, asset.PrefixActivity, nil, input.Image)
	if err != nil {
		return nil, err
	}
	a.ImageURL = imageURL

	if err := uc.activityRepo.Save(ctx, a); err != nil {
		if input.Image.Action == media.ImageReplace && imageURL != nil {
			uc.media.RecordOrphan(asset.BucketActivities, *imageURL, entityType, &a.ID, err)
		}
		return nil, err
	}

	usecase.PublishAsync(uc.events, uc.logger, service.EventActivityCreated, entityType, a.ID)
	return &SaveActivityOutput{Activity: a, Redirect: ListPath}, nil
}
