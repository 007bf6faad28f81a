package activity

import (
	"context"
	"fmt"

	"github.com/dimasadrian/portfolio/internal/domain/activity"
	"github.com/dimasadrian/portfolio/pkg/apperror"
)

type ListActivitiesUseCase struct {
	activityRepo activity.Repository
}

func NewListActivitiesUseCase(repo activity.Repository) *ListActivitiesUseCase {
	return &ListActivitiesUseCase{activityRepo: repo}
}

type ListActivitiesInput struct {
	Types        []string
	ExcludeTypes []string
	Limit        int
}

func (uc *ListActivitiesUseCase) Execute(ctx context.Context, input ListActivitiesInput) ([]*activity.Activity, error) {
	include, err := parseTypes(input.Types)
	if err != nil {
		return nil, err
	}
	exclude, err := parseTypes(input.ExcludeTypes)
	if err != nil {
		return nil, err
	}
	if len(include) > 0 && len(exclude) > 0 {
		return nil, apperror.NewInvalidInput("use either type or exclude, not both", nil)
	}
	if input.Limit > 100 {
		input.Limit = 100
	}

	activities, err := uc.activityRepo.List(ctx, activity.Filter{Include: include, Exclude: exclude, Limit: input.Limit})
	if err != nil {
		return nil, fmt.Errorf("list activities failed: %w", err)
	}
	if activities == nil {
		activities = []*activity.Activity{}
	}
	return activities, nil
}

func parseTypes(raw []string) ([]activity.Type, error) {
	var out []activity.Type
	for _, r := range raw {
		if r == "" {
			continue
		}
		t, err := activity.ParseType(r)
		if err != nil {
			return nil, apperror.NewInvalidInput(err.Error(), err)
		}
		out = append(out, t)
	}
	return out, nil
}
