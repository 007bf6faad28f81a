package home

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dimasadrian/portfolio/internal/domain/activity"
	"github.com/dimasadrian/portfolio/internal/domain/article"
	"github.com/dimasadrian/portfolio/internal/domain/profile"
	"github.com/dimasadrian/portfolio/internal/domain/project"
	"github.com/dimasadrian/portfolio/pkg/apperror"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

const latestCount = 3

type HomeUseCase struct {
	articleRepo  article.Repository
	projectRepo  project.Repository
	activityRepo activity.Repository
	profileRepo  profile.Repository
	logger       logger.Logger
}

func NewHomeUseCase(
	aRepo article.Repository,
	pRepo project.Repository,
	acRepo activity.Repository,
	prRepo profile.Repository,
	log logger.Logger,
) *HomeUseCase {
	return &HomeUseCase{articleRepo: aRepo, projectRepo: pRepo, activityRepo: acRepo, profileRepo: prRepo, logger: log}
}

type HomeOutput struct {
	Profile    *profile.Profile
	Articles   []*article.Article
	Projects   []*project.Project
	Activities []*activity.Activity
}

// Execute loads the public landing page. Each section is read concurrently;
// a failed read is logged and leaves that section empty.
func (uc *HomeUseCase) Execute(ctx context.Context) (*HomeOutput, error) {
	out := &HomeOutput{}
	var g errgroup.Group

	g.Go(func() error {
		p, err := uc.profileRepo.FindOwner(ctx)
		switch {
		case errors.Is(err, apperror.ErrNotFound):
			uc.logger.Warn("No owner profile yet")
		case err != nil:
			uc.degraded("profile", err)
		default:
			out.Profile = p
		}
		return nil
	})
	g.Go(func() error {
		articles, err := uc.articleRepo.List(ctx, latestCount)
		if err != nil {
			uc.degraded("articles", err)
			return nil
		}
		out.Articles = articles
		return nil
	})
	g.Go(func() error {
		projects, err := uc.projectRepo.List(ctx, latestCount)
		if err != nil {
			uc.degraded("projects", err)
			return nil
		}
		out.Projects = projects
		return nil
	})
	g.Go(func() error {
		activities, err := uc.activityRepo.List(ctx, activity.Filter{Include: activity.PublicTypes()})
		if err != nil {
			uc.degraded("activities", err)
			return nil
		}
		out.Activities = activities
		return nil
	})
	_ = g.Wait()

	if out.Articles == nil {
		out.Articles = []*article.Article{}
	}
	if out.Projects == nil {
		out.Projects = []*project.Project{}
	}
	if out.Activities == nil {
		out.Activities = []*activity.Activity{}
	}
	return out, nil
}

func (uc *HomeUseCase) degraded(section string, err error) {
	uc.logger.Warn("Home section unavailable, rendering empty", zap.String("section", section), zap.Error(err))
}
