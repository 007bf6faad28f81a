package stats

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dimasadrian/portfolio/internal/domain/activity"
	"github.com/dimasadrian/portfolio/internal/domain/article"
	"github.com/dimasadrian/portfolio/internal/domain/project"
)

type StatsUseCase struct {
	articleRepo  article.Repository
	projectRepo  project.Repository
	activityRepo activity.Repository
}

func NewStatsUseCase(aRepo article.Repository, pRepo project.Repository, acRepo activity.Repository) *StatsUseCase {
	return &StatsUseCase{articleRepo: aRepo, projectRepo: pRepo, activityRepo: acRepo}
}

type StatsOutput struct {
	Articles   int
	Projects   int
	Activities int
}

// Execute counts the three tables concurrently.
func (uc *StatsUseCase) Execute(ctx context.Context) (*StatsOutput, error) {
	var out StatsOutput
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		out.Articles, err = uc.articleRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Projects, err = uc.projectRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Activities, err = uc.activityRepo.Count(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("count content failed: %w", err)
	}
	return &out, nil
}
