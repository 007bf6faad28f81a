package project

import (
	"context"
	"fmt"

	"github.com/dimasadrian/portfolio/internal/domain/project"
)

type ListProjectsUseCase struct {
	projectRepo project.Repository
}

func NewListProjectsUseCase(repo project.Repository) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: repo}
}

type ListProjectsInput struct {
	Limit int
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, input ListProjectsInput) ([]*project.Project, error) {
	if input.Limit > 100 {
		input.Limit = 100
	}
	projects, err := uc.projectRepo.List(ctx, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("list projects failed: %w", err)
	}
	if projects == nil {
		projects = []*project.Project{}
	}
	return projects, nil
}
