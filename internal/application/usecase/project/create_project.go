package project

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/application/usecase"
	"github.com/dimasadrian/portfolio/internal/application/usecase/media"
	"github.com/dimasadrian/portfolio/internal/domain/asset"
	"github.com/dimasadrian/portfolio/internal/domain/project"
	"github.com/dimasadrian/portfolio/pkg/apperror"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

const (
	ListPath   = "/dashboard/projects"
	entityType = "project"
)

type CreateProjectUseCase struct {
	projectRepo project.Repository
	media       *media.Manager
	events      service.EventPublisher
	logger      logger.Logger
}

func NewCreateProjectUseCase(repo project.Repository, m *media.Manager, events service.EventPublisher, log logger.Logger) *CreateProjectUseCase {
	return &CreateProjectUseCase{projectRepo: repo, media: m, events: events, logger: log}
}

type ProjectFields struct {
	Title       string
	Description string
	TechStack   []string
	Link        string
	Image       media.ImageChange
}

type SaveProjectOutput struct {
	Project  *project.Project
	Redirect string
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, input ProjectFields) (*SaveProjectOutput, error) {
	p := &project.Project{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
	}
	input.applyTo(p)
	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	imageURL, err := uc.media.Apply(ctx, asset.BucketProjects, asset.PrefixProject, nil, input.Image)
	if err != nil {
		return nil, err
	}
	p.ImageURL = imageURL

	if err := uc.projectRepo.Save(ctx, p); err != nil {
		if input.Image.Action == media.ImageReplace && imageURL != nil {
			uc.media.RecordOrphan(asset.BucketProjects, *imageURL, entityType, &p.ID, err)
		}
		return nil, err
	}

	usecase.PublishAsync(uc.events, uc.logger, service.EventProjectCreated, entityType, p.ID)
	return &SaveProjectOutput{Project: p, Redirect: ListPath}, nil
}

func (f ProjectFields) applyTo(p *project.Project) {
	p.Title = strings.TrimSpace(f.Title)
	p.Description = usecase.Optional(f.Description)
	p.TechStack = project.NormalizeStack(f.TechStack)
	p.Link = usecase.Optional(f.Link)
}
