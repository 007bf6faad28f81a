package home

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dimasadrian/portfolio/internal/application/mocks"
	"github.com/dimasadrian/portfolio/internal/domain/activity"
	"github.com/dimasadrian/portfolio/internal/domain/article"
	"github.com/dimasadrian/portfolio/internal/domain/profile"
	"github.com/dimasadrian/portfolio/pkg/apperror"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

func TestHomeAggregatesLatestContent(t *testing.T) {
	articles := new(mocks.ArticleRepository)
	projects := new(mocks.ProjectRepository)
	activities := new(mocks.ActivityRepository)
	profiles := new(mocks.ProfileRepository)

	articles.On("List", mock.Anything, 3).Return([]*article.Article{{ID: uuid.New()}}, nil)
	projects.On("List", mock.Anything, 3).Return(nil, nil)
	activities.On("List", mock.Anything, activity.Filter{Include: activity.PublicTypes()}).Return(nil, nil)
	profiles.On("FindOwner", mock.Anything).Return(nil, apperror.NewNotFound("profile", "owner"))

	out, err := NewHomeUseCase(articles, projects, activities, profiles, logger.NewNop()).Execute(context.Background())

	require.NoError(t, err)
	assert.Nil(t, out.Profile)
	assert.Len(t, out.Articles, 1)
	assert.NotNil(t, out.Projects)
	assert.NotNil(t, out.Activities)
	activities.AssertExpectations(t)
}

func TestHomeFailedSectionRendersEmpty(t *testing.T) {
	articles := new(mocks.ArticleRepository)
	projects := new(mocks.ProjectRepository)
	activities := new(mocks.ActivityRepository)
	profiles := new(mocks.ProfileRepository)

	owner := &profile.Profile{ID: uuid.New()}
	articles.On("List", mock.Anything, 3).Return([]*article.Article{{ID: uuid.New()}}, nil)
	projects.On("List", mock.Anything, 3).Return(nil, errors.New("projects table down"))
	activities.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))
	profiles.On("FindOwner", mock.Anything).Return(owner, nil)

	out, err := NewHomeUseCase(articles, projects, activities, profiles, logger.NewNop()).Execute(context.Background())

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, owner, out.Profile)
	assert.Len(t, out.Articles, 1)
	assert.Empty(t, out.Projects)
	assert.NotNil(t, out.Projects)
	assert.Empty(t, out.Activities)
}

func TestHomeProfileFailureStillRendersContent(t *testing.T) {
	articles := new(mocks.ArticleRepository)
	projects := new(mocks.ProjectRepository)
	activities := new(mocks.ActivityRepository)
	profiles := new(mocks.ProfileRepository)

	articles.On("List", mock.Anything, 3).Return([]*article.Article{{ID: uuid.New()}}, nil)
	projects.On("List", mock.Anything, 3).Return(nil, nil)
	activities.On("List", mock.Anything, mock.Anything).Return(nil, nil)
	profiles.On("FindOwner", mock.Anything).Return(nil, errors.New("connection reset"))

	out, err := NewHomeUseCase(articles, projects, activities, profiles, logger.NewNop()).Execute(context.Background())

	require.NoError(t, err)
	assert.Nil(t, out.Profile)
	assert.Len(t, out.Articles, 1)
}
