package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dimasadrian/portfolio/internal/application/mocks"
)

func TestStatsCountsAllTables(t *testing.T) {
	articles := new(mocks.ArticleRepository)
	projects := new(mocks.ProjectRepository)
	activities := new(mocks.ActivityRepository)
	articles.On("Count", mock.Anything).Return(7, nil)
	projects.On("Count", mock.Anything).Return(3, nil)
	activities.On("Count", mock.Anything).Return(12, nil)

	out, err := NewStatsUseCase(articles, projects, activities).Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &StatsOutput{Articles: 7, Projects: 3, Activities: 12}, out)
}

func TestStatsFailsWhenOneCountFails(t *testing.T) {
	articles := new(mocks.ArticleRepository)
	projects := new(mocks.ProjectRepository)
	activities := new(mocks.ActivityRepository)
	articles.On("Count", mock.Anything).Return(7, nil)
	projects.On("Count", mock.Anything).Return(0, errors.New("db down"))
	activities.On("Count", mock.Anything).Return(12, nil).Maybe()

	_, err := NewStatsUseCase(articles, projects, activities).Execute(context.Background())
	assert.Error(t, err)
}
