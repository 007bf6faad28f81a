package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagSetCommitDeduplicates(t *testing.T) {
	s := NewTagSet()
	assert.True(t, s.Commit("React"))
	assert.False(t, s.Commit("React"))
	assert.False(t, s.Commit("  React "))
	assert.False(t, s.Commit("   "))
	assert.Equal(t, []string{"React"}, s.Tags())
}

func TestTagSetRemoveKeepsOrder(t *testing.T) {
	s := NewTagSet("Go", "React", "Postgres")
	s.Remove("React")
	s.Remove("Missing")
	assert.Equal(t, []string{"Go", "Postgres"}, s.Tags())
	assert.True(t, s.Commit("React"))
	assert.Equal(t, []string{"Go", "Postgres", "React"}, s.Tags())
}

func TestNormalizeStack(t *testing.T) {
	got := NormalizeStack([]string{"Go, React", "Go", "", " Docker ,,"})
	assert.Equal(t, []string{"Go", "React", "Docker"}, got)
	assert.Empty(t, NormalizeStack(nil))
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, (&Project{}).Validate(), ErrTitleRequired)
	assert.NoError(t, (&Project{Title: "Site"}).Validate())
}
