package asset

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectName(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	assert.Equal(t, "article-1700000000123.png", ObjectName(PrefixArticle, "Cover.PNG", now))
	assert.Equal(t, "project-1700000000123.jpeg", ObjectName(PrefixProject, "shot.final.jpeg", now))
	assert.Equal(t, "activity-1700000000123", ObjectName(PrefixActivity, "noext", now))
}

func TestAvatarPrefix(t *testing.T) {
	id := uuid.MustParse("6f1c2a8e-4a7b-4d2b-9a39-8d6a1f0e2c11")
	assert.Equal(t, "avatar-6f1c2a8e-4a7b-4d2b-9a39-8d6a1f0e2c11", AvatarPrefix(id))
}

func TestNameFromURL(t *testing.T) {
	name, err := NameFromURL("https://x.supabase.co/storage/v1/object/public/articles/article-1.png")
	require.NoError(t, err)
	assert.Equal(t, "article-1.png", name)

	name, err = NameFromURL("https://cdn.example.com/avatars/avatar-abc-1.jpg?v=2")
	require.NoError(t, err)
	assert.Equal(t, "avatar-abc-1.jpg", name)

	name, err = NameFromURL("https://cdn.example.com/a/my%20file.png")
	require.NoError(t, err)
	assert.Equal(t, "my file.png", name)

	_, err = NameFromURL("https://cdn.example.com/")
	assert.ErrorIs(t, err, ErrInvalidURL)

	_, err = NameFromURL("://bad")
	assert.ErrorIs(t, err, ErrInvalidURL)
}
