package article

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello, World! 2024":       "hello-world-2024",
		"  Trim Me  ":              "trim-me",
		"Go   is\tfun":             "go-is-fun",
		"snake_case stays":         "snake_case-stays",
		"already-hyphenated title": "already-hyphenated-title",
		"Café ☕ time":              "caf-time",
		"!!!":                      "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestResolveSlug(t *testing.T) {
	assert.Equal(t, "custom", ResolveSlug("Some Title", "custom", true))
	assert.Equal(t, "some-title", ResolveSlug("Some Title", "custom", false))
	assert.Equal(t, "some-title", ResolveSlug("Some Title", "  ", true))
}

func TestValidate(t *testing.T) {
	a := &Article{Title: "Hello", Slug: "hello"}
	assert.NoError(t, a.Validate())

	a.Slug = "Hello World"
	assert.ErrorIs(t, a.Validate(), ErrInvalidSlug)

	a.Slug = ""
	assert.ErrorIs(t, a.Validate(), ErrInvalidSlug)

	a.Title = " "
	assert.ErrorIs(t, a.Validate(), ErrTitleRequired)
}
