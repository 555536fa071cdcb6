package taxonomy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateTermRequestValidate(t *testing.T) {
	assert.NoError(t, CreateTermRequest{Name: "Science Fiction", Slug: "sci-fi"}.Validate())
	assert.NoError(t, CreateTermRequest{Name: "Books"}.Validate())

	assert.Error(t, CreateTermRequest{Slug: "no-name"}.Validate())
	assert.Error(t, CreateTermRequest{Name: "Bad", Slug: "has spaces"}.Validate())
	assert.Error(t, CreateTermRequest{Name: "Bad", Slug: strings.Repeat("x", maxSlugLength+1)}.Validate())
}

func TestTermGeneratesSlugFromName(t *testing.T) {
	term := CreateTermRequest{Name: "Science Fiction"}.Term()
	assert.Equal(t, "science-fiction", term.Slug)
}

func TestTermKeepsExplicitSlug(t *testing.T) {
	term := CreateTermRequest{Name: "Science Fiction", Slug: "scifi"}.Term()
	assert.Equal(t, "scifi", term.Slug)
}

func TestTermTruncatesGeneratedSlug(t *testing.T) {
	term := CreateTermRequest{Name: strings.Repeat("very long name ", 10)}.Term()
	assert.LessOrEqual(t, len(term.Slug), maxSlugLength)
	assert.NotEmpty(t, term.Slug)
}
