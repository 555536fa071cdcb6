package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The cascade and constraint semantics live entirely in the bootstrap
// DDL, so they are pinned here at the statement level.

func TestSchemaScoreConstraint(t *testing.T) {
	assert.Contains(t, schema, "CHECK (score BETWEEN 1 AND 10)")
}

func TestSchemaOneReviewPerAuthorAndTitle(t *testing.T) {
	assert.Contains(t, schema, "CONSTRAINT reviews_one_per_author_title UNIQUE (author_id, title_id)")
}

func TestSchemaCategoryDeletionNullifiesTitles(t *testing.T) {
	assert.Contains(t, schema, "category_id BIGINT REFERENCES categories(id) ON DELETE SET NULL")
}

func TestSchemaGenreDeletionNullifiesLinks(t *testing.T) {
	assert.Contains(t, schema, "genre_id BIGINT REFERENCES genres(id) ON DELETE SET NULL")
	assert.Contains(t, schema, "title_id BIGINT REFERENCES titles(id) ON DELETE SET NULL")
}

func TestSchemaReviewAndCommentCascades(t *testing.T) {
	assert.Contains(t, schema, "title_id  BIGINT   NOT NULL REFERENCES titles(id) ON DELETE CASCADE")
	assert.Contains(t, schema, "review_id BIGINT NOT NULL REFERENCES reviews(id) ON DELETE CASCADE")
}
