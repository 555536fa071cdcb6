package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateReviewRequestValidate(t *testing.T) {
	assert.NoError(t, CreateReviewRequest{Text: "fine", Score: 1}.Validate())
	assert.NoError(t, CreateReviewRequest{Text: "fine", Score: 10}.Validate())

	assert.Error(t, CreateReviewRequest{Score: 5}.Validate())
	assert.Error(t, CreateReviewRequest{Text: "fine"}.Validate())
	assert.Error(t, CreateReviewRequest{Text: "fine", Score: 11}.Validate())
}

func TestUpdateReviewRequestAllowsEmpty(t *testing.T) {
	assert.NoError(t, UpdateReviewRequest{}.Validate())
}

func TestUpdateReviewRequestScoreBounds(t *testing.T) {
	for _, score := range []int{1, 5, 10} {
		s := score
		assert.NoError(t, UpdateReviewRequest{Score: &s}.Validate(), score)
	}

	// The zero value must be rejected here, not by the storage layer.
	for _, score := range []int{0, -1, 11} {
		s := score
		assert.Error(t, UpdateReviewRequest{Score: &s}.Validate(), score)
	}
}

func TestUpdateReviewRequestRejectsEmptyText(t *testing.T) {
	empty := ""
	assert.Error(t, UpdateReviewRequest{Text: &empty}.Validate())
}
