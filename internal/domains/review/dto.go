package review

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type ReviewResponse struct {
	ID      int64     `json:"id"`
	Author  string    `json:"author"`
	Text    string    `json:"text"`
	Score   int       `json:"score"`
	PubDate time.Time `json:"pub_date"`
}

type CreateReviewRequest struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text,
			validation.Required.Error("text is required"),
		),
		validation.Field(&r.Score,
			validation.Required.Error("score is required"),
			validation.Min(1).Error("score must be between 1 and 10"),
			validation.Max(10).Error("score must be between 1 and 10"),
		),
	)
}

// UpdateReviewRequest supports partial updates; nil fields are unchanged.
type UpdateReviewRequest struct {
	Text  *string `json:"text"`
	Score *int    `json:"score"`
}

func (r UpdateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.NilOrNotEmpty.Error("text must not be empty")),
		// Min/Max skip the zero value, which would let score 0 through
		// to the storage constraint; the pointer is checked explicitly.
		validation.Field(&r.Score, validation.By(func(value interface{}) error {
			s, _ := value.(*int)
			if s == nil {
				return nil
			}
			if *s < 1 || *s > 10 {
				return validation.NewError("validation_score", "score must be between 1 and 10")
			}
			return nil
		})),
	)
}
