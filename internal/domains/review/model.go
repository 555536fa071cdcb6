package review

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user's single review of a title.
type Review struct {
	ID       int64
	TitleID  int64
	AuthorID uuid.UUID
	Author   string // username, populated on reads
	Text     string
	Score    int
	PubDate  time.Time
}

// Response converts to the wire shape; the author is exposed by
// username only.
func (r *Review) Response() ReviewResponse {
	return ReviewResponse{
		ID:      r.ID,
		Author:  r.Author,
		Text:    r.Text,
		Score:   r.Score,
		PubDate: r.PubDate,
	}
}
