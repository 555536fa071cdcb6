package comment

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a remark on a review. It shares the review's record shape
// minus the score: text, author, creation-time pub_date.
type Comment struct {
	ID       int64
	ReviewID int64
	AuthorID uuid.UUID
	Author   string // username, populated on reads
	Text     string
	PubDate  time.Time
}

func (cm *Comment) Response() CommentResponse {
	return CommentResponse{
		ID:      cm.ID,
		Author:  cm.Author,
		Text:    cm.Text,
		PubDate: cm.PubDate,
	}
}
