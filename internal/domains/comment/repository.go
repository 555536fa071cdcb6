package comment

import "context"

type Repository interface {
	// Create fills ID and PubDate.
	Create(ctx context.Context, cm *Comment) error
	GetByID(ctx context.Context, reviewID, id int64) (*Comment, error)
	ListByReview(ctx context.Context, reviewID int64, search string, limit, offset int) ([]Comment, int, error)
	Update(ctx context.Context, cm *Comment) error
	Delete(ctx context.Context, reviewID, id int64) error
}
