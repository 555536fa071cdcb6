package review

import "context"

type Repository interface {
	// Create fills ID and PubDate. The (author, title) uniqueness
	// constraint surfaces as ErrAlreadyReviewed, including under
	// concurrent creates.
	Create(ctx context.Context, r *Review) error
	GetByID(ctx context.Context, titleID, id int64) (*Review, error)
	ListByTitle(ctx context.Context, titleID int64, search string, limit, offset int) ([]Review, int, error)
	Update(ctx context.Context, r *Review) error
	Delete(ctx context.Context, titleID, id int64) error
}
