package comment

import (
	"context"

	"titledb-backend/internal/shared/auth"
)

type Service interface {
	ListByReview(ctx context.Context, titleID, reviewID int64, search string, limit, offset int) ([]Comment, int, error)
	Get(ctx context.Context, titleID, reviewID, id int64) (*Comment, error)
	Create(ctx context.Context, p auth.Principal, titleID, reviewID int64, req CreateCommentRequest) (*Comment, error)
	Update(ctx context.Context, p auth.Principal, titleID, reviewID, id int64, req UpdateCommentRequest) (*Comment, error)
	Delete(ctx context.Context, p auth.Principal, titleID, reviewID, id int64) error
}
