package review

import (
	"context"

	"titledb-backend/internal/shared/auth"
)

type Service interface {
	ListByTitle(ctx context.Context, titleID int64, search string, limit, offset int) ([]Review, int, error)
	Get(ctx context.Context, titleID, id int64) (*Review, error)
	Create(ctx context.Context, p auth.Principal, titleID int64, req CreateReviewRequest) (*Review, error)
	Update(ctx context.Context, p auth.Principal, titleID, id int64, req UpdateReviewRequest) (*Review, error)
	Delete(ctx context.Context, p auth.Principal, titleID, id int64) error
}
