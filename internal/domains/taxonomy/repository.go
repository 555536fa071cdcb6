package taxonomy

import "context"

// Repository is the data access contract shared by categories and genres.
type Repository interface {
	List(ctx context.Context, search string, limit, offset int) ([]Term, int, error)
	GetBySlug(ctx context.Context, slug string) (*Term, error)
	GetBySlugs(ctx context.Context, slugs []string) ([]Term, error)
	Create(ctx context.Context, term *Term) error
	DeleteBySlug(ctx context.Context, slug string) error
}
