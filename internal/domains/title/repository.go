package title

import "context"

type Repository interface {
	Create(ctx context.Context, t *Title, genreIDs []int64) error
	// Update rewrites all columns of t; genre associations are replaced
	// only when updateGenres is set.
	Update(ctx context.Context, t *Title, genreIDs []int64, updateGenres bool) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	GetEntity(ctx context.Context, id int64) (*Title, error)
	GetByID(ctx context.Context, id int64) (*TitleResponse, error)
	List(ctx context.Context, filter ListTitlesFilter, limit, offset int) ([]TitleResponse, int, error)
}
