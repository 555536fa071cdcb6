package title

import "context"

type Service interface {
	List(ctx context.Context, filter ListTitlesFilter, limit, offset int) ([]TitleResponse, int, error)
	Get(ctx context.Context, id int64) (*TitleResponse, error)
	Create(ctx context.Context, req CreateTitleRequest) (*TitleResponse, error)
	Update(ctx context.Context, id int64, req UpdateTitleRequest) (*TitleResponse, error)
	Delete(ctx context.Context, id int64) error
}
