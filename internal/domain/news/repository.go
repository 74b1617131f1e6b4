package news

import "context"

type Repository interface {
	List(ctx context.Context) ([]NewsItem, error)
	GetByID(ctx context.Context, id string) (*NewsItem, error)
	Create(ctx context.Context, item *NewsItem) error
	Update(ctx context.Context, item *NewsItem) error
	Delete(ctx context.Context, id string) (bool, error)
}
