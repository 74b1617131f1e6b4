package matches

import "context"

type Repository interface {
	List(ctx context.Context) ([]Match, error)
	GetByID(ctx context.Context, id string) (*Match, error)
	Create(ctx context.Context, match *Match) error
	Update(ctx context.Context, match *Match) error
	Delete(ctx context.Context, id string) (bool, error)
}
