package grocery

import "context"

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Item, error)
	Create(ctx context.Context, item *Item) (*Item, error)
	Update(ctx context.Context, item *Item) (*Item, error)
	Delete(ctx context.Context, userID, id string) error
}
