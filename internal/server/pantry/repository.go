package pantry

import "context"

// Repository operations are always scoped to a user so one account can
// never touch another account's items.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Item, error)
	Create(ctx context.Context, item *Item) (*Item, error)
	Update(ctx context.Context, item *Item) (*Item, error)
	Delete(ctx context.Context, userID, id string) error
}
