package recipes

import "context"

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]SavedRecipe, error)
	GetByID(ctx context.Context, userID, id string) (*SavedRecipe, error)
	Create(ctx context.Context, recipe *SavedRecipe) (*SavedRecipe, error)
	Delete(ctx context.Context, userID, id string) error
}
