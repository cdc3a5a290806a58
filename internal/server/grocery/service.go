// Package grocery manages per-user grocery lists.
package grocery

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, userID string) ([]Item, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Add(ctx context.Context, userID, name, quantity string) (*Item, error) {
	return s.repo.Create(ctx, &Item{UserID: userID, Name: name, Quantity: quantity})
}

func (s *Service) Update(ctx context.Context, userID, id, name, quantity string, bought bool) (*Item, error) {
	return s.repo.Update(ctx, &Item{ID: id, UserID: userID, Name: name, Quantity: quantity, Bought: bought})
}

func (s *Service) Remove(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}
