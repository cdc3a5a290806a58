// Package nutrition keeps a per-day nutrition log and resolves foods
// through an external lookup provider.
package nutrition

import (
	"context"
	"errors"
	"fmt"

	"github.com/mealgenie/backend/internal/common"
)

type Service struct {
	repo   Repository
	lookup LookupClient
}

func NewService(repo Repository, lookup LookupClient) *Service {
	return &Service{repo: repo, lookup: lookup}
}

// Day returns the accumulated totals for a date. A day with no entries is
// all zeros, not an error.
func (s *Service) Day(ctx context.Context, userID, date string) (*DayTotals, error) {
	totals, err := s.repo.GetByDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return &DayTotals{UserID: userID, Date: date}, nil
		}
		return nil, err
	}
	return totals, nil
}

// Log resolves the food through the lookup provider, sums what it returned
// and folds the result into the day's totals.
func (s *Service) Log(ctx context.Context, userID, date, food string) (*DayTotals, error) {

	items, err := s.lookup.Lookup(ctx, food)
	if err != nil {
		return nil, fmt.Errorf("error looking up food: %w", err)
	}
	if len(items) == 0 {
		return nil, common.ErrNotFound
	}

	var calories, protein, fat, carbs float64
	for _, item := range items {
		calories += item.Calories
		protein += item.Protein
		fat += item.Fat
		carbs += item.Carbs
	}

	return s.repo.Add(ctx, userID, date, calories, protein, fat, carbs)
}
