package nutrition

import "context"

type Repository interface {
	// GetByDate returns the accumulated totals for the day, or
	// common.ErrNotFound when nothing was logged yet.
	GetByDate(ctx context.Context, userID, date string) (*DayTotals, error)

	// Add folds the deltas into the day's row, creating it when absent. The
	// upsert is a single statement so concurrent logs cannot lose updates.
	Add(ctx context.Context, userID, date string, calories, protein, fat, carbs float64) (*DayTotals, error)
}
