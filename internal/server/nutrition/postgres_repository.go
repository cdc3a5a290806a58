package nutrition

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mealgenie/backend/internal/common"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) GetByDate(ctx context.Context, userID, date string) (*DayTotals, error) {
	query :=
		`SELECT user_id, date, calories, protein, fat, carbs FROM nutrition_entries
		 WHERE user_id = $1 AND date = $2
		 `

	totals := &DayTotals{}
	err := r.db.QueryRowContext(ctx, query, userID, date).Scan(
		&totals.UserID, &totals.Date, &totals.Calories, &totals.Protein, &totals.Fat, &totals.Carbs)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return totals, nil
}

func (r *PostgresRepository) Add(ctx context.Context, userID, date string, calories, protein, fat, carbs float64) (*DayTotals, error) {
	query :=
		`INSERT INTO nutrition_entries (user_id, date, calories, protein, fat, carbs)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id, date) DO UPDATE SET
		   calories = nutrition_entries.calories + EXCLUDED.calories,
		   protein  = nutrition_entries.protein + EXCLUDED.protein,
		   fat      = nutrition_entries.fat + EXCLUDED.fat,
		   carbs    = nutrition_entries.carbs + EXCLUDED.carbs
		 RETURNING user_id, date, calories, protein, fat, carbs
		 `

	totals := &DayTotals{}
	err := r.db.QueryRowContext(ctx, query, userID, date, calories, protein, fat, carbs).Scan(
		&totals.UserID, &totals.Date, &totals.Calories, &totals.Protein, &totals.Fat, &totals.Carbs)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return totals, nil
}
