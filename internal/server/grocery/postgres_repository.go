package grocery

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

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Item, error) {
	query :=
		`SELECT id, user_id, name, quantity, bought FROM grocery_items
		 WHERE user_id = $1
		 ORDER BY bought, name
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.UserID, &item.Name, &item.Quantity, &item.Bought); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *Item) (*Item, error) {
	query :=
		`INSERT INTO grocery_items (user_id, name, quantity, bought)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		item.UserID, item.Name, item.Quantity, item.Bought).Scan(&item.ID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) Update(ctx context.Context, item *Item) (*Item, error) {
	query :=
		`UPDATE grocery_items SET name = $3, quantity = $4, bought = $5
		 WHERE user_id = $1 AND id = $2
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		item.UserID, item.ID, item.Name, item.Quantity, item.Bought).Scan(&item.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM grocery_items WHERE user_id = $1 AND id = $2`

	res, err := r.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
