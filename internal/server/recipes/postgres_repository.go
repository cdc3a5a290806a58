package recipes

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

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]SavedRecipe, error) {
	query :=
		`SELECT id, user_id, title, recipe, image_key, created_at FROM saved_recipes
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	recipes := []SavedRecipe{}
	for rows.Next() {
		var rec SavedRecipe
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.Recipe, &rec.ImageKey, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return recipes, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID, id string) (*SavedRecipe, error) {
	query :=
		`SELECT id, user_id, title, recipe, image_key, created_at FROM saved_recipes
		 WHERE user_id = $1 AND id = $2
		 `

	rec := &SavedRecipe{}
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(
		&rec.ID, &rec.UserID, &rec.Title, &rec.Recipe, &rec.ImageKey, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return rec, nil
}

func (r *PostgresRepository) Create(ctx context.Context, recipe *SavedRecipe) (*SavedRecipe, error) {
	query :=
		`INSERT INTO saved_recipes (user_id, title, recipe, image_key)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		recipe.UserID, recipe.Title, recipe.Recipe, recipe.ImageKey).Scan(&recipe.ID, &recipe.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return recipe, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM saved_recipes WHERE user_id = $1 AND id = $2`

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
