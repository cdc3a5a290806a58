package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/mealgenie/backend/internal/server/grocery"
	"github.com/mealgenie/backend/internal/server/migrations"
	"github.com/mealgenie/backend/internal/server/nutrition"
	"github.com/mealgenie/backend/internal/server/pantry"
	"github.com/mealgenie/backend/internal/server/recipes"
	"github.com/mealgenie/backend/internal/server/users"
)

type PostgresRepositoryManager struct {
	db        *sql.DB
	users     users.Repository
	pantry    pantry.Repository
	grocery   grocery.Repository
	recipes   recipes.Repository
	nutrition nutrition.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) Pantry() pantry.Repository {
	return m.pantry
}

func (m *PostgresRepositoryManager) Grocery() grocery.Repository {
	return m.grocery
}

func (m *PostgresRepositoryManager) Recipes() recipes.Repository {
	return m.recipes
}

func (m *PostgresRepositoryManager) Nutrition() nutrition.Repository {
	return m.nutrition
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(dsn string) (*PostgresRepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	usersRepo, err := users.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("users repo creation error: %w", err)
	}

	pantryRepo, err := pantry.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("pantry repo creation error: %w", err)
	}

	groceryRepo, err := grocery.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("grocery repo creation error: %w", err)
	}

	recipesRepo, err := recipes.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("recipes repo creation error: %w", err)
	}

	nutritionRepo, err := nutrition.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("nutrition repo creation error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:        db,
		users:     usersRepo,
		pantry:    pantryRepo,
		grocery:   groceryRepo,
		recipes:   recipesRepo,
		nutrition: nutritionRepo,
	}

	if err := m.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
