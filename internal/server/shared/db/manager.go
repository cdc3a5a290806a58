// Package db wires the SQL connection to the per-domain repositories and
// applies schema migrations.
package db

import (
	"database/sql"

	"github.com/mealgenie/backend/internal/server/grocery"
	"github.com/mealgenie/backend/internal/server/nutrition"
	"github.com/mealgenie/backend/internal/server/pantry"
	"github.com/mealgenie/backend/internal/server/recipes"
	"github.com/mealgenie/backend/internal/server/users"
)

type RepositoryManager interface {
	Conn() *sql.DB
	Users() users.Repository
	Pantry() pantry.Repository
	Grocery() grocery.Repository
	Recipes() recipes.Repository
	Nutrition() nutrition.Repository
	Close() error
}
