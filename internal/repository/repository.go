package repository

import (
	"github.com/yukikurage/recipe-sharing-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user. Username uniqueness is enforced by the
	// database unique index; a conflicting insert returns ErrDuplicateUsername.
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by exact username
	FindByUsername(username string) (*models.User, error)
}

// RecipeRepository defines the interface for recipe data access
type RecipeRepository interface {
	// Create inserts a new recipe and reloads it with its owner
	Create(recipe *models.Recipe) error

	// List retrieves all recipes with their owners preloaded
	List() ([]models.Recipe, error)
}
