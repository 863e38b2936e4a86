package repository

import (
	"github.com/yukikurage/recipe-sharing-api/internal/models"
	"gorm.io/gorm"
)

// GormRecipeRepository is a GORM implementation of RecipeRepository
type GormRecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &GormRecipeRepository{db: db}
}

// Create inserts a new recipe inside a transaction, so a failed insert (for
// example the instructions length check constraint) leaves no partial row.
// On success the owner relation is loaded for serialization.
func (r *GormRecipeRepository) Create(recipe *models.Recipe) error {
	if err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(recipe).Error
	}); err != nil {
		return err
	}

	if recipe.UserID != nil {
		return r.db.Preload("User").First(recipe, recipe.ID).Error
	}
	return nil
}

// List retrieves all recipes with their owners preloaded
func (r *GormRecipeRepository) List() ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := r.db.Preload("User").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
