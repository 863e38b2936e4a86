package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/recipe-sharing-api/internal/constants"
	"github.com/yukikurage/recipe-sharing-api/internal/models"
	"github.com/yukikurage/recipe-sharing-api/internal/repository"
)

var (
	ErrTitleRequired        = errors.New("title required")
	ErrInstructionsRequired = errors.New("instructions required")
	ErrInstructionsTooShort = errors.New("instructions too short")
	ErrInvalidMinutes       = errors.New("minutes_to_complete must be a positive integer")
	ErrFailedToCreateRecipe = errors.New("failed to create recipe")
)

// RecipeService handles recipe business logic.
type RecipeService struct {
	recipeRepo repository.RecipeRepository
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(recipeRepo repository.RecipeRepository) *RecipeService {
	return &RecipeService{
		recipeRepo: recipeRepo,
	}
}

// CreateRecipeInput represents the required information to create a recipe.
// MinutesToComplete is a pointer so an absent value is distinguishable from zero.
type CreateRecipeInput struct {
	Title             string
	Instructions      string
	MinutesToComplete *int
	UserID            *uint64
}

// Create validates the input and persists a new recipe owned by UserID.
// The instructions minimum length is also enforced by a database check
// constraint, so an insert that bypasses this validation still fails.
func (s *RecipeService) Create(input CreateRecipeInput) (*models.Recipe, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if input.Instructions == "" {
		return nil, ErrInstructionsRequired
	}
	if len(input.Instructions) < constants.MinInstructionsLength {
		return nil, ErrInstructionsTooShort
	}
	if input.MinutesToComplete == nil || *input.MinutesToComplete <= 0 {
		return nil, ErrInvalidMinutes
	}

	recipe := &models.Recipe{
		Title:             input.Title,
		Instructions:      input.Instructions,
		MinutesToComplete: *input.MinutesToComplete,
		UserID:            input.UserID,
	}

	if err := s.recipeRepo.Create(recipe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateRecipe, err)
	}

	return recipe, nil
}

// List returns every recipe with its owner loaded.
func (s *RecipeService) List() ([]models.Recipe, error) {
	recipes, err := s.recipeRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}
