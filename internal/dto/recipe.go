package dto

import (
	"github.com/yukikurage/recipe-sharing-api/internal/models"
)

// RecipeDTO represents a recipe in API responses. User is the serialized
// owner, or null for an owner-less recipe.
type RecipeDTO struct {
	ID                uint64   `json:"id"`
	Title             string   `json:"title"`
	Instructions      string   `json:"instructions"`
	MinutesToComplete int      `json:"minutes_to_complete"`
	User              *UserDTO `json:"user"`
}

// ToRecipeDTO converts a Recipe model to RecipeDTO
func ToRecipeDTO(recipe models.Recipe) RecipeDTO {
	dto := RecipeDTO{
		ID:                recipe.ID,
		Title:             recipe.Title,
		Instructions:      recipe.Instructions,
		MinutesToComplete: recipe.MinutesToComplete,
	}

	// Include owner if preloaded
	if recipe.User != nil && recipe.User.ID != 0 {
		owner := ToUserDTO(*recipe.User)
		dto.User = &owner
	}

	return dto
}

// ToRecipeDTOs converts a slice of recipes for list responses
func ToRecipeDTOs(recipes []models.Recipe) []RecipeDTO {
	items := make([]RecipeDTO, len(recipes))
	for i, recipe := range recipes {
		items[i] = ToRecipeDTO(recipe)
	}
	return items
}
