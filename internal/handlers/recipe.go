package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/recipe-sharing-api/internal/dto"
	apierrors "github.com/yukikurage/recipe-sharing-api/internal/errors"
	"github.com/yukikurage/recipe-sharing-api/internal/middleware"
	"github.com/yukikurage/recipe-sharing-api/internal/services"
)

// RecipeHandler coordinates recipe HTTP handlers.
type RecipeHandler struct {
	recipeService *services.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(recipeService *services.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
	}
}

// ListRecipes returns every recipe with its serialized owner.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	if _, exists := middleware.GetUserID(c); !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	recipes, err := h.recipeService.List()
	if err != nil {
		apierrors.InternalError(c, "failed to fetch recipes")
		return
	}

	c.JSON(http.StatusOK, dto.ToRecipeDTOs(recipes))
}

// CreateRecipe creates a recipe owned by the current session user.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateRecipeRequest struct {
		Title             string `json:"title"`
		Instructions      string `json:"instructions"`
		MinutesToComplete *int   `json:"minutes_to_complete"`
	}

	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, "invalid request body")
		return
	}

	recipe, err := h.recipeService.Create(services.CreateRecipeInput{
		Title:             req.Title,
		Instructions:      req.Instructions,
		MinutesToComplete: req.MinutesToComplete,
		UserID:            &userID,
	})
	if err != nil {
		respondRecipeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRecipeDTO(*recipe))
}

func respondRecipeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrInstructionsRequired),
		errors.Is(err, services.ErrInstructionsTooShort),
		errors.Is(err, services.ErrInvalidMinutes):
		apierrors.ValidationFailed(c, err.Error())
	default:
		apierrors.ValidationFailed(c, "an error occurred while creating the recipe")
	}
}
