package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/recipe-sharing-api/internal/constants"
	"github.com/yukikurage/recipe-sharing-api/internal/dto"
	apierrors "github.com/yukikurage/recipe-sharing-api/internal/errors"
	"github.com/yukikurage/recipe-sharing-api/internal/middleware"
	"github.com/yukikurage/recipe-sharing-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Signup registers a new user and logs them in.
func (h *AuthHandler) Signup(c *gin.Context) {
	type SignupRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
		ImageURL string `json:"image_url"`
		Bio      string `json:"bio"`
	}

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, "invalid request body")
		return
	}

	user, err := h.authService.Signup(services.SignupInput{
		Username: req.Username,
		ImageURL: req.ImageURL,
		Bio:      req.Bio,
		Password: req.Password,
	})
	if err != nil {
		respondSignupError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "failed to save session")
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// Login authenticates a user and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Unauthorized(c, "username and password required")
		return
	}
	if req.Username == "" || req.Password == "" {
		apierrors.Unauthorized(c, "username and password required")
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		// Same response for an unknown username and a wrong password.
		apierrors.Unauthorized(c, services.ErrInvalidCredentials.Error())
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "failed to save session")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Logout clears the stored session identity.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(constants.ContextKeyUserID)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "failed to logout")
		return
	}

	c.Status(http.StatusNoContent)
}

// CheckSession returns the authenticated user for the current session.
func (h *AuthHandler) CheckSession(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		// A stored identity that no longer resolves is not authenticated.
		apierrors.Unauthorized(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

func respondSignupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUsernameRequired),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrImageURLRequired),
		errors.Is(err, services.ErrBioRequired),
		errors.Is(err, services.ErrPasswordTooShort):
		apierrors.ValidationFailed(c, err.Error())
	default:
		apierrors.ValidationFailed(c, "an error occurred during signup")
	}
}
