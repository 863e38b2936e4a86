package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/recipe-sharing-api/internal/models"
	"github.com/yukikurage/recipe-sharing-api/internal/repository"
	"github.com/yukikurage/recipe-sharing-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrUsernameRequired   = errors.New("username required")
	ErrUsernameTaken      = errors.New("username must be unique")
	ErrImageURLRequired   = errors.New("image_url required")
	ErrBioRequired        = errors.New("bio required")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrFailedToCreateUser = errors.New("failed to create user")

	// ErrPasswordTooShort re-exports the hashing helper's validation error so
	// handlers only depend on the services package for the error taxonomy.
	ErrPasswordTooShort = utils.ErrPasswordTooShort
)

// AuthService handles authentication related business logic.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// SignupInput represents the required information to create a new user.
type SignupInput struct {
	Username string
	ImageURL string
	Bio      string
	Password string
}

// Signup validates the input and creates a new user. Username uniqueness is
// enforced by the insert itself, not by a separate lookup, so two concurrent
// signups with the same username cannot both succeed.
func (s *AuthService) Signup(input SignupInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if input.ImageURL == "" {
		return nil, ErrImageURLRequired
	}
	if input.Bio == "" {
		return nil, ErrBioRequired
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hashedPassword,
		ImageURL:     input.ImageURL,
		Bio:          input.Bio,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateUser, err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns the authenticated user. A missing
// user and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, input.Password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
