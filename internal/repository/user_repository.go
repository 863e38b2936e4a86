package repository

import (
	"errors"
	"fmt"

	"github.com/yukikurage/recipe-sharing-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateUsername is returned when an insert collides with the
	// unique index on users.username.
	ErrDuplicateUsername = errors.New("user repository: username already taken")
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts a new user. The insert and the uniqueness check are a single
// atomic operation: the unique index rejects a duplicate username, which the
// driver surfaces as gorm.ErrDuplicatedKey. Running inside a transaction means
// nothing is left behind on failure.
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: %v", ErrDuplicateUsername, err)
			}
			return err
		}
		return nil
	})
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by exact username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
