package dto

import (
	"github.com/yukikurage/recipe-sharing-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash is never part
// of any response shape.
type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	ImageURL string `json:"image_url"`
	Bio      string `json:"bio"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
		ImageURL: user.ImageURL,
		Bio:      user.Bio,
	}
}
