package models

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(80);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(128)" json:"-"`
	ImageURL     string    `gorm:"type:varchar(255);not null" json:"image_url"`
	Bio          string    `gorm:"type:varchar(500);not null" json:"bio"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations. Deleting a user hard-deletes their recipes via the FK constraint.
	Recipes []Recipe `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
