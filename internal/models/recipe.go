package models

import (
	"time"
)

type Recipe struct {
	ID                uint64    `gorm:"primarykey" json:"id"`
	Title             string    `gorm:"type:varchar(100);not null" json:"title"`
	Instructions      string    `gorm:"type:varchar(1000);not null;check:instructions_min_length,length(instructions) >= 50" json:"instructions"`
	MinutesToComplete int       `gorm:"not null" json:"minutes_to_complete"`
	UserID            *uint64   `json:"user_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
