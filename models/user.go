package models

import (
	"time"
)

// User represents a storefront customer
type User struct {
	ID           uint      `gorm:"primaryKey" json:"user_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	MobileNumber string    `gorm:"uniqueIndex;not null" json:"mobile_number"`
	Password     string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
