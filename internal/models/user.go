package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'CLIENT'" json:"role"`

	// Barber-only profile fields.
	Bio      string `gorm:"size:500" json:"bio"`
	PhotoURL string `gorm:"size:500" json:"photo_url"`
	Active   bool   `gorm:"default:true" json:"active"`

	// Push notification device token, empty if the user never registered one.
	FCMToken string `gorm:"size:255" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
