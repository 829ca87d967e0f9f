// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an artist account in the Atelier application.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
	BannerImage  string `json:"banner_image"`
	// SocialLinks maps a provider name ("instagram", "behance", ...) to a profile URL.
	SocialLinks StringMap      `gorm:"type:text" json:"social_links"`
	IsAdmin     bool           `gorm:"default:false" json:"is_admin"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Artworks    []Artwork      `gorm:"foreignKey:ArtistID" json:"artworks,omitempty"`
}
