// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on an artwork.
// UpdatedAt stays NULL until the comment is first edited; the repository sets
// it explicitly, so GORM's automatic update timestamp is disabled.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ArtworkID uint           `gorm:"not null;index" json:"artwork_id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	Text      string         `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt *time.Time     `gorm:"autoUpdateTime:false" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
