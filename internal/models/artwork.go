// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Artwork represents a posted piece in the Atelier application.
// An artwork is owned by exactly one artist; mutation and deletion are
// restricted to the owner at the service layer.
type Artwork struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ArtistID    uint   `gorm:"not null;index" json:"artist_id"`
	Artist      User   `gorm:"foreignKey:ArtistID" json:"artist"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `json:"image_url"`
	// Tags keeps insertion order; it is persisted as a JSON text column so the
	// search path can match substrings across the whole list.
	Tags          StringList `gorm:"type:text" json:"tags"`
	Medium        string     `gorm:"index" json:"medium"`
	Year          int        `gorm:"index" json:"year"`
	Price         float64    `json:"price"`
	ProcessImages StringList `gorm:"type:text" json:"process_images"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`
	// Liked indicates whether the current requesting user liked this artwork (computed)
	Liked     bool           `gorm:"->" json:"liked"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
