package models

import "time"

// Like represents a user's like on an artwork.
// The (artwork_id, user_id) pair is unique at the storage level; the insert
// path relies on that constraint for idempotence, so likes are hard rows with
// no soft delete.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ArtworkID uint      `gorm:"not null;uniqueIndex:idx_artwork_user" json:"artwork_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_artwork_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
