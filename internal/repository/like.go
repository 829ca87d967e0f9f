// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"atelier/internal/cache"
	"atelier/internal/models"

	"gorm.io/gorm"
)

// LikeRepository defines the interface for like membership operations.
// A like is a unique (artwork_id, user_id) row; existence is the signal.
type LikeRepository interface {
	// Add inserts the like if absent. It reports whether the pair was
	// already present, so callers can distinguish a fresh like from a
	// repeated one without an extra query.
	Add(ctx context.Context, artworkID, userID uint) (alreadyLiked bool, err error)
	Remove(ctx context.Context, artworkID, userID uint) error
	Exists(ctx context.Context, artworkID, userID uint) (bool, error)
	Count(ctx context.Context, artworkID uint) (int64, error)
	ListByArtwork(ctx context.Context, artworkID uint, limit, offset int) ([]*models.Like, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Add(ctx context.Context, artworkID, userID uint) (bool, error) {
	// INSERT ... ON CONFLICT DO NOTHING rides on the unique index, so two
	// racing adds converge on a single row without a duplicate-key error.
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO likes (artwork_id, user_id, created_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (artwork_id, user_id) DO NOTHING`,
		artworkID, userID,
	)
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	cache.InvalidateArtwork(ctx, artworkID)
	return result.RowsAffected == 0, nil
}

func (r *likeRepository) Remove(ctx context.Context, artworkID, userID uint) error {
	err := r.db.WithContext(ctx).
		Where("artwork_id = ? AND user_id = ?", artworkID, userID).
		Delete(&models.Like{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateArtwork(ctx, artworkID)
	return nil
}

func (r *likeRepository) Exists(ctx context.Context, artworkID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("artwork_id = ? AND user_id = ?", artworkID, userID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *likeRepository) Count(ctx context.Context, artworkID uint) (int64, error) {
	var count int64
	err := cache.Aside(ctx, cache.LikeCountKey(artworkID), &count, cache.LikeCountTTL, func() error {
		err := r.db.WithContext(ctx).
			Model(&models.Like{}).
			Where("artwork_id = ?", artworkID).
			Count(&count).Error
		if err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *likeRepository) ListByArtwork(ctx context.Context, artworkID uint, limit, offset int) ([]*models.Like, error) {
	var likes []*models.Like
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("artwork_id = ?", artworkID).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&likes).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return likes, nil
}
