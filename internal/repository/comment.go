// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	"atelier/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines interface for comment operations.
// Update and Delete carry the ownership filter into the query itself: the
// WHERE clause requires a matching user_id unless admin is set, and the
// returned count reports how many rows matched. Zero means the comment is
// missing or owned by someone else; callers translate that into a
// permission error.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListByArtwork(ctx context.Context, artworkID uint, limit, offset int, newestFirst bool) ([]*models.Comment, error)
	Update(ctx context.Context, commentID, userID uint, text string, admin bool) (int64, error)
	Delete(ctx context.Context, commentID, userID uint, admin bool) (int64, error)
	Count(ctx context.Context, artworkID uint) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	// UpdatedAt stays NULL until the first edit.
	comment.UpdatedAt = nil
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).Preload("User").First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *commentRepository) ListByArtwork(ctx context.Context, artworkID uint, limit, offset int, newestFirst bool) ([]*models.Comment, error) {
	order := "created_at ASC, id ASC"
	if newestFirst {
		order = "created_at DESC, id DESC"
	}

	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("artwork_id = ?", artworkID).
		Order(order).
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, commentID, userID uint, text string, admin bool) (int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Comment{}).Where("id = ?", commentID)
	if !admin {
		q = q.Where("user_id = ?", userID)
	}

	now := time.Now().UTC()
	result := q.Updates(map[string]any{
		"text":       text,
		"updated_at": now,
	})
	if result.Error != nil {
		return 0, models.NewInternalError(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *commentRepository) Delete(ctx context.Context, commentID, userID uint, admin bool) (int64, error) {
	q := r.db.WithContext(ctx).Where("id = ?", commentID)
	if !admin {
		q = q.Where("user_id = ?", userID)
	}

	result := q.Delete(&models.Comment{})
	if result.Error != nil {
		return 0, models.NewInternalError(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *commentRepository) Count(ctx context.Context, artworkID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("artwork_id = ?", artworkID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
