// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"atelier/internal/cache"
	"atelier/internal/models"

	"gorm.io/gorm"
)

// ArtworkRepository defines the interface for artwork data operations.
// Ownership is not checked here; the service layer verifies that the acting
// user is the artist before calling Update or Delete.
type ArtworkRepository interface {
	Create(ctx context.Context, artwork *models.Artwork) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Artwork, error)
	List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Artwork, error)
	ListByArtist(ctx context.Context, artistID uint, limit, offset int, currentUserID uint) ([]*models.Artwork, error)
	Search(ctx context.Context, keyword string, limit, offset int, currentUserID uint) ([]*models.Artwork, error)
	Filter(ctx context.Context, medium string, year int, limit, offset int, currentUserID uint) ([]*models.Artwork, error)
	Update(ctx context.Context, artwork *models.Artwork) error
	Delete(ctx context.Context, id uint) error
}

type artworkRepository struct {
	db *gorm.DB
}

// NewArtworkRepository creates a new artwork repository
func NewArtworkRepository(db *gorm.DB) ArtworkRepository {
	return &artworkRepository{db: db}
}

func (r *artworkRepository) Create(ctx context.Context, artwork *models.Artwork) error {
	if err := r.db.WithContext(ctx).Create(artwork).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *artworkRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Artwork, error) {
	var artwork models.Artwork

	fetch := func() error {
		err := r.applyArtworkDetails(r.db.WithContext(ctx), currentUserID).
			Preload("Artist").
			First(&artwork, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Artwork", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	}

	var err error
	if currentUserID == 0 {
		// The anonymous view has no per-user liked flag, so it is safe
		// to share across callers.
		err = cache.Aside(ctx, cache.ArtworkKey(id), &artwork, cache.ArtworkTTL, fetch)
	} else {
		err = fetch()
	}
	if err != nil {
		return nil, err
	}
	return &artwork, nil
}

func (r *artworkRepository) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Artwork, error) {
	var artworks []*models.Artwork
	err := r.applyArtworkDetails(r.db.WithContext(ctx), currentUserID).
		Preload("Artist").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&artworks).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return artworks, nil
}

func (r *artworkRepository) ListByArtist(ctx context.Context, artistID uint, limit, offset int, currentUserID uint) ([]*models.Artwork, error) {
	var artworks []*models.Artwork
	err := r.applyArtworkDetails(r.db.WithContext(ctx), currentUserID).
		Preload("Artist").
		Where("artist_id = ?", artistID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&artworks).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return artworks, nil
}

// Search performs a case-insensitive substring match over title, description
// and tags (OR semantics, unranked). Tags are a JSON text column, so the
// substring match covers every element of the list.
func (r *artworkRepository) Search(ctx context.Context, keyword string, limit, offset int, currentUserID uint) ([]*models.Artwork, error) {
	var artworks []*models.Artwork
	like := "%" + strings.ToLower(keyword) + "%"
	err := r.applyArtworkDetails(r.db.WithContext(ctx), currentUserID).
		Preload("Artist").
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(tags) LIKE ?", like, like, like).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&artworks).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return artworks, nil
}

// Filter returns artworks matching every provided field exactly (AND
// semantics); zero values leave that field unconstrained.
func (r *artworkRepository) Filter(ctx context.Context, medium string, year int, limit, offset int, currentUserID uint) ([]*models.Artwork, error) {
	var artworks []*models.Artwork
	q := r.applyArtworkDetails(r.db.WithContext(ctx), currentUserID).
		Preload("Artist")
	if medium != "" {
		q = q.Where("medium = ?", medium)
	}
	if year != 0 {
		q = q.Where("year = ?", year)
	}
	err := q.Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&artworks).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return artworks, nil
}

// applyArtworkDetails adds subqueries to fetch counts and liked status in a single query.
func (r *artworkRepository) applyArtworkDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "artworks.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.artwork_id = artworks.id AND comments.deleted_at IS NULL) as comments_count, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.artwork_id = artworks.id) as likes_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.artwork_id = artworks.id AND likes.user_id = ?) as liked", currentUserID)
	}

	return db.Select(selectQuery + ", false as liked")
}

func (r *artworkRepository) Update(ctx context.Context, artwork *models.Artwork) error {
	if err := r.db.WithContext(ctx).Save(artwork).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateArtwork(ctx, artwork.ID)
	return nil
}

// Delete removes the artwork together with its comments and likes in one
// transaction, so count queries never see orphaned children.
func (r *artworkRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("artwork_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("artwork_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Artwork{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateArtwork(ctx, id)
	return nil
}
