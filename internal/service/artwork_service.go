package service

import (
	"context"
	"strings"
	"time"

	"atelier/internal/models"
	"atelier/internal/observability"
	"atelier/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

type ArtworkService struct {
	artworkRepo repository.ArtworkRepository
	isAdmin     func(ctx context.Context, userID uint) (bool, error)
}

type CreateArtworkInput struct {
	ArtistID      uint
	Title         string
	Description   string
	ImageURL      string
	Tags          []string
	Medium        string
	Year          int
	Price         float64
	ProcessImages []string
}

// UpdateArtworkInput carries a partial update. Year and Price are pointers
// so a zero value can be written back, matching UpdateProfileInput.
type UpdateArtworkInput struct {
	UserID        uint
	ArtworkID     uint
	Title         string
	Description   string
	ImageURL      string
	Tags          []string
	Medium        string
	Year          *int
	Price         *float64
	ProcessImages []string
}

type ListArtworksInput struct {
	Limit         int
	Offset        int
	CurrentUserID uint
}

type FilterArtworksInput struct {
	Medium        string
	Year          int
	Limit         int
	Offset        int
	CurrentUserID uint
}

func NewArtworkService(
	artworkRepo repository.ArtworkRepository,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
) *ArtworkService {
	return &ArtworkService{
		artworkRepo: artworkRepo,
		isAdmin:     isAdmin,
	}
}

const (
	maxTitleLen       = 200
	maxDescriptionLen = 10000
	maxTags           = 25
)

func (s *ArtworkService) CreateArtwork(ctx context.Context, in CreateArtworkInput) (*models.Artwork, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 200 characters)")
	}
	if len(in.Description) > maxDescriptionLen {
		return nil, models.NewValidationError("Description too long (max 10000 characters)")
	}
	if strings.TrimSpace(in.ImageURL) == "" {
		return nil, models.NewValidationError("Image URL is required")
	}
	if len(in.Tags) > maxTags {
		return nil, models.NewValidationError("Too many tags (max 25)")
	}
	if in.Year != 0 && (in.Year < 1000 || in.Year > time.Now().Year()+1) {
		return nil, models.NewValidationError("Year is out of range")
	}
	if in.Price < 0 {
		return nil, models.NewValidationError("Price cannot be negative")
	}

	artwork := &models.Artwork{
		ArtistID:      in.ArtistID,
		Title:         in.Title,
		Description:   in.Description,
		ImageURL:      in.ImageURL,
		Tags:          in.Tags,
		Medium:        in.Medium,
		Year:          in.Year,
		Price:         in.Price,
		ProcessImages: in.ProcessImages,
	}
	if err := s.artworkRepo.Create(ctx, artwork); err != nil {
		return nil, err
	}

	return s.artworkRepo.GetByID(ctx, artwork.ID, in.ArtistID)
}

func (s *ArtworkService) GetArtwork(ctx context.Context, id, currentUserID uint) (*models.Artwork, error) {
	return s.artworkRepo.GetByID(ctx, id, currentUserID)
}

func (s *ArtworkService) ListArtworks(ctx context.Context, in ListArtworksInput) ([]*models.Artwork, error) {
	return s.artworkRepo.List(ctx, in.Limit, in.Offset, in.CurrentUserID)
}

func (s *ArtworkService) ListByArtist(ctx context.Context, artistID uint, in ListArtworksInput) ([]*models.Artwork, error) {
	return s.artworkRepo.ListByArtist(ctx, artistID, in.Limit, in.Offset, in.CurrentUserID)
}

func (s *ArtworkService) SearchArtworks(ctx context.Context, keyword string, limit, offset int, currentUserID uint) ([]*models.Artwork, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	span, ctx := observability.NewSpan(ctx, "artwork.search")
	defer span.End()
	span.AddAttributes(attribute.Int("search.keyword_length", len(keyword)))

	observability.ArtworkSearches.Inc()
	results, err := s.artworkRepo.Search(ctx, keyword, limit, offset, currentUserID)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	span.AddAttributes(attribute.Int("search.results", len(results)))
	return results, nil
}

func (s *ArtworkService) FilterArtworks(ctx context.Context, in FilterArtworksInput) ([]*models.Artwork, error) {
	return s.artworkRepo.Filter(ctx, in.Medium, in.Year, in.Limit, in.Offset, in.CurrentUserID)
}

// UpdateArtwork merges the provided fields into the artwork. Only the owning
// artist may update; zero-valued fields are left untouched.
func (s *ArtworkService) UpdateArtwork(ctx context.Context, in UpdateArtworkInput) (*models.Artwork, error) {
	artwork, err := s.artworkRepo.GetByID(ctx, in.ArtworkID, in.UserID)
	if err != nil {
		return nil, err
	}

	if artwork.ArtistID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own artworks")
	}

	if in.Title != "" {
		if len(in.Title) > maxTitleLen {
			return nil, models.NewValidationError("Title too long (max 200 characters)")
		}
		artwork.Title = in.Title
	}
	if in.Description != "" {
		if len(in.Description) > maxDescriptionLen {
			return nil, models.NewValidationError("Description too long (max 10000 characters)")
		}
		artwork.Description = in.Description
	}
	if in.ImageURL != "" {
		artwork.ImageURL = in.ImageURL
	}
	if in.Tags != nil {
		if len(in.Tags) > maxTags {
			return nil, models.NewValidationError("Too many tags (max 25)")
		}
		artwork.Tags = in.Tags
	}
	if in.Medium != "" {
		artwork.Medium = in.Medium
	}
	if in.Year != nil {
		// Zero clears the year back to "unspecified".
		if *in.Year != 0 && (*in.Year < 1000 || *in.Year > time.Now().Year()+1) {
			return nil, models.NewValidationError("Year is out of range")
		}
		artwork.Year = *in.Year
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, models.NewValidationError("Price cannot be negative")
		}
		artwork.Price = *in.Price
	}
	if in.ProcessImages != nil {
		artwork.ProcessImages = in.ProcessImages
	}

	if err := s.artworkRepo.Update(ctx, artwork); err != nil {
		return nil, err
	}

	return s.artworkRepo.GetByID(ctx, artwork.ID, in.UserID)
}

// DeleteArtwork removes an artwork. The owner may always delete; an admin
// may delete any artwork.
func (s *ArtworkService) DeleteArtwork(ctx context.Context, artworkID, userID uint) error {
	artwork, err := s.artworkRepo.GetByID(ctx, artworkID, userID)
	if err != nil {
		return err
	}

	if artwork.ArtistID != userID {
		if s.isAdmin == nil {
			return models.NewUnauthorizedError("You can only delete your own artworks")
		}
		admin, adminErr := s.isAdmin(ctx, userID)
		if adminErr != nil {
			return adminErr
		}
		if !admin {
			return models.NewUnauthorizedError("You can only delete your own artworks")
		}
	}

	return s.artworkRepo.Delete(ctx, artworkID)
}
