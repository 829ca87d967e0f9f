// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"atelier/internal/models"
	"atelier/internal/service"

	"github.com/gofiber/fiber/v2"
)

// artworkRequest is the JSON body shared by create and update.
type artworkRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"image_url"`
	Tags          []string `json:"tags"`
	Medium        string   `json:"medium"`
	Year          int      `json:"year"`
	Price         float64  `json:"price"`
	ProcessImages []string `json:"process_images"`
}

// updateArtworkRequest is the partial-update body. Year and price are
// pointers so an explicit zero is distinguishable from an absent field.
type updateArtworkRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"image_url"`
	Tags          []string `json:"tags"`
	Medium        string   `json:"medium"`
	Year          *int     `json:"year"`
	Price         *float64 `json:"price"`
	ProcessImages []string `json:"process_images"`
}

// CreateArtwork handles POST /api/artworks
func (s *Server) CreateArtwork(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req artworkRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	artwork, err := s.artworkService.CreateArtwork(c.Context(), service.CreateArtworkInput{
		ArtistID:      userID,
		Title:         req.Title,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		Tags:          req.Tags,
		Medium:        req.Medium,
		Year:          req.Year,
		Price:         req.Price,
		ProcessImages: req.ProcessImages,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(artwork)
}

// GetArtworks handles GET /api/artworks with optional medium/year filters
func (s *Server) GetArtworks(c *fiber.Ctx) error {
	page := parsePagination(c, 20)
	userID, _ := s.optionalUserID(c)

	medium := c.Query("medium")
	year := c.QueryInt("year", 0)

	var (
		artworks []*models.Artwork
		err      error
	)
	if medium != "" || year != 0 {
		artworks, err = s.artworkService.FilterArtworks(c.Context(), service.FilterArtworksInput{
			Medium:        medium,
			Year:          year,
			Limit:         page.Limit,
			Offset:        page.Offset,
			CurrentUserID: userID,
		})
	} else {
		artworks, err = s.artworkService.ListArtworks(c.Context(), service.ListArtworksInput{
			Limit:         page.Limit,
			Offset:        page.Offset,
			CurrentUserID: userID,
		})
	}
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(artworks)
}

// SearchArtworks handles GET /api/artworks/search?q=...
func (s *Server) SearchArtworks(c *fiber.Ctx) error {
	q := c.Query("q")
	page := parsePagination(c, 10)
	userID, _ := s.optionalUserID(c)

	artworks, err := s.artworkService.SearchArtworks(c.Context(), q, page.Limit, page.Offset, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(artworks)
}

// GetArtwork handles GET /api/artworks/:id
func (s *Server) GetArtwork(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id", "Artwork")
	if err != nil {
		return nil
	}
	userID, _ := s.optionalUserID(c)

	artwork, err := s.artworkService.GetArtwork(c.Context(), id, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(artwork)
}

// GetUserArtworks handles GET /api/users/:id/artworks
func (s *Server) GetUserArtworks(c *fiber.Ctx) error {
	artistID, err := s.parseID(c, "id", "User")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)
	currentUserID, _ := s.optionalUserID(c)

	artworks, err := s.artworkService.ListByArtist(c.Context(), artistID, service.ListArtworksInput{
		Limit:         page.Limit,
		Offset:        page.Offset,
		CurrentUserID: currentUserID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(artworks)
}

// UpdateArtwork handles PUT /api/artworks/:id
func (s *Server) UpdateArtwork(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	artworkID, err := s.parseID(c, "id", "Artwork")
	if err != nil {
		return nil
	}

	var req updateArtworkRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	artwork, err := s.artworkService.UpdateArtwork(c.Context(), service.UpdateArtworkInput{
		UserID:        userID,
		ArtworkID:     artworkID,
		Title:         req.Title,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		Tags:          req.Tags,
		Medium:        req.Medium,
		Year:          req.Year,
		Price:         req.Price,
		ProcessImages: req.ProcessImages,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(artwork)
}

// DeleteArtwork handles DELETE /api/artworks/:id
func (s *Server) DeleteArtwork(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	artworkID, err := s.parseID(c, "id", "Artwork")
	if err != nil {
		return nil
	}

	if err := s.artworkService.DeleteArtwork(c.Context(), artworkID, userID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Artwork deleted",
	})
}
