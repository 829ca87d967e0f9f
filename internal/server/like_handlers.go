// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"github.com/gofiber/fiber/v2"
)

// ToggleLike handles POST /api/artworks/:id/like. Posting flips the caller's
// like state and returns the resulting state with the current count.
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	artworkID, err := s.parseID(c, "id", "Artwork")
	if err != nil {
		return nil
	}

	status, err := s.likeService.Toggle(c.Context(), artworkID, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(status)
}

// UnlikeArtwork handles DELETE /api/artworks/:id/like
func (s *Server) UnlikeArtwork(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	artworkID, err := s.parseID(c, "id", "Artwork")
	if err != nil {
		return nil
	}

	status, err := s.likeService.Unlike(c.Context(), artworkID, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(status)
}

// GetLikeStatus handles GET /api/artworks/:id/like. Anonymous callers get
// liked=false with the count.
func (s *Server) GetLikeStatus(c *fiber.Ctx) error {
	artworkID, err := s.parseID(c, "id", "Artwork")
	if err != nil {
		return nil
	}
	userID, _ := s.optionalUserID(c)

	status, err := s.likeService.Status(c.Context(), artworkID, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(status)
}

// GetLikes handles GET /api/artworks/:id/likes
func (s *Server) GetLikes(c *fiber.Ctx) error {
	artworkID, err := s.parseID(c, "id", "Artwork")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 50)

	likes, err := s.likeService.ListLikes(c.Context(), artworkID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(likes)
}
