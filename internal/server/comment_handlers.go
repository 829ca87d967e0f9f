// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"atelier/internal/models"
	"atelier/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/artworks/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	artworkID, err := s.parseID(c, "id", "Artwork")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		ArtworkID: artworkID,
		UserID:    userID,
		Text:      req.Text,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments handles GET /api/artworks/:id/comments
// Comments come back oldest first by default; ?sort=newest flips the order.
func (s *Server) GetComments(c *fiber.Ctx) error {
	artworkID, err := s.parseID(c, "id", "Artwork")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 50)
	newestFirst := c.Query("sort") == "newest"

	comments, err := s.commentService.ListComments(c.Context(), service.ListCommentsInput{
		ArtworkID:   artworkID,
		Limit:       page.Limit,
		Offset:      page.Offset,
		NewestFirst: newestFirst,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	count, err := s.commentService.CountComments(c.Context(), artworkID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"comments": comments,
		"total":    count,
	})
}

// UpdateComment handles PUT /api/artworks/:id/comments/:commentId
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	if _, err := s.parseID(c, "id", "Artwork"); err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId", "Comment")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(c.Context(), service.UpdateCommentInput{
		CommentID: commentID,
		UserID:    userID,
		Text:      req.Text,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(comment)
}

// DeleteComment handles DELETE /api/artworks/:id/comments/:commentId
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	if _, err := s.parseID(c, "id", "Artwork"); err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId", "Comment")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.Context(), commentID, userID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Comment deleted",
	})
}
