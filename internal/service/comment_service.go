package service

import (
	"context"
	"strings"

	"atelier/internal/models"
	"atelier/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	artworkRepo repository.ArtworkRepository
	isAdmin     func(ctx context.Context, userID uint) (bool, error)
}

type CreateCommentInput struct {
	ArtworkID uint
	UserID    uint
	Text      string
}

type ListCommentsInput struct {
	ArtworkID   uint
	Limit       int
	Offset      int
	NewestFirst bool
}

type UpdateCommentInput struct {
	CommentID uint
	UserID    uint
	Text      string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	artworkRepo repository.ArtworkRepository,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		artworkRepo: artworkRepo,
		isAdmin:     isAdmin,
	}
}

const maxCommentLen = 2000

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Comment text is required")
	}
	if len(text) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 2000 characters)")
	}

	if _, err := s.artworkRepo.GetByID(ctx, in.ArtworkID, in.UserID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ArtworkID: in.ArtworkID,
		UserID:    in.UserID,
		Text:      text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

func (s *CommentService) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

func (s *CommentService) ListComments(ctx context.Context, in ListCommentsInput) ([]*models.Comment, error) {
	if _, err := s.artworkRepo.GetByID(ctx, in.ArtworkID, 0); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByArtwork(ctx, in.ArtworkID, in.Limit, in.Offset, in.NewestFirst)
}

func (s *CommentService) CountComments(ctx context.Context, artworkID uint) (int64, error) {
	return s.commentRepo.Count(ctx, artworkID)
}

// UpdateComment edits the comment text. Only the author may edit; the
// ownership check rides on the repository's filtered update, so a non-author
// never modifies the row.
func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Comment text is required")
	}
	if len(text) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 2000 characters)")
	}

	affected, err := s.commentRepo.Update(ctx, in.CommentID, in.UserID, text, false)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// Either the comment does not exist or it belongs to someone else.
		if _, err := s.commentRepo.GetByID(ctx, in.CommentID); err != nil {
			return nil, err
		}
		return nil, models.NewUnauthorizedError("You can only edit your own comments")
	}

	return s.commentRepo.GetByID(ctx, in.CommentID)
}

// DeleteComment removes a comment. The author may always delete; an admin
// may delete any comment.
func (s *CommentService) DeleteComment(ctx context.Context, commentID, userID uint) error {
	admin := false
	if s.isAdmin != nil {
		var err error
		admin, err = s.isAdmin(ctx, userID)
		if err != nil {
			return err
		}
	}

	affected, err := s.commentRepo.Delete(ctx, commentID, userID, admin)
	if err != nil {
		return err
	}
	if affected == 0 {
		if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
			return err
		}
		return models.NewUnauthorizedError("You can only delete your own comments")
	}
	return nil
}
