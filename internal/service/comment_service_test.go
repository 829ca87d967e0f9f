package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"atelier/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn        func(context.Context, *models.Comment) error
	getByIDFn       func(context.Context, uint) (*models.Comment, error)
	listByArtworkFn func(context.Context, uint, int, int, bool) ([]*models.Comment, error)
	updateFn        func(context.Context, uint, uint, string, bool) (int64, error)
	deleteFn        func(context.Context, uint, uint, bool) (int64, error)
	countFn         func(context.Context, uint) (int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByArtwork(ctx context.Context, artworkID uint, limit, offset int, newestFirst bool) ([]*models.Comment, error) {
	return s.listByArtworkFn(ctx, artworkID, limit, offset, newestFirst)
}
func (s *commentRepoStub) Update(ctx context.Context, commentID, userID uint, text string, admin bool) (int64, error) {
	return s.updateFn(ctx, commentID, userID, text, admin)
}
func (s *commentRepoStub) Delete(ctx context.Context, commentID, userID uint, admin bool) (int64, error) {
	return s.deleteFn(ctx, commentID, userID, admin)
}
func (s *commentRepoStub) Count(ctx context.Context, artworkID uint) (int64, error) {
	return s.countFn(ctx, artworkID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:  func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listByArtworkFn: func(_ context.Context, _ uint, _, _ int, _ bool) ([]*models.Comment, error) {
			return nil, nil
		},
		updateFn: func(_ context.Context, _, _ uint, _ string, _ bool) (int64, error) { return 1, nil },
		deleteFn: func(_ context.Context, _, _ uint, _ bool) (int64, error) { return 1, nil },
		countFn:  func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

func TestCommentService_CreateComment_Validation(t *testing.T) {
	t.Parallel()

	svc := NewCommentService(noopCommentRepo(), noopArtworkRepo(), nil)
	ctx := context.Background()

	t.Run("empty text", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateComment(ctx, CreateCommentInput{UserID: 1, ArtworkID: 1})
		assertValidationError(t, err)
	})

	t.Run("whitespace only text", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateComment(ctx, CreateCommentInput{UserID: 1, ArtworkID: 1, Text: "   \n\t"})
		assertValidationError(t, err)
	})

	t.Run("text too long", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateComment(ctx, CreateCommentInput{
			UserID:    1,
			ArtworkID: 1,
			Text:      strings.Repeat("x", 2001),
		})
		assertValidationError(t, err)
	})

	t.Run("missing artwork propagates not found", func(t *testing.T) {
		t.Parallel()
		artworkRepo := noopArtworkRepo()
		artworkRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Artwork, error) {
			return nil, models.NewNotFoundError("Artwork", id)
		}
		svc2 := NewCommentService(noopCommentRepo(), artworkRepo, nil)
		_, err := svc2.CreateComment(ctx, CreateCommentInput{UserID: 1, ArtworkID: 99, Text: "hi"})
		assertNotFoundError(t, err)
	})
}

func TestCommentService_CreateComment_Success(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.createFn = func(_ context.Context, c *models.Comment) error {
		c.ID = 42
		return nil
	}
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, Text: "lovely brushwork", UserID: 1, ArtworkID: 1}, nil
	}

	svc := NewCommentService(commentRepo, noopArtworkRepo(), nil)
	comment, err := svc.CreateComment(context.Background(), CreateCommentInput{
		UserID:    1,
		ArtworkID: 1,
		Text:      "  lovely brushwork  ",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), comment.ID)
	assert.Equal(t, "lovely brushwork", comment.Text)
}

func TestCommentService_UpdateComment_Ownership(t *testing.T) {
	t.Parallel()

	t.Run("non-owner gets unauthorized when comment exists", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.updateFn = func(_ context.Context, _, _ uint, _ string, _ bool) (int64, error) {
			return 0, nil
		}
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, UserID: 10}, nil
		}
		svc := NewCommentService(commentRepo, noopArtworkRepo(), nil)
		_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{UserID: 1, CommentID: 1, Text: "new"})
		assertUnauthorizedError(t, err)
	})

	t.Run("missing comment reports not found", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.updateFn = func(_ context.Context, _, _ uint, _ string, _ bool) (int64, error) {
			return 0, nil
		}
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		svc := NewCommentService(commentRepo, noopArtworkRepo(), nil)
		_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{UserID: 1, CommentID: 99, Text: "new"})
		assertNotFoundError(t, err)
	})

	t.Run("empty text is invalid", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(noopCommentRepo(), noopArtworkRepo(), nil)
		_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{UserID: 1, CommentID: 1, Text: ""})
		assertValidationError(t, err)
	})

	t.Run("owner can update text", func(t *testing.T) {
		t.Parallel()
		storedText := "old"
		commentRepo := noopCommentRepo()
		commentRepo.updateFn = func(_ context.Context, _, _ uint, text string, _ bool) (int64, error) {
			storedText = text
			return 1, nil
		}
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, UserID: 1, Text: storedText}, nil
		}
		svc := NewCommentService(commentRepo, noopArtworkRepo(), nil)
		comment, err := svc.UpdateComment(context.Background(), UpdateCommentInput{UserID: 1, CommentID: 1, Text: "updated"})
		require.NoError(t, err)
		assert.Equal(t, "updated", comment.Text)
	})
}

func TestCommentService_DeleteComment_Ownership(t *testing.T) {
	t.Parallel()

	t.Run("owner can delete", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(noopCommentRepo(), noopArtworkRepo(), nil)
		require.NoError(t, svc.DeleteComment(context.Background(), 1, 1))
	})

	t.Run("non-owner gets unauthorized when comment exists", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.deleteFn = func(_ context.Context, _, _ uint, _ bool) (int64, error) {
			return 0, nil
		}
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, UserID: 10}, nil
		}
		svc := NewCommentService(commentRepo, noopArtworkRepo(), nil)
		err := svc.DeleteComment(context.Background(), 1, 1)
		assertUnauthorizedError(t, err)
	})

	t.Run("admin delete passes the admin flag through", func(t *testing.T) {
		t.Parallel()
		var sawAdmin bool
		commentRepo := noopCommentRepo()
		commentRepo.deleteFn = func(_ context.Context, _, _ uint, admin bool) (int64, error) {
			sawAdmin = admin
			return 1, nil
		}
		isAdmin := func(_ context.Context, _ uint) (bool, error) { return true, nil }
		svc := NewCommentService(commentRepo, noopArtworkRepo(), isAdmin)
		require.NoError(t, svc.DeleteComment(context.Background(), 1, 1))
		assert.True(t, sawAdmin)
	})

	t.Run("isAdmin error propagates", func(t *testing.T) {
		t.Parallel()
		adminErr := errors.New("admin check failed")
		isAdmin := func(_ context.Context, _ uint) (bool, error) { return false, adminErr }
		svc := NewCommentService(noopCommentRepo(), noopArtworkRepo(), isAdmin)
		err := svc.DeleteComment(context.Background(), 1, 1)
		assert.ErrorIs(t, err, adminErr)
	})
}
