package service

import (
	"context"

	"atelier/internal/models"
	"atelier/internal/observability"
	"atelier/internal/repository"
)

type LikeService struct {
	likeRepo    repository.LikeRepository
	artworkRepo repository.ArtworkRepository
}

// LikeStatus reports the caller's relationship to an artwork after a
// like operation or a status query.
type LikeStatus struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"likes_count"`
}

func NewLikeService(likeRepo repository.LikeRepository, artworkRepo repository.ArtworkRepository) *LikeService {
	return &LikeService{
		likeRepo:    likeRepo,
		artworkRepo: artworkRepo,
	}
}

// Like records a like. Liking an already-liked artwork is a no-op and still
// reports liked=true.
func (s *LikeService) Like(ctx context.Context, artworkID, userID uint) (*LikeStatus, error) {
	if _, err := s.artworkRepo.GetByID(ctx, artworkID, userID); err != nil {
		return nil, err
	}

	alreadyLiked, err := s.likeRepo.Add(ctx, artworkID, userID)
	if err != nil {
		return nil, err
	}
	if !alreadyLiked {
		observability.RecordLikeToggle(true)
	}

	count, err := s.likeRepo.Count(ctx, artworkID)
	if err != nil {
		return nil, err
	}
	return &LikeStatus{Liked: true, Count: count}, nil
}

// Unlike removes a like. Unliking an artwork the user never liked is a no-op.
func (s *LikeService) Unlike(ctx context.Context, artworkID, userID uint) (*LikeStatus, error) {
	if _, err := s.artworkRepo.GetByID(ctx, artworkID, userID); err != nil {
		return nil, err
	}

	liked, err := s.likeRepo.Exists(ctx, artworkID, userID)
	if err != nil {
		return nil, err
	}
	if liked {
		if err := s.likeRepo.Remove(ctx, artworkID, userID); err != nil {
			return nil, err
		}
		observability.RecordLikeToggle(false)
	}

	count, err := s.likeRepo.Count(ctx, artworkID)
	if err != nil {
		return nil, err
	}
	return &LikeStatus{Liked: false, Count: count}, nil
}

// Toggle flips the user's like on the artwork and returns the new state.
func (s *LikeService) Toggle(ctx context.Context, artworkID, userID uint) (*LikeStatus, error) {
	if _, err := s.artworkRepo.GetByID(ctx, artworkID, userID); err != nil {
		return nil, err
	}

	alreadyLiked, err := s.likeRepo.Add(ctx, artworkID, userID)
	if err != nil {
		return nil, err
	}

	liked := true
	if alreadyLiked {
		if err := s.likeRepo.Remove(ctx, artworkID, userID); err != nil {
			return nil, err
		}
		liked = false
		observability.RecordLikeToggle(false)
	} else {
		observability.RecordLikeToggle(true)
	}

	count, err := s.likeRepo.Count(ctx, artworkID)
	if err != nil {
		return nil, err
	}
	return &LikeStatus{Liked: liked, Count: count}, nil
}

func (s *LikeService) Status(ctx context.Context, artworkID, userID uint) (*LikeStatus, error) {
	if _, err := s.artworkRepo.GetByID(ctx, artworkID, userID); err != nil {
		return nil, err
	}

	liked := false
	if userID != 0 {
		var err error
		liked, err = s.likeRepo.Exists(ctx, artworkID, userID)
		if err != nil {
			return nil, err
		}
	}

	count, err := s.likeRepo.Count(ctx, artworkID)
	if err != nil {
		return nil, err
	}
	return &LikeStatus{Liked: liked, Count: count}, nil
}

// ListLikes returns the likes on an artwork oldest first, with each
// liker's profile preloaded.
func (s *LikeService) ListLikes(ctx context.Context, artworkID uint, limit, offset int) ([]*models.Like, error) {
	if _, err := s.artworkRepo.GetByID(ctx, artworkID, 0); err != nil {
		return nil, err
	}
	return s.likeRepo.ListByArtwork(ctx, artworkID, limit, offset)
}
