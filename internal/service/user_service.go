package service

import (
	"context"
	"strings"

	"atelier/internal/models"
	"atelier/internal/repository"
	"atelier/internal/validation"
)

type UserService struct {
	userRepo repository.UserRepository
}

type UpdateProfileInput struct {
	UserID       uint
	Username     string
	Bio          *string
	ProfileImage *string
	BannerImage  *string
	SocialLinks  models.StringMap
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.userRepo.GetByUsername(ctx, username)
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// UpdateProfile applies the provided profile fields. Pointer fields
// distinguish "clear this" from "leave unchanged".
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Username != "" && in.Username != user.Username {
		if err := validation.ValidateUsername(in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		existing, err := s.userRepo.GetByUsername(ctx, in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, models.NewConflictError("Username is already taken")
		}
		user.Username = in.Username
	}
	if in.Bio != nil {
		if len(*in.Bio) > 1000 {
			return nil, models.NewValidationError("Bio too long (max 1000 characters)")
		}
		user.Bio = *in.Bio
	}
	if in.ProfileImage != nil {
		user.ProfileImage = *in.ProfileImage
	}
	if in.BannerImage != nil {
		user.BannerImage = *in.BannerImage
	}
	if in.SocialLinks != nil {
		for provider, url := range in.SocialLinks {
			if strings.TrimSpace(provider) == "" || strings.TrimSpace(url) == "" {
				return nil, models.NewValidationError("Social links must have a provider and a URL")
			}
		}
		user.SocialLinks = in.SocialLinks
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, user.ID)
}

// DeleteAccount removes the user's own account.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}

// IsAdmin reports whether the user has the admin flag. Services take this
// as an injected func so tests can stub it without a user repository.
func (s *UserService) IsAdmin(ctx context.Context, userID uint) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.IsAdmin, nil
}
