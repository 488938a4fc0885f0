package profile

import (
	"context"

	"github.com/tbanda/vendora-backend/internal/apperr"
	"github.com/tbanda/vendora-backend/internal/attachment"
)

// profilePicturesCollection is where user profile pictures are stored.
const profilePicturesCollection = "profile_pictures"

// Service defines the interface for profile business logic.
type Service interface {
	GetUserInfo(ctx context.Context, userID int64) (*User, error)
	UpdatePicture(ctx context.Context, userID int64, up *attachment.Upload) (string, error)
}

type service struct {
	repo       Repository
	resolver   *attachment.Resolver
	defaultPfp string
}

// NewService creates a new profile service. defaultPfp is the sentinel
// reference substituted for users without a stored picture.
func NewService(repo Repository, resolver *attachment.Resolver, defaultPfp string) Service {
	return &service{repo: repo, resolver: resolver, defaultPfp: defaultPfp}
}

func (s *service) GetUserInfo(ctx context.Context, userID int64) (*User, error) {
	return s.repo.GetUser(ctx, userID, s.defaultPfp)
}

func (s *service) UpdatePicture(ctx context.Context, userID int64, up *attachment.Upload) (string, error) {
	if up == nil {
		return "", apperr.Validationf("Profile picture is required")
	}

	ref, err := s.resolver.Resolve(ctx, up, profilePicturesCollection, "")
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdatePfp(ctx, userID, ref); err != nil {
		return "", err
	}
	return ref, nil
}
