package store

import (
	"context"
	"strconv"

	"github.com/tbanda/vendora-backend/internal/apperr"
	"github.com/tbanda/vendora-backend/internal/attachment"
	"github.com/tbanda/vendora-backend/internal/modules/listing"
)

const (
	coverPhotosCollection     = "cover_photos"
	profilePicturesCollection = "profile_pictures"
)

// CreateRequest holds the raw form fields of a createStore call.
type CreateRequest struct {
	UserID           string
	Name             string
	Details          string
	Contact          string
	Email            string
	Type             string
	Description      string
	Location         string
	CategoryID       string
	PriceMin         string
	PriceMax         string
	PriceDescription string
}

// Service defines store business logic.
type Service interface {
	Create(ctx context.Context, req CreateRequest, files map[string]*attachment.Upload) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]Store, error)
	ListCategories(ctx context.Context) ([]Category, error)
}

type service struct {
	repo       Repository
	resolver   *attachment.Resolver
	defaultPfp string
}

// NewService creates a new store service.
func NewService(repo Repository, resolver *attachment.Resolver, defaultPfp string) Service {
	return &service{repo: repo, resolver: resolver, defaultPfp: defaultPfp}
}

func (s *service) Create(ctx context.Context, req CreateRequest, files map[string]*attachment.Upload) (int64, error) {
	if req.UserID == "" {
		return 0, apperr.Validationf("User ID is missing")
	}
	userID, err := strconv.ParseInt(req.UserID, 10, 64)
	if err != nil {
		return 0, apperr.Validationf("User ID is missing")
	}
	if req.CategoryID == "" {
		return 0, apperr.Validationf("Store category ID is required")
	}
	categoryID, err := strconv.ParseInt(req.CategoryID, 10, 64)
	if err != nil {
		return 0, apperr.Validationf("Store category ID is required")
	}

	slots := []listing.AttachmentSlot{
		{Field: "coverPhoto", Collection: coverPhotosCollection},
		{Field: "profilePicture", Collection: profilePicturesCollection, Fallback: s.defaultPfp},
	}

	var storeID int64
	err = listing.Create(ctx, s.resolver, files, slots,
		func(ctx context.Context, refs map[string]string) error {
			newStore := &NewStore{
				UserID:         userID,
				CategoryID:     categoryID,
				Name:           req.Name,
				Details:        req.Details,
				Contact:        req.Contact,
				Email:          req.Email,
				Type:           req.Type,
				Description:    req.Description,
				Location:       req.Location,
				CoverPhoto:     refs["coverPhoto"],
				ProfilePicture: refs["profilePicture"],
			}
			newPrice := &NewPrice{
				Min:         parsePrice(req.PriceMin),
				Max:         parsePrice(req.PriceMax),
				Description: req.PriceDescription,
			}
			id, err := s.repo.CreateWithPrice(ctx, newStore, newPrice)
			if err != nil {
				return err
			}
			storeID = id
			return nil
		})
	if err != nil {
		return 0, err
	}
	return storeID, nil
}

func (s *service) ListByUser(ctx context.Context, userID int64) ([]Store, error) {
	stores, err := s.repo.ListByUser(ctx, userID, s.defaultPfp)
	if err != nil {
		return nil, err
	}

	for i := range stores {
		st := &stores[i]
		if st.CoverPhoto != nil {
			public := attachment.PublicRef(*st.CoverPhoto, coverPhotosCollection, s.defaultPfp)
			st.CoverPhoto = &public
		}
		st.ProfilePicture = attachment.PublicRef(st.ProfilePicture, profilePicturesCollection, s.defaultPfp)
	}
	return stores, nil
}

func (s *service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx)
}

// parsePrice treats an absent or malformed price field as zero, matching the
// form's optional price inputs.
func parsePrice(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
