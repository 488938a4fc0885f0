package venue

import (
	"context"
	"strconv"

	"github.com/tbanda/vendora-backend/internal/apperr"
	"github.com/tbanda/vendora-backend/internal/attachment"
	"github.com/tbanda/vendora-backend/internal/modules/listing"
)

const (
	profilePicturesCollection = "venue_profile_pictures"
	coverPhotosCollection     = "venue_cover_photos"

	defaultStatus = "available"
	defaultType   = "internal"
)

// CreateRequest holds the raw form fields of a createVenue call.
type CreateRequest struct {
	UserID           string
	Title            string
	Owner            string
	Location         string
	Contact          string
	Details          string
	Status           string
	Type             string
	PriceMin         string
	PriceMax         string
	PriceDescription string
	Capacity         string
}

// Service defines venue business logic.
type Service interface {
	Create(ctx context.Context, req CreateRequest, files map[string]*attachment.Upload) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]Venue, error)
}

type service struct {
	repo       Repository
	resolver   *attachment.Resolver
	defaultPfp string
}

// NewService creates a new venue service.
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

	status := req.Status
	if status == "" {
		status = defaultStatus
	}
	venueType := req.Type
	if venueType == "" {
		venueType = defaultType
	}

	slots := []listing.AttachmentSlot{
		{Field: "venue_profile_picture", Collection: profilePicturesCollection, Fallback: s.defaultPfp},
		{Field: "venue_cover_photo", Collection: coverPhotosCollection},
	}

	var venueID int64
	err = listing.Create(ctx, s.resolver, files, slots,
		func(ctx context.Context, refs map[string]string) error {
			newVenue := &NewVenue{
				UserID:         userID,
				Title:          req.Title,
				Owner:          req.Owner,
				Location:       req.Location,
				Contact:        req.Contact,
				Details:        req.Details,
				Status:         status,
				Type:           venueType,
				ProfilePicture: refs["venue_profile_picture"],
				CoverPhoto:     refs["venue_cover_photo"],
			}
			newPrice := &NewPrice{
				Min:         parseFloat(req.PriceMin),
				Max:         parseFloat(req.PriceMax),
				Capacity:    parseInt(req.Capacity),
				Description: req.PriceDescription,
			}
			id, err := s.repo.CreateWithPrice(ctx, newVenue, newPrice)
			if err != nil {
				return err
			}
			venueID = id
			return nil
		})
	if err != nil {
		return 0, err
	}
	return venueID, nil
}

func (s *service) ListByUser(ctx context.Context, userID int64) ([]Venue, error) {
	venues, err := s.repo.ListByUser(ctx, userID, s.defaultPfp)
	if err != nil {
		return nil, err
	}

	for i := range venues {
		v := &venues[i]
		v.ProfilePicture = attachment.PublicRef(v.ProfilePicture, profilePicturesCollection, s.defaultPfp)
		if v.CoverPhoto != nil {
			public := attachment.PublicRef(*v.CoverPhoto, coverPhotosCollection, s.defaultPfp)
			v.CoverPhoto = &public
		}
	}
	return venues, nil
}

// parseFloat treats an absent or malformed numeric field as zero, matching
// the form's optional inputs.
func parseFloat(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}
