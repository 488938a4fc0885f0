package venue_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tbanda/vendora-backend/internal/apperr"
	"github.com/tbanda/vendora-backend/internal/attachment"
	"github.com/tbanda/vendora-backend/internal/blob"
	"github.com/tbanda/vendora-backend/internal/modules/venue"
)

const defaultPfp = "uploads/user_profile/default_pfp.png"

type createdPair struct {
	venue *venue.NewVenue
	price *venue.NewPrice
}

type fakeRepo struct {
	created []createdPair
	venues  []venue.Venue
}

func (f *fakeRepo) CreateWithPrice(_ context.Context, v *venue.NewVenue, p *venue.NewPrice) (int64, error) {
	f.created = append(f.created, createdPair{venue: v, price: p})
	return int64(len(f.created)), nil
}

func (f *fakeRepo) ListByUser(context.Context, int64, string) ([]venue.Venue, error) {
	return f.venues, nil
}

func newService(t *testing.T) (venue.Service, *fakeRepo) {
	t.Helper()
	repo := &fakeRepo{}
	resolver := attachment.NewResolver(blob.NewLocalStore(t.TempDir()))
	return venue.NewService(repo, resolver, defaultPfp), repo
}

func TestCreateRequiresUserID(t *testing.T) {
	svc, repo := newService(t)

	_, err := svc.Create(context.Background(), venue.CreateRequest{Title: "Garden Hall"}, nil)
	require.True(t, apperr.IsValidation(err))
	require.Empty(t, repo.created)
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc, repo := newService(t)

	req := venue.CreateRequest{
		UserID:   "7",
		Title:    "Garden Hall",
		Owner:    "B. Tembo",
		PriceMin: "1000",
		PriceMax: "4000",
		Capacity: "150",
	}
	_, err := svc.Create(context.Background(), req, nil)
	require.NoError(t, err)

	created := repo.created[0]
	require.Equal(t, "available", created.venue.Status)
	require.Equal(t, "internal", created.venue.Type)
	require.Equal(t, defaultPfp, created.venue.ProfilePicture)
	require.Empty(t, created.venue.CoverPhoto)
	require.Equal(t, "B. Tembo", created.venue.Owner)
	require.Equal(t, 150, created.price.Capacity)
	require.Equal(t, 1000.0, created.price.Min)
}

func TestCreateKeepsExplicitStatusAndType(t *testing.T) {
	svc, repo := newService(t)

	req := venue.CreateRequest{UserID: "7", Status: "booked", Type: "external"}
	_, err := svc.Create(context.Background(), req, nil)
	require.NoError(t, err)

	created := repo.created[0]
	require.Equal(t, "booked", created.venue.Status)
	require.Equal(t, "external", created.venue.Type)
}

func TestCreateStoresUploads(t *testing.T) {
	svc, repo := newService(t)

	files := map[string]*attachment.Upload{
		"venue_profile_picture": {Filename: "pfp.png", Data: []byte("pfp")},
		"venue_cover_photo":     {Filename: "cover.png", Data: []byte("cover")},
	}
	_, err := svc.Create(context.Background(), venue.CreateRequest{UserID: "7"}, files)
	require.NoError(t, err)

	created := repo.created[0]
	require.Contains(t, created.venue.ProfilePicture, "uploads/venue_profile_pictures/")
	require.Contains(t, created.venue.CoverPhoto, "uploads/venue_cover_photos/")
}

func TestListByUserProjectsReferences(t *testing.T) {
	svc, repo := newService(t)
	cover := "uploads/venue_cover_photos/abc_cover.png"
	repo.venues = []venue.Venue{
		{ID: 1, ProfilePicture: "uploads/venue_profile_pictures/abc_pfp.png", CoverPhoto: &cover},
		{ID: 2, ProfilePicture: defaultPfp},
	}

	venues, err := svc.ListByUser(context.Background(), 7)
	require.NoError(t, err)

	require.Equal(t, "uploads/venue_profile_pictures/abc_pfp.png", venues[0].ProfilePicture)
	require.Equal(t, "uploads/venue_cover_photos/abc_cover.png", *venues[0].CoverPhoto)

	// The sentinel default passes through untouched.
	require.Equal(t, defaultPfp, venues[1].ProfilePicture)
	require.Nil(t, venues[1].CoverPhoto)
}
