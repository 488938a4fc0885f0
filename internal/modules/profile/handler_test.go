package profile_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tbanda/vendora-backend/internal/api"
	"github.com/tbanda/vendora-backend/internal/apperr"
	"github.com/tbanda/vendora-backend/internal/attachment"
	"github.com/tbanda/vendora-backend/internal/modules/profile"
)

type stubService struct {
	user      *profile.User
	updateRef string
	updateErr error
}

func (s *stubService) GetUserInfo(_ context.Context, userID int64) (*profile.User, error) {
	if s.user == nil || s.user.ID != userID {
		return nil, apperr.ErrNotFound
	}
	return s.user, nil
}

func (s *stubService) UpdatePicture(_ context.Context, _ int64, _ *attachment.Upload) (string, error) {
	return s.updateRef, s.updateErr
}

func newRegistry(svc profile.Service) *api.Registry {
	reg := api.NewRegistry()
	profile.NewHandler(svc).RegisterOperations(reg)
	return reg
}

func TestGetUserInfo(t *testing.T) {
	svc := &stubService{user: &profile.User{
		ID: 7, FirstName: "Ada", LastName: "Phiri",
		Email: "ada@example.com", Role: "client", Pfp: defaultPfp,
	}}
	reg := newRegistry(svc)

	req := httptest.NewRequest(http.MethodGet, "/api?operation=getUserInfo&user_id=7", nil)
	rec := httptest.NewRecorder()
	reg.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string `json:"status"`
		User   struct {
			ID   int64  `json:"user_id"`
			Name string `json:"user_firstName"`
			Pfp  string `json:"user_pfp"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "success", body.Status)
	require.Equal(t, int64(7), body.User.ID)
	require.Equal(t, "Ada", body.User.Name)
	require.Equal(t, defaultPfp, body.User.Pfp)
}

func TestGetUserInfoNotFoundMessage(t *testing.T) {
	reg := newRegistry(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/api?operation=getUserInfo&user_id=99", nil)
	rec := httptest.NewRecorder()
	reg.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "error", body["status"])
	require.Equal(t, "User not found", body["message"])
}

func TestGetUserInfoRequiresUserID(t *testing.T) {
	reg := newRegistry(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/api?operation=getUserInfo", nil)
	rec := httptest.NewRecorder()
	reg.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "User ID is required.")
}

func TestUpdateUserPfp(t *testing.T) {
	svc := &stubService{updateRef: "uploads/profile_pictures/abc_photo.png"}
	reg := newRegistry(svc)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("operation", "updateUserPfp"))
	require.NoError(t, mw.WriteField("user_id", "7"))
	fw, err := mw.CreateFormFile("profile_picture", "photo.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	reg.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "success", body["status"])
	require.Equal(t, "Profile picture updated successfully", body["message"])
	require.Equal(t, "uploads/profile_pictures/abc_photo.png", body["pfp_path"])
}

func TestUpdateUserPfpRequiresFile(t *testing.T) {
	reg := newRegistry(&stubService{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("operation", "updateUserPfp"))
	require.NoError(t, mw.WriteField("user_id", "7"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	reg.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "User ID and profile picture are required.")
}
