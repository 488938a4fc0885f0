package store_test

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
	"github.com/tbanda/vendora-backend/internal/modules/store"
)

// stubService records calls and returns canned results.
type stubService struct {
	createReq   *store.CreateRequest
	createFiles map[string]*attachment.Upload
	createErr   error
	stores      []store.Store
	categories  []store.Category
}

func (s *stubService) Create(_ context.Context, req store.CreateRequest, files map[string]*attachment.Upload) (int64, error) {
	s.createReq = &req
	s.createFiles = files
	if s.createErr != nil {
		return 0, s.createErr
	}
	return 1, nil
}

func (s *stubService) ListByUser(context.Context, int64) ([]store.Store, error) {
	return s.stores, nil
}

func (s *stubService) ListCategories(context.Context) ([]store.Category, error) {
	return s.categories, nil
}

func newRegistry(svc store.Service) *api.Registry {
	reg := api.NewRegistry()
	store.NewHandler(svc).RegisterOperations(reg)
	return reg
}

func multipartRequest(t *testing.T, fields map[string]string, files map[string][]byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for field, data := range files {
		fw, err := mw.CreateFormFile(field, field+".png")
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestCreateStoreOperation(t *testing.T) {
	svc := &stubService{}
	reg := newRegistry(svc)

	req := multipartRequest(t, map[string]string{
		"operation":         "createStore",
		"user_id":           "7",
		"store_category_id": "2",
		"storeName":         "Acme Catering",
		"store_price_min":   "500",
		"store_price_max":   "2000",
	}, map[string][]byte{"coverPhoto": []byte("cover-bytes")})
	rec := httptest.NewRecorder()
	reg.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "success", body["status"])
	require.Equal(t, "Store created successfully!", body["message"])

	require.Equal(t, "7", svc.createReq.UserID)
	require.Equal(t, "2", svc.createReq.CategoryID)
	require.Equal(t, "Acme Catering", svc.createReq.Name)
	require.Contains(t, svc.createFiles, "coverPhoto")
	require.NotContains(t, svc.createFiles, "profilePicture")
}

func TestCreateStoreValidationError(t *testing.T) {
	svc := &stubService{createErr: apperr.Validationf("Store category ID is required")}
	reg := newRegistry(svc)

	req := multipartRequest(t, map[string]string{
		"operation": "createStore",
		"user_id":   "7",
	}, nil)
	rec := httptest.NewRecorder()
	reg.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "error", body["status"])
	require.Equal(t, "Store category ID is required", body["message"])
}

func TestGetStoresShape(t *testing.T) {
	svc := &stubService{stores: []store.Store{{
		ID:             1,
		Name:           "Acme Catering",
		Category:       "Catering",
		ProfilePicture: defaultPfp,
		Status:         "active",
		Prices:         []store.Price{{Min: 500, Max: 2000}},
	}}}
	reg := newRegistry(svc)

	req := httptest.NewRequest(http.MethodGet, "/api?operation=getStores&user_id=7", nil)
	rec := httptest.NewRecorder()
	reg.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string `json:"status"`
		Stores []struct {
			StoreName      string          `json:"storeName"`
			StoreCategory  string          `json:"storeCategory"`
			ProfilePicture string          `json:"profilePicture"`
			CoverPhoto     *string         `json:"coverPhoto"`
			Prices         []json.RawMessage `json:"prices"`
		} `json:"stores"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "success", body.Status)
	require.Len(t, body.Stores, 1)
	require.Equal(t, "Acme Catering", body.Stores[0].StoreName)
	require.Equal(t, defaultPfp, body.Stores[0].ProfilePicture)
	require.Nil(t, body.Stores[0].CoverPhoto)

	var price struct {
		Title       *string `json:"title"`
		Min         float64 `json:"min"`
		Max         float64 `json:"max"`
		Description string  `json:"description"`
	}
	require.NoError(t, json.Unmarshal(body.Stores[0].Prices[0], &price))
	require.Nil(t, price.Title)
	require.Equal(t, 500.0, price.Min)
	require.Equal(t, 2000.0, price.Max)
	require.Empty(t, price.Description)
}

func TestGetStoresEmptyList(t *testing.T) {
	svc := &stubService{stores: []store.Store{}}
	reg := newRegistry(svc)

	req := httptest.NewRequest(http.MethodGet, "/api?operation=getStores&user_id=7", nil)
	rec := httptest.NewRecorder()
	reg.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"stores":[]`)
}

func TestGetStoresRequiresUserID(t *testing.T) {
	reg := newRegistry(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/api?operation=getStores", nil)
	rec := httptest.NewRecorder()
	reg.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "User ID is required.")
}

func TestGetStoreCategories(t *testing.T) {
	svc := &stubService{categories: []store.Category{{ID: 1, Type: "Catering"}}}
	reg := newRegistry(svc)

	req := httptest.NewRequest(http.MethodGet, "/api?operation=getStoreCategories", nil)
	rec := httptest.NewRecorder()
	reg.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"categories":[{"id":1,"type":"Catering"}]`)
}
