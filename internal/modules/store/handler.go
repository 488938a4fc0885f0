package store

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/tbanda/vendora-backend/internal/api"
	"github.com/tbanda/vendora-backend/internal/attachment"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterOperations(reg *api.Registry) {
	reg.Register("createStore", h.createStore)
	reg.Register("getStores", h.getStores)
	reg.Register("getStoreCategories", h.getStoreCategories)
}

func (h *Handler) createStore(w http.ResponseWriter, r *http.Request) {
	req := CreateRequest{
		UserID:           r.FormValue("user_id"),
		Name:             r.FormValue("storeName"),
		Details:          r.FormValue("storeDetails"),
		Contact:          r.FormValue("contactNumber"),
		Email:            r.FormValue("email"),
		Type:             r.FormValue("storeType"),
		Description:      r.FormValue("storeDescription"),
		Location:         r.FormValue("location"),
		CategoryID:       r.FormValue("store_category_id"),
		PriceMin:         r.FormValue("store_price_min"),
		PriceMax:         r.FormValue("store_price_max"),
		PriceDescription: r.FormValue("store_price_description"),
	}

	files, err := uploads(r, "coverPhoto", "profilePicture")
	if err != nil {
		api.Error(w, http.StatusBadRequest, "Failed to read uploaded files")
		return
	}

	if _, err := h.service.Create(r.Context(), req, files); err != nil {
		api.WorkflowError(w, err, "create store")
		return
	}

	api.Success(w, map[string]any{"message": "Store created successfully!"})
}

func (h *Handler) getStores(w http.ResponseWriter, r *http.Request) {
	raw := r.FormValue("user_id")
	if raw == "" {
		api.Error(w, http.StatusBadRequest, "User ID is required.")
		return
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid user ID.")
		return
	}

	stores, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		slog.Error("list stores", "user_id", userID, "error", err)
		api.Error(w, http.StatusInternalServerError, "Database error")
		return
	}

	api.Success(w, map[string]any{"stores": stores})
}

func (h *Handler) getStoreCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		slog.Error("list store categories", "error", err)
		api.Error(w, http.StatusInternalServerError, "Database error")
		return
	}

	api.Success(w, map[string]any{"categories": categories})
}

// uploads collects the named multipart files; absent fields are simply
// missing from the map.
func uploads(r *http.Request, fields ...string) (map[string]*attachment.Upload, error) {
	files := make(map[string]*attachment.Upload, len(fields))
	for _, field := range fields {
		up, err := attachment.FromRequest(r, field)
		if err != nil {
			return nil, err
		}
		if up != nil {
			files[field] = up
		}
	}
	return files, nil
}
