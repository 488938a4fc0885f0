package venue

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
	reg.Register("createVenue", h.createVenue)
	reg.Register("getVenues", h.getVenues)
}

func (h *Handler) createVenue(w http.ResponseWriter, r *http.Request) {
	req := CreateRequest{
		UserID:           r.FormValue("user_id"),
		Title:            r.FormValue("venue_title"),
		Owner:            r.FormValue("venue_owner"),
		Location:         r.FormValue("venue_location"),
		Contact:          r.FormValue("venue_contact"),
		Details:          r.FormValue("venue_details"),
		Status:           r.FormValue("venue_status"),
		Type:             r.FormValue("venue_type"),
		PriceMin:         r.FormValue("venue_price_min"),
		PriceMax:         r.FormValue("venue_price_max"),
		PriceDescription: r.FormValue("venue_price_description"),
		Capacity:         r.FormValue("venue_capacity"),
	}

	files := make(map[string]*attachment.Upload, 2)
	for _, field := range []string{"venue_profile_picture", "venue_cover_photo"} {
		up, err := attachment.FromRequest(r, field)
		if err != nil {
			api.Error(w, http.StatusBadRequest, "Failed to read uploaded files")
			return
		}
		if up != nil {
			files[field] = up
		}
	}

	if _, err := h.service.Create(r.Context(), req, files); err != nil {
		api.WorkflowError(w, err, "create venue")
		return
	}

	api.Success(w, map[string]any{"message": "Venue created successfully!"})
}

func (h *Handler) getVenues(w http.ResponseWriter, r *http.Request) {
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

	venues, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		slog.Error("list venues", "user_id", userID, "error", err)
		api.Error(w, http.StatusInternalServerError, "Database error")
		return
	}

	api.Success(w, map[string]any{"venues": venues})
}
