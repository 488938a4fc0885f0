package profile

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/tbanda/vendora-backend/internal/api"
	"github.com/tbanda/vendora-backend/internal/apperr"
	"github.com/tbanda/vendora-backend/internal/attachment"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterOperations(reg *api.Registry) {
	reg.Register("getUserInfo", h.getUserInfo)
	reg.Register("updateUserPfp", h.updateUserPfp)
}

func (h *Handler) getUserInfo(w http.ResponseWriter, r *http.Request) {
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

	user, err := h.service.GetUserInfo(r.Context(), userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			api.Error(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("get user info", "user_id", userID, "error", err)
		api.Error(w, http.StatusInternalServerError, "Database error")
		return
	}

	api.Success(w, map[string]any{"user": user})
}

func (h *Handler) updateUserPfp(w http.ResponseWriter, r *http.Request) {
	raw := r.FormValue("user_id")
	up, err := attachment.FromRequest(r, "profile_picture")
	if err != nil {
		api.Error(w, http.StatusBadRequest, "Failed to read profile picture")
		return
	}
	if raw == "" || up == nil {
		api.Error(w, http.StatusBadRequest, "User ID and profile picture are required.")
		return
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid user ID.")
		return
	}

	ref, err := h.service.UpdatePicture(r.Context(), userID, up)
	if err != nil {
		switch {
		case apperr.IsStorage(err):
			slog.Error("update pfp storage", "user_id", userID, "error", err)
			api.Error(w, http.StatusInternalServerError, "Failed to upload profile picture")
		case errors.Is(err, apperr.ErrNotFound):
			api.Error(w, http.StatusNotFound, "User not found")
		default:
			slog.Error("update pfp", "user_id", userID, "error", err)
			api.Error(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	api.Success(w, map[string]any{
		"message":  "Profile picture updated successfully",
		"pfp_path": ref,
	})
}
