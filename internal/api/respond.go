// Package api exposes the operation-dispatch surface: one endpoint, an
// `operation` form or query parameter, and a uniform JSON envelope.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tbanda/vendora-backend/internal/apperr"
)

// Success writes the success envelope, merging extra fields into the body.
func Success(w http.ResponseWriter, extra map[string]any) {
	body := map[string]any{"status": "success"}
	for k, v := range extra {
		body[k] = v
	}
	writeJSON(w, http.StatusOK, body)
}

// Error writes the error envelope. The message must already be safe for
// callers; driver detail is logged by the workflows, never echoed.
func Error(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"status": "error", "message": message})
}

// WorkflowError maps a workflow error onto the envelope: validation → 400
// with the validation message, storage → 500, constraint violation → 409,
// anything else → 500 with a redacted message. logContext names the failing
// operation in the server log.
func WorkflowError(w http.ResponseWriter, err error, logContext string) {
	var v *apperr.Validation
	switch {
	case errors.As(err, &v):
		Error(w, http.StatusBadRequest, v.Message)
	case apperr.IsStorage(err):
		slog.Error(logContext, "error", err)
		Error(w, http.StatusInternalServerError, "Failed to upload file")
	case apperr.IsConflict(err):
		Error(w, http.StatusConflict, "Invalid reference to related data")
	case errors.Is(err, apperr.ErrNotFound):
		Error(w, http.StatusNotFound, "Not found")
	default:
		slog.Error(logContext, "error", err)
		Error(w, http.StatusInternalServerError, "Database error")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("write JSON response", "error", err)
	}
}
