// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/okian/courtside/internal/domain/overlay"
)

// SettingsDependencies defines the interface for settings operations.
type SettingsDependencies interface {
	Settings(ctx context.Context, courtID string) (overlay.Settings, error)
	SaveSettings(ctx context.Context, courtID string, body map[string]any) (overlay.Settings, error)
}

// SettingsHandler handles the operator settings endpoints.
type SettingsHandler struct {
	deps         SettingsDependencies
	maxBodyBytes int64
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(deps SettingsDependencies, maxBodyBytes int64) *SettingsHandler {
	return &SettingsHandler{deps: deps, maxBodyBytes: maxBodyBytes}
}

// HandleGetSettings handles GET .../settings requests.
func (h *SettingsHandler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_settings"

	courtID := strings.TrimSpace(chi.URLParam(r, "courtID"))
	if courtID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	settings, err := h.deps.Settings(r.Context(), courtID)
	if err != nil {
		// Load falls back to defaults on store misses; an error here means
		// the backend itself is down.
		writeError(w, http.StatusInternalServerError, "store_failed", WrapKind(op, ErrStore, err))
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, settings)
}

// HandlePostSettings handles POST .../settings requests.
func (h *SettingsHandler) HandlePostSettings(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_settings"

	courtID := strings.TrimSpace(chi.URLParam(r, "courtID"))
	if courtID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	body, err := decodeBody(w, r, h.maxBodyBytes)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	if _, err := h.deps.SaveSettings(r.Context(), courtID, body); err != nil {
		writeError(w, http.StatusInternalServerError, "store_failed", WrapKind(op, ErrStore, err))
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}
