// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/okian/courtside/internal/domain/overlay"
)

// TriggerDependencies defines the interface for event triggering.
type TriggerDependencies interface {
	Trigger(ctx context.Context, courtID, eventType, target string) (overlay.Event, error)
}

// TriggerHandler handles animation trigger requests.
type TriggerHandler struct {
	deps         TriggerDependencies
	maxBodyBytes int64
}

// NewTriggerHandler creates a new trigger handler.
func NewTriggerHandler(deps TriggerDependencies, maxBodyBytes int64) *TriggerHandler {
	return &TriggerHandler{deps: deps, maxBodyBytes: maxBodyBytes}
}

// triggerRequest mirrors the control surface schema for POST .../trigger.
type triggerRequest struct {
	Type   string
	Target string
}

func parseTriggerRequest(body map[string]any) triggerRequest {
	req := triggerRequest{Type: string(overlay.EventFlash)}
	if t, ok := body["type"].(string); ok && t != "" {
		req.Type = t
	}
	if target, ok := body["target"].(string); ok {
		req.Target = target
	}
	return req
}

// HandlePostTrigger handles POST .../trigger requests.
func (h *TriggerHandler) HandlePostTrigger(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_trigger"

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

	req := parseTriggerRequest(body)
	if !overlay.ValidEventType(req.Type) {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	event, err := h.deps.Trigger(r.Context(), courtID, req.Type, req.Target)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "store_failed", WrapKind(op, ErrStore, err))
		return
	}

	writeJSON(w, http.StatusOK, triggerResponse{OK: true, Event: event})
}
