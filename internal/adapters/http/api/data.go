// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/okian/courtside/internal/adapters/upstream"
	"github.com/okian/courtside/internal/domain/model"
)

// DataDependencies defines the interface for the data endpoint.
type DataDependencies interface {
	CourtData(ctx context.Context, courtID string) (model.Payload, error)
}

// DataHandler serves the composed overlay payload.
type DataHandler struct {
	deps DataDependencies
}

// NewDataHandler creates a new data handler.
func NewDataHandler(deps DataDependencies) *DataHandler {
	return &DataHandler{deps: deps}
}

// HandleGetData handles GET /api/{provider}/court/{courtID}/data requests.
func (h *DataHandler) HandleGetData(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_data"

	courtID := strings.TrimSpace(chi.URLParam(r, "courtID"))
	if courtID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	payload, err := h.deps.CourtData(r.Context(), courtID)
	if err != nil {
		if errors.Is(err, upstream.ErrUnavailable) || errors.Is(err, upstream.ErrDecode) {
			writeError(w, http.StatusBadGateway, "upstream_failed", WrapKind(op, ErrUpstream, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	// Short shared cache keeps upstream load down while polling clients
	// still converge within a second.
	w.Header().Set("Cache-Control", "public, s-maxage=1, stale-while-revalidate=1")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	writeJSON(w, http.StatusOK, payload)
}
