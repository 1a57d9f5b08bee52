// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/okian/courtside/internal/domain/model"
	"github.com/okian/courtside/internal/domain/overlay"
)

// Default server configuration.
const (
	defaultProvider     = "rankedin"
	defaultMaxBodyBytes = 1 << 16
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// CourtData composes the live payload for a court.
	CourtData(ctx context.Context, courtID string) (model.Payload, error)

	// Settings operations back the operator control surface.
	Settings(ctx context.Context, courtID string) (overlay.Settings, error)
	SaveSettings(ctx context.Context, courtID string, body map[string]any) (overlay.Settings, error)

	// Trigger publishes a one-shot animation event.
	Trigger(ctx context.Context, courtID, eventType, target string) (overlay.Event, error)
}

// StatsProvider defines the interface for getting service statistics.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// Server wires HTTP routes for the overlay API.
type Server struct {
	dataHandler     *DataHandler
	settingsHandler *SettingsHandler
	triggerHandler  *TriggerHandler
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler

	provider     string
	maxBodyBytes int64
	limiter      *clientLimiter
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithProvider sets the provider segment used in route paths.
func WithProvider(provider string) Option {
	return func(s *Server) {
		if provider != "" {
			s.provider = provider
		}
	}
}

// WithMaxBodyBytes caps the size of accepted request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

// WithTriggerLimit throttles operator POSTs per client address.
func WithTriggerLimit(perSecond float64, burst int) Option {
	return func(s *Server) {
		if perSecond > 0 && burst > 0 {
			s.limiter = newClientLimiter(perSecond, burst)
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	s := &Server{
		provider:     defaultProvider,
		maxBodyBytes: defaultMaxBodyBytes,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.dataHandler = NewDataHandler(deps)
	s.settingsHandler = NewSettingsHandler(deps, s.maxBodyBytes)
	s.triggerHandler = NewTriggerHandler(deps, s.maxBodyBytes)
	s.healthHandler = NewHealthHandler()
	s.statsHandler = NewStatsHandler(statsProvider)

	return s
}

// Register attaches all HTTP routes to the router.
func (s *Server) Register(r chi.Router) {
	r.Use(RequestIDMiddleware)
	r.Get("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	r.Get("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	r.Route("/api/"+s.provider+"/court/{courtID}", func(r chi.Router) {
		r.Get("/data", MetricsMiddleware(s.dataHandler.HandleGetData, "data"))
		r.Get("/settings", MetricsMiddleware(s.settingsHandler.HandleGetSettings, "settings"))

		post := r
		if s.limiter != nil {
			post = r.With(s.limiter.Middleware)
		}
		post.Post("/settings", MetricsMiddleware(s.settingsHandler.HandlePostSettings, "settings"))
		post.Post("/trigger", MetricsMiddleware(s.triggerHandler.HandlePostTrigger, "trigger"))
	})
}

type okResponse struct {
	OK bool `json:"ok"`
}

type triggerResponse struct {
	OK    bool          `json:"ok"`
	Event overlay.Event `json:"event"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// decodeBody reads a size-capped JSON object body. An empty or absent body
// resolves to an empty object, matching the tolerant control surface.
func decodeBody(w http.ResponseWriter, r *http.Request, maxBytes int64) (map[string]any, error) {
	body := map[string]any{}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBytes))
	if err := dec.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	return body, nil
}
