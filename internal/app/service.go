// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/okian/courtside/internal/adapters/repository"
	"github.com/okian/courtside/internal/adapters/upstream"
	"github.com/okian/courtside/internal/domain/feed"
	"github.com/okian/courtside/internal/domain/model"
	"github.com/okian/courtside/internal/domain/overlay"
	"github.com/okian/courtside/internal/domain/score"
	"github.com/okian/courtside/pkg/logger"
	"github.com/okian/courtside/pkg/metrics"
)

// Default service configuration.
const (
	defaultProvider = "rankedin"
	defaultEventTTL = 30 * time.Second
)

// Service composes the upstream feed with the per-court overlay state.
type Service struct {
	mu sync.RWMutex

	// Core components
	fetcher  upstream.Fetcher
	kv       repository.KV
	settings overlay.SettingsStore
	events   overlay.EventStore

	// Configuration
	provider string
	eventTTL time.Duration
	now      func() time.Time

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithFetcher sets the upstream feed client.
func WithFetcher(f upstream.Fetcher) Option {
	return func(s *Service) {
		if f != nil {
			s.fetcher = f
		}
	}
}

// WithStore sets the key-value backend used for settings and events.
func WithStore(kv repository.KV) Option {
	return func(s *Service) {
		if kv != nil {
			s.kv = kv
		}
	}
}

// WithProvider sets the feed provider used in the key namespace.
func WithProvider(provider string) Option {
	return func(s *Service) {
		if provider != "" {
			s.provider = provider
		}
	}
}

// WithEventTTL sets how long a triggered event stays claimable.
func WithEventTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.eventTTL = ttl
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the wall clock. Tests use this to pin timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		provider: defaultProvider,
		eventTTL: defaultEventTTL,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the overlay stores. Missing components get in-memory
// defaults so the service is usable without external infrastructure.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting overlay service...")

	if s.fetcher == nil {
		s.fetcher = upstream.NewClient()
	}
	if s.kv == nil {
		s.kv = repository.NewMemoryStore(ctx)
		s.logger.Info(ctx, "using in-memory store")
	}
	s.settings = repository.NewSettingsStore(s.kv, s.provider)
	s.events = repository.NewEventStore(s.kv, s.provider)

	s.started = true
	s.logger.Info(ctx, "overlay service started",
		logger.String("provider", s.provider),
		logger.Int64("eventTTLSeconds", int64(s.eventTTL/time.Second)),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping overlay service...")

	if s.kv != nil {
		_ = s.kv.Close()
	}

	s.started = false
	s.logger.Info(context.Background(), "overlay service stopped")
}

// CourtData fetches the feed for a court, normalizes it, and folds in the
// stored settings plus any pending event. Upstream failures propagate to the
// caller; store failures degrade to defaults and are only logged.
func (s *Service) CourtData(ctx context.Context, courtID string) (model.Payload, error) {
	raw, err := s.fetcher.Scoreboard(ctx, courtID)
	if err != nil {
		return model.Payload{}, err
	}

	match := score.Normalize(raw)
	metrics.RecordNormalization(s.provider)

	// Settings and the event are independent reads; fetch them in parallel.
	var (
		wg       sync.WaitGroup
		settings overlay.Settings
		event    *overlay.Event
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		loaded, err := s.settings.Load(ctx, courtID)
		if err != nil {
			s.logger.Warn(ctx, "settings load failed, using defaults",
				logger.String("courtID", courtID),
				logger.Error(err),
			)
			loaded = overlay.DefaultSettings()
		}
		settings = loaded
	}()
	go func() {
		defer wg.Done()
		pending, ok, err := s.events.Peek(ctx, courtID)
		if err != nil {
			s.logger.Warn(ctx, "event peek failed",
				logger.String("courtID", courtID),
				logger.Error(err),
			)
			return
		}
		if !ok {
			return
		}
		event = &pending
		// The event is already in this response; a failed delete only
		// means clients see it again and dedupe on the timestamp.
		if err := s.events.Consume(ctx, courtID); err != nil {
			s.logger.Warn(ctx, "event consume failed",
				logger.String("courtID", courtID),
				logger.Error(err),
			)
		} else {
			metrics.RecordEventConsumed()
		}
	}()
	wg.Wait()

	return model.Payload{
		CourtID:   courtID,
		CourtName: raw.Object("details").Text("courtName"),
		UpdatedAt: s.updatedAt(raw),
		Match:     match,
		Overlay: model.Overlay{
			Settings: settings,
			Event:    event,
		},
	}, nil
}

// updatedAt prefers the feed's own timestamp and falls back to wall clock.
func (s *Service) updatedAt(raw feed.Doc) string {
	if ts := raw.Object("liveMatch", "state").Text("dateSent"); ts != "" {
		return ts
	}
	return s.now().UTC().Format(time.RFC3339)
}

// Settings returns the stored settings for a court, or defaults.
func (s *Service) Settings(ctx context.Context, courtID string) (overlay.Settings, error) {
	return s.settings.Load(ctx, courtID)
}

// SaveSettings filters the raw body through the allow-list and persists it.
func (s *Service) SaveSettings(ctx context.Context, courtID string, body map[string]any) (overlay.Settings, error) {
	parsed := overlay.ParseSettings(body)
	if err := s.settings.Save(ctx, courtID, parsed); err != nil {
		return overlay.Settings{}, err
	}
	return parsed, nil
}

// Trigger publishes a one-shot animation event for a court.
func (s *Service) Trigger(ctx context.Context, courtID, eventType, target string) (overlay.Event, error) {
	e := overlay.NewEvent(overlay.EventType(eventType), target, s.now())
	if err := s.events.Publish(ctx, courtID, e, s.eventTTL); err != nil {
		return overlay.Event{}, err
	}
	metrics.RecordEventTriggered(eventType)
	return e, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":         s.started,
		"provider":        s.provider,
		"eventTTLSeconds": int64(s.eventTTL / time.Second),
	}

	if mem, ok := s.kv.(*repository.MemoryStore); ok && s.started {
		stats["storedKeys"] = mem.Len()
	}

	return stats
}
