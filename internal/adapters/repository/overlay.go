package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/okian/courtside/internal/domain/overlay"
	"github.com/okian/courtside/pkg/metrics"
)

// settingsStore implements overlay.SettingsStore over a KV backend.
type settingsStore struct {
	kv       KV
	provider string
}

// NewSettingsStore wraps the KV backend with the settings contract.
func NewSettingsStore(kv KV, provider string) overlay.SettingsStore {
	return &settingsStore{kv: kv, provider: provider}
}

func (s *settingsStore) Load(ctx context.Context, courtID string) (overlay.Settings, error) {
	raw, ok, err := s.kv.Get(ctx, overlay.SettingsKey(s.provider, courtID))
	if err != nil {
		metrics.RecordStoreOperation("settings_load", "error")
		return overlay.DefaultSettings(), fmt.Errorf("load settings: %w", err)
	}
	if !ok {
		metrics.RecordStoreOperation("settings_load", "miss")
		return overlay.DefaultSettings(), nil
	}

	settings := overlay.DefaultSettings()
	if err := json.Unmarshal(raw, &settings); err != nil {
		// A corrupt record behaves like a missing one.
		metrics.RecordStoreOperation("settings_load", "error")
		return overlay.DefaultSettings(), nil
	}
	metrics.RecordStoreOperation("settings_load", "ok")
	return settings, nil
}

func (s *settingsStore) Save(ctx context.Context, courtID string, settings overlay.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.kv.Set(ctx, overlay.SettingsKey(s.provider, courtID), raw, 0); err != nil {
		metrics.RecordStoreOperation("settings_save", "error")
		return fmt.Errorf("save settings: %w", err)
	}
	metrics.RecordStoreOperation("settings_save", "ok")
	return nil
}

// eventStore implements overlay.EventStore over a KV backend.
type eventStore struct {
	kv       KV
	provider string
}

// NewEventStore wraps the KV backend with the one-shot event contract.
func NewEventStore(kv KV, provider string) overlay.EventStore {
	return &eventStore{kv: kv, provider: provider}
}

func (s *eventStore) Publish(ctx context.Context, courtID string, e overlay.Event, ttl time.Duration) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	if err := s.kv.Set(ctx, overlay.EventKey(s.provider, courtID), raw, ttl); err != nil {
		metrics.RecordStoreOperation("event_publish", "error")
		return fmt.Errorf("publish event: %w", err)
	}
	metrics.RecordStoreOperation("event_publish", "ok")
	return nil
}

func (s *eventStore) Peek(ctx context.Context, courtID string) (overlay.Event, bool, error) {
	raw, ok, err := s.kv.Get(ctx, overlay.EventKey(s.provider, courtID))
	if err != nil {
		metrics.RecordStoreOperation("event_peek", "error")
		return overlay.Event{}, false, fmt.Errorf("peek event: %w", err)
	}
	if !ok {
		metrics.RecordStoreOperation("event_peek", "miss")
		return overlay.Event{}, false, nil
	}

	var e overlay.Event
	if err := json.Unmarshal(raw, &e); err != nil {
		metrics.RecordStoreOperation("event_peek", "error")
		return overlay.Event{}, false, nil
	}
	metrics.RecordStoreOperation("event_peek", "ok")
	return e, true, nil
}

func (s *eventStore) Consume(ctx context.Context, courtID string) error {
	if err := s.kv.Delete(ctx, overlay.EventKey(s.provider, courtID)); err != nil {
		metrics.RecordStoreOperation("event_consume", "error")
		return fmt.Errorf("consume event: %w", err)
	}
	metrics.RecordStoreOperation("event_consume", "ok")
	return nil
}
