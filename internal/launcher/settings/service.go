package settings

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/derol/majestic-launcher/internal/launcher/storage"
	"github.com/derol/majestic-launcher/internal/logging"
)

// Service reads and writes the two settings blobs. Unreadable stored
// settings are logged and replaced by defaults rather than surfaced:
// losing a slider position is not worth an error dialog. Writes do surface
// failures so the caller never claims a save that did not happen.
type Service struct {
	store  storage.Store
	logger logging.Logger
}

func NewService(store storage.Store, logger logging.Logger) *Service {
	return &Service{store: store, logger: logger.With("component", "settings")}
}

func (s *Service) LoadGraphics(ctx context.Context) GraphicsSettings {
	var g GraphicsSettings
	if !s.load(ctx, storage.KeyGraphicsSettings, &g) {
		return DefaultGraphics()
	}
	return g.Normalize()
}

func (s *Service) SaveGraphics(ctx context.Context, g GraphicsSettings) error {
	return s.save(ctx, storage.KeyGraphicsSettings, g.Normalize())
}

func (s *Service) LoadControls(ctx context.Context) ControlSettings {
	var c ControlSettings
	if !s.load(ctx, storage.KeyControlSettings, &c) {
		return DefaultControls()
	}
	return c.Normalize()
}

func (s *Service) SaveControls(ctx context.Context, c ControlSettings) error {
	return s.save(ctx, storage.KeyControlSettings, c.Normalize())
}

func (s *Service) load(ctx context.Context, key string, dst any) bool {
	raw, err := s.store.Get(ctx, key)
	if err != nil {
		s.logger.Warn(ctx, "failed to load settings", "key", key, "error", err)
		return false
	}
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.Warn(ctx, "discarding corrupt settings", "key", key, "error", err)
		return false
	}
	return true
}

func (s *Service) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode settings[%s]: %w", key, err)
	}
	if err := s.store.Set(ctx, key, raw); err != nil {
		return err
	}
	s.logger.Info(ctx, "settings saved", "key", key)
	return nil
}
