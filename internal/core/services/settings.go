package services

import (
	"fmt"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
	"github.com/atelier-labs/atelier-cli/internal/core/ports/driven"
	"github.com/atelier-labs/atelier-cli/internal/core/ports/driving"
	"github.com/atelier-labs/atelier-cli/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyEngineK1     = "engine.k1"
	keyEngineB      = "engine.b"
	keyDefaultLimit = "search.default_limit"
	keyArchiveDir   = "archive.dir"
)

// SettingsService manages application settings over the config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Unset keys fall back to
// defaults; out-of-range stored values also fall back, with a warning,
// so a hand-edited config file cannot take search down.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	engine := domain.EngineSettings{
		K1: s.getFloat(keyEngineK1, defaults.Engine.K1),
		B:  s.getFloat(keyEngineB, defaults.Engine.B),
	}
	if err := engine.Validate(); err != nil {
		logger.Warn("Invalid engine settings in config (k1=%v, b=%v), using defaults", engine.K1, engine.B)
		engine = defaults.Engine
	}

	search := domain.SearchSettings{
		DefaultLimit: s.getInt(keyDefaultLimit, defaults.Search.DefaultLimit),
	}
	if err := search.Validate(); err != nil {
		logger.Warn("Invalid search settings in config (default_limit=%d), using defaults", search.DefaultLimit)
		search = defaults.Search
	}

	return &domain.AppSettings{
		Engine: engine,
		Search: search,
		Archive: domain.ArchiveSettings{
			Dir: s.configStore.GetString(keyArchiveDir),
		},
	}, nil
}

// Save persists application settings after validation.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("save settings: %w", domain.ErrInvalidInput)
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	pairs := []struct {
		key   string
		value any
	}{
		{keyEngineK1, settings.Engine.K1},
		{keyEngineB, settings.Engine.B},
		{keyDefaultLimit, settings.Search.DefaultLimit},
		{keyArchiveDir, settings.Archive.Dir},
	}
	for _, pair := range pairs {
		if err := s.configStore.Set(pair.key, pair.value); err != nil {
			return fmt.Errorf("save setting %s: %w", pair.key, err)
		}
	}
	return nil
}

// SetEngine updates the BM25 parameters.
func (s *SettingsService) SetEngine(k1, b float64) error {
	engine := domain.EngineSettings{K1: k1, B: b}
	if err := engine.Validate(); err != nil {
		return fmt.Errorf("set engine parameters: %w", err)
	}

	if err := s.configStore.Set(keyEngineK1, k1); err != nil {
		return fmt.Errorf("set %s: %w", keyEngineK1, err)
	}
	if err := s.configStore.Set(keyEngineB, b); err != nil {
		return fmt.Errorf("set %s: %w", keyEngineB, err)
	}
	return nil
}

// SetDefaultLimit updates the default search result cap.
func (s *SettingsService) SetDefaultLimit(limit int) error {
	search := domain.SearchSettings{DefaultLimit: limit}
	if err := search.Validate(); err != nil {
		return fmt.Errorf("set default limit: %w", err)
	}
	if err := s.configStore.Set(keyDefaultLimit, limit); err != nil {
		return fmt.Errorf("set %s: %w", keyDefaultLimit, err)
	}
	return nil
}

// SetArchiveDir updates the archive directory override. Empty clears
// it back to the default location.
func (s *SettingsService) SetArchiveDir(dir string) error {
	if err := s.configStore.Set(keyArchiveDir, dir); err != nil {
		return fmt.Errorf("set %s: %w", keyArchiveDir, err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// getFloat reads a float key, distinguishing "unset" from a stored
// zero.
func (s *SettingsService) getFloat(key string, fallback float64) float64 {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetFloat64(key)
}

// getInt reads an int key, distinguishing "unset" from a stored zero.
func (s *SettingsService) getInt(key string, fallback int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetInt(key)
}
