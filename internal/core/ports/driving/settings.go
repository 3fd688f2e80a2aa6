package driving

import "github.com/atelier-labs/atelier-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, with defaults for
	// anything unset.
	Get() (*domain.AppSettings, error)

	// Save persists application settings after validation.
	Save(settings *domain.AppSettings) error

	// SetEngine updates the BM25 parameters.
	SetEngine(k1, b float64) error

	// SetDefaultLimit updates the default search result cap.
	SetDefaultLimit(limit int) error

	// SetArchiveDir updates the archive directory override.
	SetArchiveDir(dir string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
