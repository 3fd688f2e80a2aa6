package domain

const unknownDescription = "Unknown"

// EngineSettings holds BM25 ranking parameters.
type EngineSettings struct {
	// K1 is the term-frequency saturation parameter. Must be > 0.
	K1 float64

	// B is the length-normalisation strength. Must be within [0, 1].
	B float64
}

// Validate checks the parameters are within their valid ranges.
func (s EngineSettings) Validate() error {
	if s.K1 <= 0 {
		return ErrInvalidSetting
	}
	if s.B < 0 || s.B > 1 {
		return ErrInvalidSetting
	}
	return nil
}

// SearchSettings holds search behaviour settings.
type SearchSettings struct {
	// DefaultLimit is the result cap applied when a caller passes no
	// explicit limit. Must be > 0.
	DefaultLimit int
}

// Validate checks the settings are within their valid ranges.
func (s SearchSettings) Validate() error {
	if s.DefaultLimit <= 0 {
		return ErrInvalidSetting
	}
	return nil
}

// ArchiveSettings holds recommendation archive settings.
type ArchiveSettings struct {
	// Dir overrides the archive database directory. Empty means the
	// default location under the user's home directory.
	Dir string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Engine holds BM25 parameters.
	Engine EngineSettings

	// Search holds search behaviour settings.
	Search SearchSettings

	// Archive holds recommendation archive settings.
	Archive ArchiveSettings
}

// Validate checks every section.
func (s AppSettings) Validate() error {
	if err := s.Engine.Validate(); err != nil {
		return err
	}
	return s.Search.Validate()
}

// DefaultAppSettings returns settings with sensible defaults. The
// engine parameters are the standard Okapi values.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Engine: EngineSettings{
			K1: 1.5,
			B:  0.75,
		},
		Search: SearchSettings{
			DefaultLimit: 5,
		},
		Archive: ArchiveSettings{},
	}
}
