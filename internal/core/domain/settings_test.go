package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultAppSettings tests the default values
func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	assert.Equal(t, 1.5, settings.Engine.K1)
	assert.Equal(t, 0.75, settings.Engine.B)
	assert.Equal(t, 5, settings.Search.DefaultLimit)
	assert.Empty(t, settings.Archive.Dir)

	require.NoError(t, settings.Validate())
}

// TestEngineSettings_Validate tests the parameter ranges
func TestEngineSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		k1      float64
		b       float64
		wantErr bool
	}{
		{"standard values", 1.5, 0.75, false},
		{"b at lower bound", 1.2, 0, false},
		{"b at upper bound", 1.2, 1, false},
		{"zero k1", 0, 0.75, true},
		{"negative k1", -1, 0.75, true},
		{"b above one", 1.5, 1.1, true},
		{"negative b", 1.5, -0.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EngineSettings{K1: tt.k1, B: tt.b}.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSetting)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestSearchSettings_Validate tests the limit range
func TestSearchSettings_Validate(t *testing.T) {
	assert.NoError(t, SearchSettings{DefaultLimit: 3}.Validate())
	assert.ErrorIs(t, SearchSettings{DefaultLimit: 0}.Validate(), ErrInvalidSetting)
	assert.ErrorIs(t, SearchSettings{DefaultLimit: -5}.Validate(), ErrInvalidSetting)
}
