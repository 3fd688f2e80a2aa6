package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSeverity_IsValid tests severity validation
func TestSeverity_IsValid(t *testing.T) {
	assert.True(t, SeverityLow.IsValid())
	assert.True(t, SeverityMedium.IsValid())
	assert.True(t, SeverityHigh.IsValid())

	assert.False(t, Severity("CRITICAL").IsValid())
	assert.False(t, Severity("medium").IsValid())
	assert.False(t, Severity("").IsValid())
}

// TestDefaultGuidance tests the safe fallback values
func TestDefaultGuidance(t *testing.T) {
	g := DefaultGuidance()

	assert.Equal(t, "Hero + Features + CTA", g.Pattern)
	assert.Equal(t, []string{"Minimalism", "Flat Design"}, g.StylePriorities)
	assert.Equal(t, "Professional", g.ColorMood)
	assert.Equal(t, "Professional", g.TypographyMood)
	assert.Equal(t, SeverityMedium, g.Severity)
	assert.Empty(t, g.KeyEffects)
	assert.Empty(t, g.AntiPatterns)
	assert.NotNil(t, g.DecisionRules)
	assert.Empty(t, g.DecisionRules)
}
