package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDefaultPalette tests the documented fallback colours
func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()

	assert.Equal(t, "#2563EB", p.Primary)
	assert.Equal(t, "#1E40AF", p.Secondary)
	assert.Equal(t, "#F59E0B", p.Accent)
	assert.Equal(t, "#F9FAFB", p.Background)
	assert.Equal(t, "#111827", p.Text)
	assert.Empty(t, p.Name)
	assert.Empty(t, p.Notes)
}

// TestDefaultPatternChoice tests the fallback layout
func TestDefaultPatternChoice(t *testing.T) {
	p := DefaultPatternChoice()

	assert.Equal(t, "Hero + Features + CTA", p.Name)
	assert.NotEmpty(t, p.Sections)
	assert.NotEmpty(t, p.CTAPlacement)
	assert.NotEmpty(t, p.ColorStrategy)
	assert.Empty(t, p.ConversionNotes)
}

// TestDefaultStyleChoice tests the fallback style
func TestDefaultStyleChoice(t *testing.T) {
	s := DefaultStyleChoice()

	assert.Equal(t, "Minimalism", s.Name)
	assert.Equal(t, "minimal", s.Type)
	assert.Empty(t, s.Effects)
}

// TestDefaultTypographyChoice tests the fallback pairing
func TestDefaultTypographyChoice(t *testing.T) {
	ty := DefaultTypographyChoice()

	assert.Equal(t, "Inter", ty.Heading)
	assert.Equal(t, "Inter", ty.Body)
	assert.Empty(t, ty.Mood)
}
