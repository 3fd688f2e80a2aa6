package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDocument_GetAndHas tests field access on present, empty and absent fields
func TestDocument_GetAndHas(t *testing.T) {
	doc := Document{
		FieldName:     "Glassmorphism",
		FieldKeywords: "",
	}

	assert.Equal(t, "Glassmorphism", doc.Get(FieldName))
	assert.True(t, doc.Has(FieldName))

	assert.Equal(t, "", doc.Get(FieldKeywords))
	assert.False(t, doc.Has(FieldKeywords))

	assert.Equal(t, "", doc.Get(FieldMood))
	assert.False(t, doc.Has(FieldMood))
}

// TestDocument_NilSafe tests that a nil document reads as empty
func TestDocument_NilSafe(t *testing.T) {
	var doc Document

	assert.Equal(t, "", doc.Get(FieldName))
	assert.False(t, doc.Has(FieldName))
	assert.Nil(t, doc.Clone())
}

// TestDocument_Clone tests that clones are independent copies
func TestDocument_Clone(t *testing.T) {
	doc := Document{FieldName: "Brutalism", FieldType: "decorative"}

	clone := doc.Clone()
	require.Equal(t, doc, clone)

	clone[FieldName] = "changed"
	assert.Equal(t, "Brutalism", doc.Get(FieldName))
}

// TestDocument_Project tests projection onto a field subset
func TestDocument_Project(t *testing.T) {
	doc := Document{
		FieldName:        "Minimalism",
		FieldType:        "minimal",
		FieldDescription: "",
		FieldEffects:     "whitespace, thin rules",
	}

	projected := doc.Project([]Field{FieldName, FieldDescription, FieldEffects, FieldMood})

	assert.Equal(t, Document{
		FieldName:    "Minimalism",
		FieldEffects: "whitespace, thin rules",
	}, projected)
}

// TestDocument_JoinFields tests searchable-text construction
func TestDocument_JoinFields(t *testing.T) {
	doc := Document{
		FieldName:     "Flat Design",
		FieldKeywords: "flat, bold, simple",
	}

	joined := doc.JoinFields([]Field{FieldName, FieldType, FieldKeywords})

	// The absent type field contributes an empty string between the
	// two separators.
	assert.Equal(t, "Flat Design  flat, bold, simple", joined)
}

// TestKnownFields tests the recognised-field set
func TestKnownFields(t *testing.T) {
	assert.True(t, IsKnownField(FieldName))
	assert.True(t, IsKnownField(FieldColorStrategy))
	assert.False(t, IsKnownField(Field("font_size")))

	seen := make(map[Field]bool)
	for _, f := range KnownFields() {
		assert.False(t, seen[f], "field %q listed twice", f)
		seen[f] = true
	}
}
