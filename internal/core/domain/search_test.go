package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSearchResult_Fields tests SearchResult structure fields
func TestSearchResult_Fields(t *testing.T) {
	result := SearchResult{
		Collection: CollectionStyle,
		Document:   Document{FieldName: "Neumorphism"},
		Score:      1.4271,
	}

	assert.Equal(t, CollectionStyle, result.Collection)
	assert.Equal(t, "Neumorphism", result.Document.Get(FieldName))
	assert.Equal(t, 1.4271, result.Score)
}
