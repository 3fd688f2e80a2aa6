package domain

// Collection identifies a named design-asset collection.
type Collection string

// Available collections.
const (
	// CollectionStyle holds visual design styles (Minimalism,
	// Glassmorphism, Brutalism, ...).
	CollectionStyle Collection = "style"

	// CollectionColor holds colour palettes with semantic roles.
	CollectionColor Collection = "color"

	// CollectionPattern holds landing-page layout patterns.
	CollectionPattern Collection = "pattern"

	// CollectionProduct holds product categories used to resolve a
	// query into a reasoning category.
	CollectionProduct Collection = "product"

	// CollectionTypography holds heading/body font pairings.
	CollectionTypography Collection = "typography"
)

// Collections returns every known collection in canonical order.
func Collections() []Collection {
	return []Collection{
		CollectionStyle,
		CollectionColor,
		CollectionPattern,
		CollectionProduct,
		CollectionTypography,
	}
}

// IsValid returns true if the collection is recognised.
func (c Collection) IsValid() bool {
	switch c {
	case CollectionStyle, CollectionColor, CollectionPattern,
		CollectionProduct, CollectionTypography:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c Collection) String() string {
	return string(c)
}

// IdentityField returns the field that names a document of this
// collection. Corpus loading requires it on every document, and
// result listings label documents by it.
func (c Collection) IdentityField() Field {
	switch c {
	case CollectionProduct:
		return FieldCategory
	case CollectionTypography:
		return FieldHeading
	default:
		return FieldName
	}
}

// Description returns a human-readable description of the collection.
func (c Collection) Description() string {
	switch c {
	case CollectionStyle:
		return "Visual design styles"
	case CollectionColor:
		return "Colour palettes"
	case CollectionPattern:
		return "Landing-page layout patterns"
	case CollectionProduct:
		return "Product categories"
	case CollectionTypography:
		return "Font pairings"
	default:
		return unknownDescription
	}
}

// CollectionInfo summarises one loaded collection for listings.
type CollectionInfo struct {
	// Name is the collection identifier.
	Name Collection `json:"name"`

	// Description is the human-readable description.
	Description string `json:"description"`

	// Count is the number of loaded documents.
	Count int `json:"count"`
}

// Schema declares how a collection is searched and projected.
type Schema struct {
	// Search lists the fields concatenated into the per-document
	// searchable text, in order.
	Search []Field

	// Output lists the fields projected into result records, in order.
	Output []Field
}

// schemas holds the fixed per-collection field configuration.
var schemas = map[Collection]Schema{
	CollectionStyle: {
		Search: []Field{FieldName, FieldType, FieldKeywords, FieldDescription, FieldAudience},
		Output: []Field{
			FieldName, FieldType, FieldDescription, FieldEffects,
			FieldKeywords, FieldAudience, FieldPerformance, FieldAccessibility,
		},
	},
	CollectionColor: {
		Search: []Field{FieldName, FieldMood, FieldKeywords},
		Output: []Field{
			FieldName, FieldPrimary, FieldSecondary, FieldAccent,
			FieldBackground, FieldText, FieldMood, FieldNotes,
		},
	},
	CollectionPattern: {
		Search: []Field{FieldName, FieldKeywords, FieldAudience, FieldConversion},
		Output: []Field{FieldName, FieldSections, FieldCTA, FieldColorStrategy, FieldConversion},
	},
	CollectionProduct: {
		Search: []Field{FieldCategory, FieldKeywords, FieldDescription},
		Output: []Field{FieldCategory, FieldKeywords},
	},
	CollectionTypography: {
		Search: []Field{FieldHeading, FieldBody, FieldMood, FieldKeywords, FieldAudience},
		Output: []Field{FieldHeading, FieldBody, FieldMood, FieldAudience, FieldLoading},
	},
}

// SchemaFor returns the search/output schema of a collection.
// Unknown collections yield a zero schema.
func SchemaFor(c Collection) Schema {
	return schemas[c]
}
