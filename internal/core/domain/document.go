package domain

import "strings"

// Field names a recognised document field. Collection records are
// loosely shaped in their source data; constraining field names to
// this enumerated set keeps lookups typo-safe across the codebase.
type Field string

// Recognised fields across all collections.
const (
	FieldName          Field = "name"
	FieldType          Field = "type"
	FieldDescription   Field = "description"
	FieldEffects       Field = "effects"
	FieldKeywords      Field = "keywords"
	FieldAudience      Field = "audience"
	FieldPerformance   Field = "performance"
	FieldAccessibility Field = "accessibility"
	FieldPrimary       Field = "primary"
	FieldSecondary     Field = "secondary"
	FieldAccent        Field = "accent"
	FieldBackground    Field = "background"
	FieldText          Field = "text"
	FieldMood          Field = "mood"
	FieldNotes         Field = "notes"
	FieldSections      Field = "sections"
	FieldCTA           Field = "cta"
	FieldColorStrategy Field = "colorstrategy"
	FieldConversion    Field = "conversion"
	FieldCategory      Field = "category"
	FieldHeading       Field = "heading"
	FieldBody          Field = "body"
	FieldLoading       Field = "loading"
)

// KnownFields returns every recognised field. Corpus loading rejects
// documents carrying field names outside this set.
func KnownFields() []Field {
	return []Field{
		FieldName, FieldType, FieldDescription, FieldEffects,
		FieldKeywords, FieldAudience, FieldPerformance, FieldAccessibility,
		FieldPrimary, FieldSecondary, FieldAccent, FieldBackground,
		FieldText, FieldMood, FieldNotes, FieldSections, FieldCTA,
		FieldColorStrategy, FieldConversion, FieldCategory,
		FieldHeading, FieldBody, FieldLoading,
	}
}

// IsKnownField reports whether a field name belongs to the recognised set.
func IsKnownField(f Field) bool {
	for _, known := range KnownFields() {
		if f == known {
			return true
		}
	}
	return false
}

// Document is one record of a collection: a mapping from recognised
// fields to string values. Documents are immutable once loaded; all
// derived views (projection, joined text) allocate fresh values.
type Document map[Field]string

// Get returns the value of a field, or the empty string when absent.
// Safe on a nil document.
func (d Document) Get(f Field) string {
	return d[f]
}

// Has reports whether the field is present with a non-empty value.
func (d Document) Has(f Field) bool {
	return d[f] != ""
}

// Clone returns an independent copy of the document.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for f, v := range d {
		out[f] = v
	}
	return out
}

// Project returns a new document containing only the given fields,
// omitting any that are absent or empty on the source.
func (d Document) Project(fields []Field) Document {
	out := make(Document, len(fields))
	for _, f := range fields {
		if v := d[f]; v != "" {
			out[f] = v
		}
	}
	return out
}

// JoinFields concatenates the values of the given fields with single
// spaces, in order. Absent fields contribute empty strings, so the
// result may contain runs of spaces; tokenization collapses them.
func (d Document) JoinFields(fields []Field) string {
	values := make([]string, len(fields))
	for i, f := range fields {
		values[i] = d[f]
	}
	return strings.Join(values, " ")
}
