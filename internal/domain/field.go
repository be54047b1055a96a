package domain

import "fmt"

// Field identifies one selectable piece of package metadata
type Field int

// Selectable fields. FieldNone is the zero value and never valid.
const (
	FieldNone Field = iota
	FieldVersion
	FieldAuthors
	FieldEdition
	FieldName
	FieldHomepage
	FieldKeywords
	FieldLicense
	FieldLinks
	FieldDescription
	FieldCategories
	FieldPURL
)

// FieldSpec describes how a field is exposed on the command line
type FieldSpec struct {
	Field Field
	Key   string // key inside [package], also the long flag name
	Short string
	Help  string
	Multi bool
}

var fieldSpecs = []FieldSpec{
	{Field: FieldVersion, Key: "version", Short: "v", Help: "get package.version"},
	{Field: FieldAuthors, Key: "authors", Short: "a", Help: "get package.authors", Multi: true},
	{Field: FieldEdition, Key: "edition", Short: "e", Help: "get package.edition"},
	{Field: FieldName, Key: "name", Short: "n", Help: "get package.name"},
	{Field: FieldHomepage, Key: "homepage", Short: "o", Help: "get package.homepage"},
	{Field: FieldKeywords, Key: "keywords", Short: "k", Help: "get package.keywords", Multi: true},
	{Field: FieldLicense, Key: "license", Short: "l", Help: "get package.license"},
	{Field: FieldLinks, Key: "links", Short: "i", Help: "get package.links"},
	{Field: FieldDescription, Key: "description", Short: "d", Help: "get package.description"},
	{Field: FieldCategories, Key: "categories", Short: "c", Help: "get package.categories", Multi: true},
	{Field: FieldPURL, Key: "purl", Help: "get the package URL (pkg:cargo/name@version)"},
}

// Fields returns the specs of all selectable fields in flag order
func Fields() []FieldSpec {
	out := make([]FieldSpec, len(fieldSpecs))
	copy(out, fieldSpecs)
	return out
}

// Spec returns the spec for f
func (f Field) Spec() (FieldSpec, bool) {
	for _, s := range fieldSpecs {
		if s.Field == f {
			return s, true
		}
	}
	return FieldSpec{}, false
}

// String returns the package key of the field
func (f Field) String() string {
	if s, ok := f.Spec(); ok {
		return s.Key
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// IsMulti reports whether the field holds a list of values
func (f Field) IsMulti() bool {
	s, ok := f.Spec()
	return ok && s.Multi
}

// ParseField looks a field up by its package key
func ParseField(key string) (Field, error) {
	for _, s := range fieldSpecs {
		if s.Key == key {
			return s.Field, nil
		}
	}
	return FieldNone, fmt.Errorf("%w: unknown field %q", ErrInvalidSelection, key)
}
