package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields_FlagOrderAndShorts(t *testing.T) {
	fields := Fields()
	require.Len(t, fields, 11)

	shorts := map[string]string{}
	for _, f := range fields {
		shorts[f.Key] = f.Short
	}

	assert.Equal(t, map[string]string{
		"version":     "v",
		"authors":     "a",
		"edition":     "e",
		"name":        "n",
		"homepage":    "o",
		"keywords":    "k",
		"license":     "l",
		"links":       "i",
		"description": "d",
		"categories":  "c",
		"purl":        "",
	}, shorts)
	assert.Equal(t, FieldVersion, fields[0].Field)
}

func TestFields_ReturnsCopy(t *testing.T) {
	fields := Fields()
	fields[0].Key = "mutated"

	assert.Equal(t, "version", FieldVersion.String())
}

func TestField_String(t *testing.T) {
	assert.Equal(t, "keywords", FieldKeywords.String())
	assert.Equal(t, "purl", FieldPURL.String())
	assert.Equal(t, "Field(0)", FieldNone.String())
	assert.Equal(t, "Field(99)", Field(99).String())
}

func TestField_IsMulti(t *testing.T) {
	multi := map[Field]bool{
		FieldAuthors:    true,
		FieldKeywords:   true,
		FieldCategories: true,
	}

	for _, f := range Fields() {
		assert.Equal(t, multi[f.Field], f.Field.IsMulti(), f.Key)
	}
	assert.False(t, FieldNone.IsMulti())
}

func TestParseField(t *testing.T) {
	for _, spec := range Fields() {
		got, err := ParseField(spec.Key)
		require.NoError(t, err)
		assert.Equal(t, spec.Field, got)
	}

	got, err := ParseField("dependencies")
	assert.ErrorIs(t, err, ErrInvalidSelection)
	assert.Equal(t, FieldNone, got)
}
