package manifest

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/quantmind-br/cargo-get/internal/domain"
)

// Parse decodes manifest content into a Package
func Parse(data []byte) (*domain.Package, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("%w: line %d, column %d: %s", domain.ErrMalformedManifest, row, col, decodeErr.Error())
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedManifest, err)
	}

	raw, ok := doc["package"]
	if !ok {
		return nil, fmt.Errorf("%w: missing [package] table", domain.ErrSchemaMismatch)
	}
	table, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: package must be a table", domain.ErrSchemaMismatch)
	}

	d := &tableDecoder{
		table:     table,
		inherited: make(map[string]bool),
	}

	pkg := &domain.Package{}

	name, err := d.required("name", false)
	if err != nil {
		return nil, err
	}
	pkg.Name = name

	version, err := d.required("version", true)
	if err != nil {
		return nil, err
	}
	pkg.Version = version

	optional := []struct {
		key string
		dst **string
	}{
		{"edition", &pkg.Edition},
		{"homepage", &pkg.Homepage},
		{"license", &pkg.License},
		{"links", &pkg.Links},
		{"description", &pkg.Description},
	}
	for _, o := range optional {
		if *o.dst, err = d.optional(o.key); err != nil {
			return nil, err
		}
	}

	lists := []struct {
		key string
		dst *[]string
	}{
		{"authors", &pkg.Authors},
		{"keywords", &pkg.Keywords},
		{"categories", &pkg.Categories},
	}
	for _, l := range lists {
		if *l.dst, err = d.list(l.key); err != nil {
			return nil, err
		}
	}

	pkg.Inherited = d.inherited
	return pkg, nil
}

// tableDecoder extracts typed values from the generic [package] table
type tableDecoder struct {
	table     map[string]any
	inherited map[string]bool
}

// required returns a string value that must be present.
// When inheritable, `{ workspace = true }` is accepted and yields "".
func (d *tableDecoder) required(key string, inheritable bool) (string, error) {
	raw, ok := d.table[key]
	if !ok {
		return "", domain.NewSchemaError(key, "missing required key")
	}
	if inheritable && d.markInherited(key, raw) {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", domain.NewSchemaError(key, "expected string")
	}
	return s, nil
}

// optional returns nil for an absent or inherited key
func (d *tableDecoder) optional(key string) (*string, error) {
	raw, ok := d.table[key]
	if !ok || d.markInherited(key, raw) {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, domain.NewSchemaError(key, "expected string")
	}
	return &s, nil
}

// list returns nil for an absent or inherited key and a non-nil slice otherwise
func (d *tableDecoder) list(key string) ([]string, error) {
	raw, ok := d.table[key]
	if !ok || d.markInherited(key, raw) {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, domain.NewSchemaError(key, "expected array of strings")
	}

	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, domain.NewSchemaError(key, fmt.Sprintf("item %d: expected string", i))
		}
		out = append(out, s)
	}
	return out, nil
}

// markInherited records key when raw is `{ workspace = true }`
func (d *tableDecoder) markInherited(key string, raw any) bool {
	t, ok := raw.(map[string]any)
	if !ok {
		return false
	}
	if ws, _ := t["workspace"].(bool); ws {
		d.inherited[key] = true
		return true
	}
	return false
}
