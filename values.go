// FILE: lixenwraith/ezcfg/values.go
package ezcfg

import (
	"fmt"
)

// Values holds exactly one typed value per field of its schema.
// It is immutable; With returns a modified copy.
type Values struct {
	schema *Schema
	vals   []any
}

// Schema returns the schema the values belong to.
func (v *Values) Schema() *Schema {
	if v == nil {
		return nil
	}
	return v.schema
}

// Get retrieves the value of a field.
// The second return value reports whether the field exists.
func (v *Values) Get(name string) (any, bool) {
	i, ok := v.lookup(name)
	if !ok {
		return nil, false
	}
	return v.vals[i], true
}

// String returns the canonical rendering of a field, as Encode writes it.
func (v *Values) String(name string) (string, error) {
	i, ok := v.lookup(name)
	if !ok {
		return "", fmt.Errorf("unknown field: %s", name)
	}
	return v.schema.fields[i].Type.Format(v.vals[i])
}

// Lookup retrieves a field value as T.
func Lookup[T any](v *Values, name string) (T, error) {
	var zero T
	val, ok := v.Get(name)
	if !ok {
		return zero, fmt.Errorf("unknown field: %s", name)
	}
	tv, ok := val.(T)
	if !ok {
		return zero, fmt.Errorf("field %s holds %T, not %T", name, val, zero)
	}
	return tv, nil
}

// With returns a copy of v with one field replaced.
func (v *Values) With(name string, value any) (*Values, error) {
	i, ok := v.lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown field: %s", name)
	}
	if _, err := v.schema.fields[i].Type.Format(value); err != nil {
		return nil, fmt.Errorf("field %q: %w", name, err)
	}

	vals := make([]any, len(v.vals))
	copy(vals, v.vals)
	vals[i] = value
	return &Values{schema: v.schema, vals: vals}, nil
}

// Map returns the values keyed by field name.
func (v *Values) Map() map[string]any {
	fields := v.fields()
	m := make(map[string]any, len(fields))
	for i, f := range fields {
		m[f.Name] = v.vals[i]
	}
	return m
}

// Equal reports whether both value-sets have the same field names, types and
// canonical renderings.
func (v *Values) Equal(other *Values) bool {
	if v == nil || other == nil {
		return v == other
	}
	if len(v.fields()) != len(other.fields()) {
		return false
	}

	for i, f := range v.fields() {
		j, ok := other.lookup(f.Name)
		if !ok || other.schema.fields[j].Type.Name() != f.Type.Name() {
			return false
		}
		a, errA := f.Type.Format(v.vals[i])
		b, errB := other.schema.fields[j].Type.Format(other.vals[j])
		if errA != nil || errB != nil || a != b {
			return false
		}
	}
	return true
}

// fields returns the schema fields, or none for a zero Values.
func (v *Values) fields() []Field {
	if v == nil || v.schema == nil {
		return nil
	}
	return v.schema.fields
}

func (v *Values) lookup(name string) (int, bool) {
	if v == nil || v.schema == nil {
		return 0, false
	}
	i, ok := v.schema.index[name]
	return i, ok
}
