// FILE: lixenwraith/ezcfg/bind.go
package ezcfg

import (
	"fmt"
	"reflect"
	"strings"
)

// TagName is the struct tag Bind reads field names from.
const TagName = "ezcfg"

// Binding reads and writes a flat struct type T through a schema derived from it.
type Binding[T any] struct {
	schema *Schema
	index  []int // struct field index per schema field
}

// Bind derives a schema from the exported fields of struct type T.
// A field is named by its `ezcfg:"name"` tag or its Go name; `ezcfg:"-"` skips it.
// Every field type must resolve through TypeOf; nested structs are rejected
// unless they are registered or text types.
func Bind[T any](path string, opts ...Option) (*Binding[T], error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("Bind requires a struct type, got %s", rt)
	}

	var (
		fields []Field
		index  []int
		errs   []string
	)

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		tag := sf.Tag.Get(TagName)
		if tag == "-" {
			continue
		}

		name := sf.Name
		if tag != "" {
			parts := strings.Split(tag, ",")
			if parts[0] != "" {
				name = parts[0]
			}
		}

		typ, err := TypeOf(sf.Type)
		if err != nil {
			errs = append(errs, fmt.Sprintf("field %s (%s): %v", sf.Name, name, err))
			continue
		}

		fields = append(fields, Field{Name: name, Type: typ})
		index = append(index, i)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to bind %d field(s) of %s: %s", len(errs), rt, strings.Join(errs, "; "))
	}

	schema, err := NewSchema(path, fields, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid schema for %s: %w", rt, err)
	}

	return &Binding[T]{schema: schema, index: index}, nil
}

// Schema returns the derived schema.
func (b *Binding[T]) Schema() *Schema {
	return b.schema
}

// Path returns the bound file path.
func (b *Binding[T]) Path() string {
	return b.schema.path
}

// Read loads the bound file into a new T.
func (b *Binding[T]) Read() (T, error) {
	values, err := b.schema.Read()
	if err != nil {
		var zero T
		return zero, err
	}
	return b.Scan(values)
}

// Decode parses file content into a new T.
func (b *Binding[T]) Decode(data []byte) (T, error) {
	values, err := b.schema.Decode(data)
	if err != nil {
		var zero T
		return zero, err
	}
	return b.Scan(values)
}

// Write overwrites the bound file with the fields of cfg.
func (b *Binding[T]) Write(cfg T) error {
	values, err := b.Values(cfg)
	if err != nil {
		return err
	}
	return b.schema.Write(values)
}

// Values converts cfg into a value-set of the derived schema.
func (b *Binding[T]) Values(cfg T) (*Values, error) {
	rv := reflect.ValueOf(cfg)
	vals := make([]any, len(b.index))
	for i, fi := range b.index {
		vals[i] = rv.Field(fi).Interface()
	}
	return b.schema.New(vals...)
}

// Scan copies a value-set of the derived schema into a new T.
func (b *Binding[T]) Scan(values *Values) (T, error) {
	var out T
	if values == nil || values.schema != b.schema {
		return out, fmt.Errorf("values do not belong to the schema bound to %s", b.schema.path)
	}
	if err := decodeStruct(values.Map(), TagName, &out); err != nil {
		return out, err
	}
	return out, nil
}
