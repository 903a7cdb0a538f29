// File: lixenwraith/ezcfg/builder.go
package ezcfg

import (
	"errors"
	"fmt"
	"os"
	"reflect"
)

// Builder provides a fluent interface for declaring a schema
type Builder struct {
	path   string
	fields []Field
	opts   []Option
	errs   []error
}

// NewBuilder creates a new schema builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithPath sets the configuration file path
func (b *Builder) WithPath(path string) *Builder {
	b.path = path
	return b
}

// Field appends a field with an explicit type
func (b *Builder) Field(name string, typ Type) *Builder {
	b.fields = append(b.fields, Field{Name: name, Type: typ})
	return b
}

// FieldLike appends a field typed after the dynamic type of example,
// resolved through TypeOf
func (b *Builder) FieldLike(name string, example any) *Builder {
	typ, err := TypeOf(reflect.TypeOf(example))
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("field %q: %w", name, err))
		return b
	}
	return b.Field(name, typ)
}

// WithAtomicWrite makes the schema replace its file atomically on write
func (b *Builder) WithAtomicWrite() *Builder {
	b.opts = append(b.opts, WithAtomicWrite())
	return b
}

// WithFileMode sets the permissions of written files
func (b *Builder) WithFileMode(mode os.FileMode) *Builder {
	b.opts = append(b.opts, WithFileMode(mode))
	return b
}

// Build creates the Schema with all specified fields and options
func (b *Builder) Build() (*Schema, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("schema declaration failed: %w", errors.Join(b.errs...))
	}
	return NewSchema(b.path, b.fields, b.opts...)
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("schema build failed: %v", err))
	}
	return s
}

// BuildAndRead builds the schema and reads its file
func (b *Builder) BuildAndRead() (*Schema, *Values, error) {
	s, err := b.Build()
	if err != nil {
		return nil, nil, err
	}
	v, err := s.Read()
	if err != nil {
		return s, nil, err
	}
	return s, v, nil
}
