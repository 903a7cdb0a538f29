// FILE: lixenwraith/ezcfg/schema.go
package ezcfg

import (
	"fmt"
	"os"
)

// DefaultFileMode is applied to configuration files created by Write.
const DefaultFileMode os.FileMode = 0644

// Field describes one name=value line of a configuration file.
type Field struct {
	Name string
	Type Type
}

// Option configures how a schema writes its file.
type Option func(*writeOptions)

type writeOptions struct {
	atomic bool
	mode   os.FileMode
}

func defaultWriteOptions() writeOptions {
	return writeOptions{mode: DefaultFileMode}
}

// WithAtomicWrite makes Write replace the file through a synced temporary
// file and rename instead of truncating it in place.
func WithAtomicWrite() Option {
	return func(o *writeOptions) {
		o.atomic = true
	}
}

// WithFileMode sets the permissions of files created by Write.
func WithFileMode(mode os.FileMode) Option {
	return func(o *writeOptions) {
		o.mode = mode
	}
}

// Schema is an ordered set of uniquely named fields bound to one file path.
// A Schema never changes after construction and may be shared freely.
type Schema struct {
	path   string
	fields []Field
	index  map[string]int
	opts   writeOptions
}

// NewSchema validates fields and binds them to path.
// Field order is the order Encode writes lines in.
func NewSchema(path string, fields []Field, opts ...Option) (*Schema, error) {
	if path == "" {
		return nil, fmt.Errorf("schema path cannot be empty")
	}

	s := &Schema{
		path:   path,
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
		opts:   defaultWriteOptions(),
	}

	for _, f := range fields {
		if err := validateFieldName(f.Name); err != nil {
			return nil, err
		}
		if f.Type == nil {
			return nil, fmt.Errorf("field %q has no type", f.Name)
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, fmt.Errorf("duplicate field name %q", f.Name)
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&s.opts)
		}
	}

	return s, nil
}

// Path returns the file the schema reads and writes.
func (s *Schema) Path() string {
	return s.path
}

// Fields returns a copy of the fields in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field looks up a field by name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Len returns the number of fields.
func (s *Schema) Len() int {
	return len(s.fields)
}

// New builds a value-set from values given positionally in field order.
// Each value must be of its field's Go type.
func (s *Schema) New(values ...any) (*Values, error) {
	if len(values) != len(s.fields) {
		return nil, fmt.Errorf("schema has %d fields, got %d values", len(s.fields), len(values))
	}

	for i, f := range s.fields {
		if _, err := f.Type.Format(values[i]); err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
	}

	vals := make([]any, len(values))
	copy(vals, values)
	return &Values{schema: s, vals: vals}, nil
}

// MustNew is like New but panics on error.
func (s *Schema) MustNew(values ...any) *Values {
	v, err := s.New(values...)
	if err != nil {
		panic(fmt.Sprintf("config values construction failed: %v", err))
	}
	return v
}
