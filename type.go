// FILE: lixenwraith/ezcfg/type.go
package ezcfg

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"sync"
)

// Type is the parse/format capability of one field type.
// Format(v) must produce a string that Parse turns back into v.
type Type interface {
	// Name is the type name reported in parse errors (e.g. "uint32")
	Name() string
	// GoType is the dynamic type of values produced by Parse
	GoType() reflect.Type
	// Parse converts a raw value string, failing with an error on malformed input
	Parse(s string) (any, error)
	// Format renders v canonically. It fails if v is not of GoType.
	Format(v any) (string, error)
}

// NewType builds a Type from a typed parse/format pair.
// An empty name defaults to the Go type name of T.
func NewType[T any](name string, parse func(string) (T, error), format func(T) string) Type {
	rt := reflect.TypeFor[T]()
	if name == "" {
		name = rt.String()
	}
	return &funcType[T]{name: name, rt: rt, parse: parse, format: format}
}

type funcType[T any] struct {
	name   string
	rt     reflect.Type
	parse  func(string) (T, error)
	format func(T) string
}

func (t *funcType[T]) Name() string         { return t.name }
func (t *funcType[T]) GoType() reflect.Type { return t.rt }

func (t *funcType[T]) Parse(s string) (any, error) {
	v, err := t.parse(s)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (t *funcType[T]) Format(v any) (string, error) {
	tv, ok := v.(T)
	if !ok {
		return "", fmt.Errorf("value of type %T is not %s", v, t.name)
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map:
		if rv.IsNil() {
			return "", fmt.Errorf("nil %s has no canonical form", t.name)
		}
	}
	return t.format(tv), nil
}

// Built-in scalar types
var (
	String  = NewType("string", func(s string) (string, error) { return s, nil }, func(s string) string { return s })
	Bool    = NewType("bool", strconv.ParseBool, strconv.FormatBool)
	Int     = signedType[int]("int", strconv.IntSize)
	Int8    = signedType[int8]("int8", 8)
	Int16   = signedType[int16]("int16", 16)
	Int32   = signedType[int32]("int32", 32)
	Int64   = signedType[int64]("int64", 64)
	Uint    = unsignedType[uint]("uint", strconv.IntSize)
	Uint8   = unsignedType[uint8]("uint8", 8)
	Uint16  = unsignedType[uint16]("uint16", 16)
	Uint32  = unsignedType[uint32]("uint32", 32)
	Uint64  = unsignedType[uint64]("uint64", 64)
	Float32 = floatType[float32]("float32", 32)
	Float64 = floatType[float64]("float64", 64)
)

func signedType[T ~int | ~int8 | ~int16 | ~int32 | ~int64](name string, bits int) Type {
	return NewType(name,
		func(s string) (T, error) {
			i, err := strconv.ParseInt(s, 10, bits)
			return T(i), err
		},
		func(v T) string { return strconv.FormatInt(int64(v), 10) },
	)
}

func unsignedType[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](name string, bits int) Type {
	return NewType(name,
		func(s string) (T, error) {
			u, err := strconv.ParseUint(s, 10, bits)
			return T(u), err
		},
		func(v T) string { return strconv.FormatUint(uint64(v), 10) },
	)
}

func floatType[T ~float32 | ~float64](name string, bits int) Type {
	return NewType(name,
		func(s string) (T, error) {
			f, err := strconv.ParseFloat(s, bits)
			return T(f), err
		},
		func(v T) string { return strconv.FormatFloat(float64(v), 'g', -1, bits) },
	)
}

var (
	typesMu    sync.RWMutex
	typesByGo  = make(map[reflect.Type]Type)
	textMarker = reflect.TypeFor[encoding.TextUnmarshaler]()
)

func init() {
	for _, t := range []Type{
		String, Bool,
		Int, Int8, Int16, Int32, Int64,
		Uint, Uint8, Uint16, Uint32, Uint64,
		Float32, Float64,
		Duration, Time, IP, IPNet, URL,
	} {
		typesByGo[t.GoType()] = t
	}
}

// RegisterType makes t the type used by TypeOf (and so by Bind) for its Go type.
// A later registration for the same Go type replaces the earlier one.
func RegisterType(t Type) error {
	if t == nil || t.GoType() == nil {
		return fmt.Errorf("cannot register nil type")
	}
	typesMu.Lock()
	defer typesMu.Unlock()
	typesByGo[t.GoType()] = t
	return nil
}

// TypeOf returns the Type for a Go type: a registered or built-in type first,
// then a text type when *rt implements encoding.TextUnmarshaler and rt or *rt
// implements encoding.TextMarshaler.
func TypeOf(rt reflect.Type) (Type, error) {
	if rt == nil {
		return nil, fmt.Errorf("nil type has no codec")
	}

	typesMu.RLock()
	t, ok := typesByGo[rt]
	typesMu.RUnlock()
	if ok {
		return t, nil
	}

	if tt, ok := textTypeOf(rt); ok {
		return tt, nil
	}

	return nil, fmt.Errorf("no codec for type %s", rt)
}

// TypeFor is TypeOf for a type parameter.
func TypeFor[T any]() (Type, error) {
	return TypeOf(reflect.TypeFor[T]())
}
