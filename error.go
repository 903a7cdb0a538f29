// FILE: lixenwraith/ezcfg/error.go
package ezcfg

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind classifies a read or write failure.
type Kind int

const (
	// KindIo reports a file that could not be opened, read or written
	KindIo Kind = iota + 1
	// KindFormat reports a line that is not a single name=value pair
	KindFormat
	// KindParse reports a raw value that its field type rejected
	KindParse
	// KindMissing reports a schema field with no line in the file
	KindMissing
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindIo:
		return "io"
	case KindFormat:
		return "format"
	case KindParse:
		return "parse"
	case KindMissing:
		return "missing"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sentinels for errors.Is checks against an *Error kind.
var (
	ErrIo      = &Error{Kind: KindIo}
	ErrFormat  = &Error{Kind: KindFormat}
	ErrParse   = &Error{Kind: KindParse}
	ErrMissing = &Error{Kind: KindMissing}
)

// Error is the only error type returned by Read, Decode, Import and Write.
// Which context fields are set depends on Kind.
type Error struct {
	Kind Kind

	// Line is the offending line verbatim (KindFormat)
	Line string
	// Field is the field name (KindMissing, KindParse)
	Field string
	// TypeName and Value describe a rejected raw value (KindParse)
	TypeName string
	Value    string
	// Path is the file involved (KindIo)
	Path string
	// Err is the underlying cause (KindIo, KindParse)
	Err error
}

// IoError wraps a file system failure for path.
func IoError(path string, err error) *Error {
	return &Error{Kind: KindIo, Path: path, Err: err}
}

// FormatError reports a malformed line.
func FormatError(line string) *Error {
	return &Error{Kind: KindFormat, Line: line}
}

// ParseError reports that value could not be parsed as typeName for field.
func ParseError(field, typeName, value string, cause error) *Error {
	return &Error{Kind: KindParse, Field: field, TypeName: typeName, Value: value, Err: cause}
}

// MissingError reports an absent field.
func MissingError(field string) *Error {
	return &Error{Kind: KindMissing, Field: field}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindIo:
		if e.Err == nil {
			return "io error"
		}
		return e.Err.Error()
	case KindFormat:
		return fmt.Sprintf("incorrect formatting: %s", e.Line)
	case KindParse:
		return fmt.Sprintf("failed to parse %s from '%s'", e.TypeName, e.Value)
	case KindMissing:
		return fmt.Sprintf("missing field: %s", e.Field)
	default:
		return "unknown config error"
	}
}

// Unwrap exposes the I/O or parse cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrMissing) holds
// for every missing-field error regardless of its field.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// IsNotExist reports whether err is an I/O failure caused by a missing file.
func IsNotExist(err error) bool {
	return errors.Is(err, ErrIo) && errors.Is(err, fs.ErrNotExist)
}
