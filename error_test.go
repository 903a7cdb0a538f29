// FILE: lixenwraith/ezcfg/error_test.go
package ezcfg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	pathErr := &fs.PathError{Op: "open", Path: "/etc/app.cfg", Err: fs.ErrNotExist}

	tests := []struct {
		name     string
		err      *Error
		kind     Kind
		expected string
	}{
		{"Io", IoError("/etc/app.cfg", pathErr), KindIo, "open /etc/app.cfg: file does not exist"},
		{"Format", FormatError("no separator here"), KindFormat, "incorrect formatting: no separator here"},
		{"Parse", ParseError("port", "uint16", "http", nil), KindParse, "failed to parse uint16 from 'http'"},
		{"Missing", MissingError("port"), KindMissing, "missing field: port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.EqualError(t, tt.err, tt.expected)
		})
	}
}

func TestErrorKindMatching(t *testing.T) {
	err := fmt.Errorf("loading app config: %w", MissingError("host"))

	assert.ErrorIs(t, err, ErrMissing)
	assert.NotErrorIs(t, err, ErrFormat)
	assert.NotErrorIs(t, err, ErrParse)
	assert.NotErrorIs(t, err, ErrIo)

	var cfgErr *Error
	assert.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "host", cfgErr.Field)
}

func TestErrorUnwrap(t *testing.T) {
	t.Run("IoCause", func(t *testing.T) {
		_, statErr := os.Stat(t.TempDir() + "/absent.cfg")
		err := IoError("absent.cfg", statErr)

		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.ErrorIs(t, err, ErrIo)
		assert.True(t, IsNotExist(err))
	})

	t.Run("ParseCause", func(t *testing.T) {
		cause := errors.New("bad digit")
		err := ParseError("port", "int", "x", cause)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("NoCause", func(t *testing.T) {
		assert.Nil(t, FormatError("x").Unwrap())
		assert.Nil(t, MissingError("x").Unwrap())
	})

	t.Run("IsNotExistRequiresIo", func(t *testing.T) {
		assert.False(t, IsNotExist(fs.ErrNotExist))
		assert.False(t, IsNotExist(MissingError("x")))
		assert.False(t, IsNotExist(nil))
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "io", KindIo.String())
	assert.Equal(t, "format", KindFormat.String())
	assert.Equal(t, "parse", KindParse.String())
	assert.Equal(t, "missing", KindMissing.String())
	assert.Equal(t, "kind(0)", Kind(0).String())
}
