// FILE: lixenwraith/ezcfg/io.go
package ezcfg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Read loads and decodes the schema's file.
func (s *Schema) Read() (*Values, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, IoError(s.path, err)
	}
	return s.Decode(data)
}

// DecodeFrom decodes everything read from r.
func (s *Schema) DecodeFrom(r io.Reader) (*Values, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, IoError("", err)
	}
	return s.Decode(data)
}

// Write encodes v and overwrites the schema's file with it.
// Unless the schema was built WithAtomicWrite, a failed write may leave the
// file truncated.
func (s *Schema) Write(v *Values) error {
	if v == nil || v.schema == nil {
		return fmt.Errorf("cannot write values not built from a schema")
	}
	if v.schema != s {
		return fmt.Errorf("values belong to the schema for '%s', not '%s'", v.schema.path, s.path)
	}

	data := v.Encode()
	if s.opts.atomic {
		if err := atomicWriteFile(s.path, data, s.opts.mode); err != nil {
			return IoError(s.path, err)
		}
		return nil
	}

	if err := os.WriteFile(s.path, data, s.opts.mode); err != nil {
		return IoError(s.path, err)
	}
	return nil
}

// atomicWriteFile performs atomic file write
func atomicWriteFile(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	removed := false
	defer func() {
		if !removed {
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file '%s': %w", tempPath, err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file '%s': %w", tempPath, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file '%s': %w", tempPath, err)
	}

	if err := os.Chmod(tempPath, mode); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file '%s' to '%s': %w", tempPath, path, err)
	}
	removed = true

	return nil
}
