// File: lixenwraith/ezcfg/convenience.go
package ezcfg

import "fmt"

// Load binds T to path and reads it in a single call
func Load[T any](path string) (T, error) {
	b, err := Bind[T](path)
	if err != nil {
		var zero T
		return zero, err
	}
	return b.Read()
}

// Save binds T to path and writes cfg in a single call
func Save[T any](path string, cfg T, opts ...Option) error {
	b, err := Bind[T](path, opts...)
	if err != nil {
		return err
	}
	return b.Write(cfg)
}

// MustBind is like Bind but panics on error.
// Intended for package-level declarations of configuration kinds.
func MustBind[T any](path string, opts ...Option) *Binding[T] {
	b, err := Bind[T](path, opts...)
	if err != nil {
		panic(fmt.Sprintf("config binding failed: %v", err))
	}
	return b
}

// LoadOrInit reads the configuration, or writes defaults and returns them when
// the file does not exist yet. Any other failure is returned unchanged.
func LoadOrInit[T any](c Config[T], defaults T) (T, error) {
	cfg, err := c.Read()
	if err == nil {
		return cfg, nil
	}
	if !IsNotExist(err) {
		return cfg, err
	}
	if err := c.Write(defaults); err != nil {
		return defaults, err
	}
	return defaults, nil
}
