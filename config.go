// FILE: lixenwraith/ezcfg/config.go
package ezcfg

// Config is a configuration kind stored at a fixed path.
// Read replaces the whole value on every call; nothing is cached between calls.
type Config[T any] interface {
	// Path is the file the configuration lives in
	Path() string
	// Read parses the file into a complete value
	Read() (T, error)
	// Write overwrites the file with value
	Write(value T) error
}

var (
	_ Config[*Values] = (*Schema)(nil)
	_ Config[struct{}] = (*Binding[struct{}])(nil)
)
