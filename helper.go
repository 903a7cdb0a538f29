// FILE: lixenwraith/ezcfg/helper.go
package ezcfg

import (
	"fmt"
	"strings"
)

const (
	separator = "="
	newline   = "\n"
)

// validateFieldName rejects names that cannot appear on the left of a name=value line.
func validateFieldName(name string) error {
	if name == "" {
		return fmt.Errorf("field name cannot be empty")
	}
	if strings.ContainsAny(name, "=\n\r") {
		return fmt.Errorf("invalid field name %q: must not contain '=' or line breaks", name)
	}
	return nil
}

// splitLines breaks file content into lines. One trailing newline terminates
// the last line rather than starting an empty one.
func splitLines(content string) []string {
	content = strings.TrimSuffix(content, newline)
	if content == "" {
		return nil
	}
	return strings.Split(content, newline)
}

// splitLine splits a line into its name and raw value.
// It fails unless the line holds exactly one separator.
func splitLine(line string) (name, raw string, ok bool) {
	parts := strings.Split(line, separator)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
