// FILE: lixenwraith/ezcfg/codec.go
package ezcfg

import (
	"bytes"
	"io"
)

// Decode parses file content into a complete value-set.
// Any malformed line, missing field or unparsable value aborts the whole decode.
func (s *Schema) Decode(data []byte) (*Values, error) {
	lines := splitLines(string(data))

	raw := make(map[string]string, len(lines))
	for _, line := range lines {
		name, value, ok := splitLine(line)
		if !ok {
			return nil, FormatError(line)
		}
		// First occurrence wins
		if _, seen := raw[name]; !seen {
			raw[name] = value
		}
	}

	vals := make([]any, len(s.fields))
	for i, f := range s.fields {
		value, ok := raw[f.Name]
		if !ok {
			return nil, MissingError(f.Name)
		}
		parsed, err := parseField(f, value)
		if err != nil {
			return nil, err
		}
		vals[i] = parsed
	}

	return &Values{schema: s, vals: vals}, nil
}

// parseField parses a raw value and checks the result can be formatted again,
// so a decoded value-set always encodes.
func parseField(f Field, raw string) (any, error) {
	parsed, err := f.Type.Parse(raw)
	if err != nil {
		return nil, ParseError(f.Name, f.Type.Name(), raw, err)
	}
	if _, err := f.Type.Format(parsed); err != nil {
		return nil, ParseError(f.Name, f.Type.Name(), raw, err)
	}
	return parsed, nil
}

// Encode renders one name=value line per field, in schema order.
func (v *Values) Encode() []byte {
	var buf bytes.Buffer
	for i, f := range v.fields() {
		// Values only ever hold values their field type formats
		text, _ := f.Type.Format(v.vals[i])
		buf.WriteString(f.Name)
		buf.WriteString(separator)
		buf.WriteString(text)
		buf.WriteString(newline)
	}
	return buf.Bytes()
}

// WriteTo writes the encoded values to w.
func (v *Values) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(v.Encode())
	if err != nil {
		return int64(n), IoError("", err)
	}
	return int64(n), nil
}
