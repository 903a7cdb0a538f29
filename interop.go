// FILE: lixenwraith/ezcfg/interop.go
package ezcfg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format names a structured document format values can be exported to or imported from.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// DetectFormat determines the document format from a file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("cannot detect document format of '%s'", path)
	}
}

// Export writes v as a flat document of the given format.
// Booleans, strings and numbers of predeclared Go types are written natively,
// every other field as its canonical string. Numbers the format cannot hold
// (NaN, infinities, TOML integers above MaxInt64) are written as strings too.
func (v *Values) Export(w io.Writer, format Format) error {
	if v.Schema() == nil {
		return fmt.Errorf("cannot export values not built from a schema")
	}
	fields := v.fields()

	doc := make(map[string]any, len(fields))
	for i, f := range fields {
		native, err := nativeValue(f.Type, v.vals[i], format)
		if err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
		doc[f.Name] = native
	}

	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return fmt.Errorf("failed to marshal values to TOML: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to marshal values to YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to marshal values to YAML: %w", err)
		}
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to marshal values to JSON: %w", err)
		}
	default:
		return fmt.Errorf("unsupported document format %q", format)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return IoError("", err)
	}
	return nil
}

// ExportFile writes v to path in the format its extension names.
func (v *Values) ExportFile(path string) error {
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := v.Export(&buf, format); err != nil {
		return err
	}
	if err := atomicWriteFile(path, buf.Bytes(), DefaultFileMode); err != nil {
		return IoError(path, err)
	}
	return nil
}

// Import builds a value-set from a flat TOML, YAML or JSON document.
// Each scalar is rendered to its canonical string and parsed by the field type,
// so the document obeys the same rules as a name=value file. Tables, lists and
// nulls are reported as format errors.
// YAML scalars are taken as written: `s: 1.10` gives a string field "1.10".
// TOML and JSON scalars are decoded first, so `s = 1.10` in TOML gives "1.1".
func (s *Schema) Import(data []byte, format Format) (*Values, error) {
	doc, err := unmarshalDocument(data, format)
	if err != nil {
		return nil, err
	}

	vals := make([]any, len(s.fields))
	for i, f := range s.fields {
		raw, ok := doc[f.Name]
		if !ok {
			return nil, MissingError(f.Name)
		}
		text, ok := scalarString(raw)
		if !ok {
			return nil, FormatError(fmt.Sprintf("%s%s%v", f.Name, separator, raw))
		}
		parsed, err := parseField(f, text)
		if err != nil {
			return nil, err
		}
		vals[i] = parsed
	}

	return &Values{schema: s, vals: vals}, nil
}

// ImportFile reads a document from path, detecting its format by extension.
func (s *Schema) ImportFile(path string) (*Values, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, IoError(path, err)
	}
	return s.Import(data, format)
}

func unmarshalDocument(data []byte, format Format) (map[string]any, error) {
	doc := make(map[string]any)

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse TOML document: %w", err)
		}
	case FormatYAML:
		var root yaml.Node
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("failed to parse YAML document: %w", err)
		}
		if err := yamlDocument(&root, doc); err != nil {
			return nil, err
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON document: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}

	return doc, nil
}

// yamlDocument collects the top-level entries of a YAML document.
// Scalars keep their source text; nulls and collections keep their decoded form
// so Import can reject them.
func yamlDocument(root *yaml.Node, doc map[string]any) error {
	if root.Kind == 0 {
		return nil
	}
	node := root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil
		}
		node = node.Content[0]
	}
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("failed to parse YAML document: line %d: expected a mapping", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]
		if _, seen := doc[key]; seen {
			// First occurrence wins
			continue
		}
		if value.Kind == yaml.AliasNode && value.Alias != nil {
			value = value.Alias
		}
		if value.Kind == yaml.ScalarNode && value.ShortTag() != "!!null" {
			doc[key] = value.Value
			continue
		}
		var decoded any
		if err := value.Decode(&decoded); err != nil {
			return fmt.Errorf("failed to parse YAML document: %w", err)
		}
		doc[key] = decoded
	}
	return nil
}

// nativeValue returns the document representation of a field value.
func nativeValue(t Type, v any, format Format) (any, error) {
	text, err := t.Format(v)
	if err != nil {
		return nil, err
	}

	rt := t.GoType()
	if rt.PkgPath() != "" {
		// Named types (time.Duration, net.IP, ...) keep their canonical text
		return text, nil
	}

	rv := reflect.ValueOf(v)
	switch rt.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		// TOML integers are signed 64-bit
		if format == FormatTOML && rv.Uint() > math.MaxInt64 {
			return text, nil
		}
		return rv.Uint(), nil
	case reflect.Float32, reflect.Float64:
		if f := rv.Float(); math.IsNaN(f) || math.IsInf(f, 0) {
			return text, nil
		}
		// Round-trip through the canonical text so float32 does not widen to noise
		return strconv.ParseFloat(text, 64)
	default:
		return text, nil
	}
}

// scalarString renders a decoded document scalar the way it would be written in a name=value file.
func scalarString(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case json.Number:
		return v.String(), true
	case time.Time:
		return v.Format(time.RFC3339Nano), true
	default:
		return "", false
	}
}
