// FILE: lixenwraith/ezcfg/decode.go
package ezcfg

import (
	"encoding"
	"fmt"
	"net"
	"net/url"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Built-in non-scalar types
var (
	Duration = NewType("time.Duration", time.ParseDuration, time.Duration.String)
	Time     = NewType("time.Time", parseTime, formatTime)
	IP       = NewType("net.IP", parseIP, net.IP.String)
	IPNet    = NewType("*net.IPNet", parseIPNet, (*net.IPNet).String)
	URL      = NewType("*url.URL", parseURL, (*url.URL).String)
)

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func parseIP(s string) (net.IP, error) {
	if len(s) > 45 { // Max IPv6 length
		return nil, fmt.Errorf("invalid IP length: %d", len(s))
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return nil, fmt.Errorf("invalid IP address: %s", s)
	}
	return ip, nil
}

func parseIPNet(s string) (*net.IPNet, error) {
	if len(s) > 49 { // Max IPv6 CIDR length
		return nil, fmt.Errorf("invalid CIDR length: %d", len(s))
	}
	_, ipnet, err := net.ParseCIDR(s)
	if err != nil {
		return nil, fmt.Errorf("invalid CIDR: %w", err)
	}
	return ipnet, nil
}

func parseURL(s string) (*url.URL, error) {
	if len(s) > 2048 {
		return nil, fmt.Errorf("URL too long: %d bytes", len(s))
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	return u, nil
}

// textType adapts a value type whose pointer implements encoding.TextUnmarshaler.
type textType struct {
	rt reflect.Type
}

func textTypeOf(rt reflect.Type) (Type, bool) {
	if rt.Kind() == reflect.Pointer || !reflect.PointerTo(rt).Implements(textMarker) {
		return nil, false
	}
	marshaler := reflect.TypeFor[encoding.TextMarshaler]()
	if !rt.Implements(marshaler) && !reflect.PointerTo(rt).Implements(marshaler) {
		return nil, false
	}
	return &textType{rt: rt}, true
}

func (t *textType) Name() string         { return t.rt.String() }
func (t *textType) GoType() reflect.Type { return t.rt }

func (t *textType) Parse(s string) (any, error) {
	p := reflect.New(t.rt)
	if err := p.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
		return nil, err
	}
	return p.Elem().Interface(), nil
}

func (t *textType) Format(v any) (string, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Type() != t.rt {
		return "", fmt.Errorf("value of type %T is not %s", v, t.rt)
	}

	// Copy into addressable storage so pointer-receiver MarshalText is reachable
	p := reflect.New(t.rt)
	p.Elem().Set(rv)
	text, err := p.Interface().(encoding.TextMarshaler).MarshalText()
	if err != nil {
		return "", err
	}
	return string(text), nil
}

// decodeStruct copies named, already-typed values into the struct pointed to by target.
func decodeStruct(values map[string]any, tagName string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          tagName,
		WeaklyTypedInput: false,
		ZeroFields:       true,
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("decode into %T failed: %w", target, err)
	}
	return nil
}
