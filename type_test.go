// FILE: lixenwraith/ezcfg/type_test.go
package ezcfg

import (
	"errors"
	"net"
	"net/netip"
	"net/url"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuiltinTypes tests canonical parse/format of every built-in type
func TestBuiltinTypes(t *testing.T) {
	tests := []struct {
		typ      Type
		name     string
		input    string
		expected any
	}{
		{String, "string", "hello world", "hello world"},
		{Bool, "bool", "true", true},
		{Int, "int", "-42", -42},
		{Int8, "int8", "-128", int8(-128)},
		{Int16, "int16", "32767", int16(32767)},
		{Int32, "int32", "-7", int32(-7)},
		{Int64, "int64", "9223372036854775807", int64(9223372036854775807)},
		{Uint, "uint", "7", uint(7)},
		{Uint8, "uint8", "255", uint8(255)},
		{Uint16, "uint16", "8080", uint16(8080)},
		{Uint32, "uint32", "42", uint32(42)},
		{Uint64, "uint64", "18446744073709551615", uint64(18446744073709551615)},
		{Float32, "float32", "0.1", float32(0.1)},
		{Float64, "float64", "2.5", 2.5},
		{Duration, "time.Duration", "1m30s", 90 * time.Second},
		{IP, "net.IP", "192.168.1.100", net.ParseIP("192.168.1.100")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.typ.Name())
			assert.Equal(t, reflect.TypeOf(tt.expected), tt.typ.GoType())

			parsed, err := tt.typ.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, parsed)

			text, err := tt.typ.Format(parsed)
			require.NoError(t, err)
			assert.Equal(t, tt.input, text)
		})
	}
}

func TestTimeAndNetworkTypes(t *testing.T) {
	t.Run("Time", func(t *testing.T) {
		parsed, err := Time.Parse("2024-01-02T03:04:05.5+02:00")
		require.NoError(t, err)
		expected := time.Date(2024, 1, 2, 1, 4, 5, 500_000_000, time.UTC)
		assert.True(t, expected.Equal(parsed.(time.Time)))

		text, err := Time.Format(parsed)
		require.NoError(t, err)
		assert.Equal(t, "2024-01-02T03:04:05.5+02:00", text)
	})

	t.Run("IPNet", func(t *testing.T) {
		parsed, err := IPNet.Parse("192.168.1.0/24")
		require.NoError(t, err)
		assert.Equal(t, "192.168.1.0/24", parsed.(*net.IPNet).String())

		// Host bits are dropped from the canonical form
		parsed, err = IPNet.Parse("192.168.1.5/24")
		require.NoError(t, err)
		text, err := IPNet.Format(parsed)
		require.NoError(t, err)
		assert.Equal(t, "192.168.1.0/24", text)
	})

	t.Run("URL", func(t *testing.T) {
		parsed, err := URL.Parse("https://api.example.com:8443/v1")
		require.NoError(t, err)
		u := parsed.(*url.URL)
		assert.Equal(t, "api.example.com:8443", u.Host)

		text, err := URL.Format(u)
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com:8443/v1", text)
	})

	t.Run("LengthLimits", func(t *testing.T) {
		_, err := IP.Parse(strings.Repeat("1", 46))
		assert.Error(t, err)
		_, err = IPNet.Parse(strings.Repeat("1", 50))
		assert.Error(t, err)
		_, err = URL.Parse("https://example.com/" + strings.Repeat("a", 2048))
		assert.Error(t, err)
	})
}

func TestTypeRejections(t *testing.T) {
	t.Run("ParseFailures", func(t *testing.T) {
		for _, tc := range []struct {
			typ   Type
			input string
		}{
			{Bool, "yes"},
			{Int, "0x10"},
			{Int8, "128"},
			{Uint, "-1"},
			{Uint8, "256"},
			{Float64, "1,5"},
			{Duration, "5 minutes"},
			{Time, "2024-01-02"},
			{IP, "300.1.1.1"},
			{IPNet, "10.0.0.0"},
			{URL, "http://[::1"},
		} {
			_, err := tc.typ.Parse(tc.input)
			assert.Error(t, err, "%s should reject %q", tc.typ.Name(), tc.input)
		}
	})

	t.Run("FormatWrongType", func(t *testing.T) {
		_, err := Uint32.Format(42)
		assert.Error(t, err)
		_, err = String.Format(nil)
		assert.Error(t, err)
	})

	t.Run("FormatNil", func(t *testing.T) {
		_, err := URL.Format((*url.URL)(nil))
		assert.Error(t, err)
		_, err = IP.Format(net.IP(nil))
		assert.Error(t, err)
	})
}

type level int

func TestNewType(t *testing.T) {
	levels := []string{"debug", "info", "warn"}
	levelType := NewType("level",
		func(s string) (level, error) {
			for i, name := range levels {
				if name == s {
					return level(i), nil
				}
			}
			return 0, errors.New("unknown level")
		},
		func(l level) string { return levels[l] },
	)

	assert.Equal(t, "level", levelType.Name())
	assert.Equal(t, reflect.TypeFor[level](), levelType.GoType())

	parsed, err := levelType.Parse("warn")
	require.NoError(t, err)
	assert.Equal(t, level(2), parsed)

	text, err := levelType.Format(level(1))
	require.NoError(t, err)
	assert.Equal(t, "info", text)

	_, err = levelType.Parse("trace")
	assert.Error(t, err)

	unnamed := NewType("", func(s string) (level, error) { return 0, nil }, func(level) string { return "" })
	assert.Equal(t, "ezcfg.level", unnamed.Name())
}

type (
	region string
	zone   string
)

func TestTypeOf(t *testing.T) {
	t.Run("Builtins", func(t *testing.T) {
		for _, typ := range []Type{String, Bool, Int, Uint64, Float32, Duration, Time, IP, IPNet, URL} {
			resolved, err := TypeOf(typ.GoType())
			require.NoError(t, err)
			assert.Same(t, typ, resolved)
		}
	})

	t.Run("TextType", func(t *testing.T) {
		typ, err := TypeFor[netip.Addr]()
		require.NoError(t, err)
		assert.Equal(t, "netip.Addr", typ.Name())

		parsed, err := typ.Parse("2001:db8::1")
		require.NoError(t, err)
		assert.Equal(t, netip.MustParseAddr("2001:db8::1"), parsed)

		text, err := typ.Format(parsed)
		require.NoError(t, err)
		assert.Equal(t, "2001:db8::1", text)

		_, err = typ.Parse("not-an-address")
		assert.Error(t, err)
		_, err = typ.Format("2001:db8::1")
		assert.Error(t, err)
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, err := TypeFor[[]string]()
		assert.Error(t, err)
		_, err = TypeFor[struct{ A int }]()
		assert.Error(t, err)
		_, err = TypeFor[zone]()
		assert.Error(t, err)
		_, err = TypeOf(nil)
		assert.Error(t, err)
	})

	t.Run("Registered", func(t *testing.T) {
		regionType := NewType("region",
			func(s string) (region, error) {
				if s == "" {
					return "", errors.New("empty region")
				}
				return region(s), nil
			},
			func(r region) string { return string(r) },
		)
		require.NoError(t, RegisterType(regionType))

		resolved, err := TypeFor[region]()
		require.NoError(t, err)
		assert.Same(t, regionType, resolved)

		assert.Error(t, RegisterType(nil))
	})
}
