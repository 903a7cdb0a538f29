// File: lixenwraith/ezcfg/doc.go

// Package ezcfg reads and writes flat name=value configuration files bound to
// strongly-typed values.
//
// A file holds one field per line, in the order the schema declares them:
//
//	field1=hello
//	field2=42
//
// There is no trimming, quoting, escaping or comment syntax. A value cannot
// contain '=' or a line break.
//
// Features:
//   - Runtime schemas of named, typed fields (NewSchema, Builder)
//   - Struct binding through `ezcfg` tags (Bind, Load, Save)
//   - Built-in types for Go scalars, time.Duration, time.Time, net.IP,
//     *net.IPNet, *url.URL and any encoding.TextMarshaler/TextUnmarshaler
//   - Custom types through NewType and RegisterType
//   - All-or-nothing reads with a closed error taxonomy: Io, Format, Parse, Missing
//   - Optional atomic replacement on write
//   - Export to and import from flat TOML, YAML and JSON documents
//
// Quick Start:
//
//	type AppConfig struct {
//	    Host string `ezcfg:"host"`
//	    Port uint16 `ezcfg:"port"`
//	}
//
//	var appConfig = ezcfg.MustBind[AppConfig]("app.cfg")
//
//	cfg, err := appConfig.Read()
//	if err != nil {
//	    var cfgErr *ezcfg.Error
//	    if errors.As(err, &cfgErr) && cfgErr.Kind == ezcfg.KindMissing {
//	        log.Fatalf("app.cfg has no %s line", cfgErr.Field)
//	    }
//	    log.Fatal(err)
//	}
//
// Reading:
// Lines split on '\n'; one trailing newline is allowed. Every line must hold
// exactly one '='. When a name appears more than once the first line wins, and
// names the schema does not declare are ignored. Any malformed line, absent
// field or unparsable value fails the whole read.
//
// Thread Safety:
// Schemas, bindings and value-sets are immutable and safe to share. Nothing
// coordinates concurrent writers of the same file.
package ezcfg
