// FILE: lixenwraith/ezcfg/example/main.go
package main

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/ezcfg"
)

// AppConfig is a flat configuration stored as name=value lines.
type AppConfig struct {
	Host     string        `ezcfg:"host"`
	Port     uint16        `ezcfg:"port"`
	LogLevel string        `ezcfg:"log_level"`
	Timeout  time.Duration `ezcfg:"timeout"`
	Debug    bool          `ezcfg:"debug"`
}

func main() {
	dir, err := os.MkdirTemp("", "ezcfg-example-")
	if err != nil {
		log.Fatal("Failed to create work directory:", err)
	}
	defer func() {
		log.Println("🧹 Cleaning up...")
		os.RemoveAll(dir)
	}()
	configFilePath := filepath.Join(dir, "app.cfg")

	// =========================================================================
	// PART 1: FIRST RUN
	// No file exists yet, so defaults are written to disk.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 1: Loading configuration (first run)...")

	appConfig := ezcfg.MustBind[AppConfig](configFilePath, ezcfg.WithAtomicWrite())
	defaults := AppConfig{
		Host:     "localhost",
		Port:     8080,
		LogLevel: "info",
		Timeout:  30 * time.Second,
	}

	cfg, err := ezcfg.LoadOrInit[AppConfig](appConfig, defaults)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	log.Printf("✅ Loaded: %+v", cfg)
	printFile(configFilePath)

	// =========================================================================
	// PART 2: UPDATE AND RE-READ
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 2: Updating configuration...")

	cfg.Port = 9090
	cfg.Debug = true
	if err := appConfig.Write(cfg); err != nil {
		log.Fatal("Failed to write config:", err)
	}

	reloaded, err := appConfig.Read()
	if err != nil {
		log.Fatal("Failed to re-read config:", err)
	}
	log.Printf("✅ Reloaded: port=%d debug=%t", reloaded.Port, reloaded.Debug)

	// =========================================================================
	// PART 3: ERROR REPORTING
	// Break the file on purpose and inspect the error kind.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 3: Reading a broken file...")

	broken := "host=localhost\nport=not-a-port\nlog_level=info\ntimeout=30s\ndebug=false\n"
	if err := os.WriteFile(configFilePath, []byte(broken), 0644); err != nil {
		log.Fatal("Failed to write broken file:", err)
	}

	_, err = appConfig.Read()
	var cfgErr *ezcfg.Error
	if errors.As(err, &cfgErr) {
		log.Printf("❌ %s error on field %q: %v", cfgErr.Kind, cfgErr.Field, err)
	}

	// =========================================================================
	// PART 4: EXPORT
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 4: Exporting to TOML...")

	values, err := appConfig.Values(reloaded)
	if err != nil {
		log.Fatal("Failed to convert config:", err)
	}
	if err := values.Export(os.Stdout, ezcfg.FormatTOML); err != nil {
		log.Fatal("Failed to export config:", err)
	}
}

func printFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Could not read %s: %v", path, err)
		return
	}
	log.Printf("📄 %s:\n%s", path, data)
}
