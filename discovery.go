// FILE: lixenwraith/ezcfg/discovery.go
package ezcfg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileDiscoveryOptions configures the search for an existing configuration file
type FileDiscoveryOptions struct {
	// File name to look for, including extension (e.g. "app.cfg")
	Name string

	// Custom search directories, searched first
	Paths []string

	// Whether to search in the current directory
	UseCurrentDir bool

	// Whether to search in XDG config directories under AppName
	UseXDG  bool
	AppName string
}

// DefaultDiscoveryOptions returns options searching the current directory,
// then the XDG directories of appName
func DefaultDiscoveryOptions(appName, fileName string) FileDiscoveryOptions {
	return FileDiscoveryOptions{
		Name:          fileName,
		UseCurrentDir: true,
		UseXDG:        true,
		AppName:       appName,
	}
}

// ExpandPath resolves a leading "~/" against the user's home directory.
// Other paths are returned unchanged.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand '%s': %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// DiscoverPath returns the first candidate path holding an existing regular file.
// When none exists it returns the first candidate and false, so callers can
// create the file there.
func DiscoverPath(opts FileDiscoveryOptions) (string, bool) {
	candidates := discoveryCandidates(opts)
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	if len(candidates) == 0 {
		return opts.Name, false
	}
	return candidates[0], false
}

// WithFileDiscovery sets the path to the discovered file, or to the first
// search location when no file exists yet
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions) *Builder {
	if opts.Name == "" {
		b.errs = append(b.errs, fmt.Errorf("file discovery requires a file name"))
		return b
	}
	b.path, _ = DiscoverPath(opts)
	return b
}

func discoveryCandidates(opts FileDiscoveryOptions) []string {
	var dirs []string
	for _, dir := range opts.Paths {
		if expanded, err := ExpandPath(dir); err == nil {
			dirs = append(dirs, expanded)
		}
	}

	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			dirs = append(dirs, cwd)
		}
	}

	if opts.UseXDG && opts.AppName != "" {
		dirs = append(dirs, getXDGConfigPaths(opts.AppName)...)
	}

	paths := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		paths = append(paths, filepath.Join(dir, opts.Name))
	}
	return paths
}

// getXDGConfigPaths returns XDG-compliant config search paths
func getXDGConfigPaths(appName string) []string {
	var paths []string

	// XDG_CONFIG_HOME
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, appName))
	} else if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName))
	}

	// XDG_CONFIG_DIRS
	if xdgDirs := os.Getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		for _, dir := range filepath.SplitList(xdgDirs) {
			paths = append(paths, filepath.Join(dir, appName))
		}
	} else {
		// Default system paths
		paths = append(paths, filepath.Join("/etc/xdg", appName))
	}

	return paths
}
