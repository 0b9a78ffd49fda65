// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// LocalFileName is the per-directory override file.
const LocalFileName = ".taskmaster.toml"

// Config is the application configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Seed    SeedConfig    `toml:"seed"`
	Log     LogConfig     `toml:"log"`
}

// StorageConfig configures the persisted task record.
type StorageConfig struct {
	Path            string `toml:"path"`             // Task record file path
	LatencyMinMS    int    `toml:"latency_min_ms"`   // Lower latency bound
	LatencyMaxMS    int    `toml:"latency_max_ms"`   // Upper latency bound
	SimulateLatency bool   `toml:"simulate_latency"` // Delay storage operations
}

// SeedConfig configures the demo seed import.
type SeedConfig struct {
	Endpoint      string `toml:"endpoint"`       // Remote collection URL
	DefaultSource string `toml:"default_source"` // Transport when none is given
	DefaultLimit  int    `toml:"default_limit"`  // Record count when none is given
}

// LogConfig configures logging output.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
	File  string `toml:"file"`  // Log file path; empty = stderr
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Path:         filepath.Join(defaultDataDir(), "tasks.json"),
			LatencyMinMS: 100,
			LatencyMaxMS: 400,
		},
		Seed: SeedConfig{
			Endpoint:      "https://jsonplaceholder.typicode.com/todos",
			DefaultSource: "fetch",
			DefaultLimit:  5,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Loader loads configuration from TOML files.
type Loader struct {
	globalPath string // e.g. ~/.config/taskmaster/config.toml
	localPath  string // per-directory override
}

// NewLoader creates a new Loader rooted at the given working directory.
func NewLoader(workDir string) *Loader {
	return &Loader{
		globalPath: filepath.Join(defaultConfigDir(), "config.toml"),
		localPath:  filepath.Join(workDir, LocalFileName),
	}
}

// NewLoaderWithPaths creates a Loader with explicit file paths.
// This is useful for testing.
func NewLoaderWithPaths(globalPath, localPath string) *Loader {
	return &Loader{globalPath: globalPath, localPath: localPath}
}

// Load returns the merged configuration: defaults, overlaid with the
// global file, overlaid with the local file. Missing files are fine.
func (l *Loader) Load() (*Config, error) {
	cfg := Default()

	for _, path := range []string{l.globalPath, l.localPath} {
		if path == "" {
			continue
		}
		if err := mergeFile(cfg, path); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// mergeFile overlays the TOML file at path onto cfg. A missing file is
// not an error.
func mergeFile(cfg *Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(content, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// defaultConfigDir resolves the global config directory (XDG convention).
func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "taskmaster")
}

// defaultDataDir resolves the data directory for the task record.
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "taskmaster")
}
