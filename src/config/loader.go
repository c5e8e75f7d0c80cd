package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// EnvPrefix is the prefix of environment variables that override
// configuration values.
const EnvPrefix = "ROFIGO_"

// Loader handles loading and merging configurations from multiple sources
type Loader struct {
	fs        afero.Fs
	paths     []string
	validator *Validator
}

// NewLoader creates a loader reading the given files in ascending
// precedence order. A nil fs uses the OS filesystem.
func NewLoader(fs afero.Fs, paths ...string) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Loader{
		fs:        fs,
		paths:     paths,
		validator: NewValidator(),
	}
}

// Load loads configuration from all sources and merges them. Missing
// files are skipped; unreadable or invalid files are errors.
func (l *Loader) Load() (*Config, error) {
	config := DefaultConfig()

	for _, path := range l.paths {
		if path == "" {
			continue
		}

		cfg, err := l.loadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
		config = mergeConfigs(config, cfg)
	}

	l.applyEnvironmentOverrides(config)

	if err := l.validator.Validate(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFile loads a single configuration file
func (l *Loader) loadFile(path string) (*Config, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return &config, nil
}

// mergeConfigs overlays the fields set in override onto base,
// key-by-key rather than as a deep merge.
func mergeConfigs(base, override *Config) *Config {
	result := *base

	if override.Version != "" {
		result.Version = override.Version
	}
	if override.Executable != "" {
		result.Executable = override.Executable
	}
	if override.ExitHotkeys != nil {
		result.ExitHotkeys = override.ExitHotkeys
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}

	if override.Layout.Lines != nil {
		result.Layout.Lines = override.Layout.Lines
	}
	if override.Layout.FixedLines != nil {
		result.Layout.FixedLines = override.Layout.FixedLines
	}
	if override.Layout.Width != nil {
		result.Layout.Width = override.Layout.Width
	}
	if override.Layout.Fullscreen != nil {
		result.Layout.Fullscreen = override.Layout.Fullscreen
	}
	if override.Layout.Location != nil {
		result.Layout.Location = override.Layout.Location
	}

	return &result
}

// applyEnvironmentOverrides applies ROFIGO_* environment variables on
// top of the file-based configuration.
func (l *Loader) applyEnvironmentOverrides(config *Config) {
	if v := os.Getenv(EnvPrefix + "EXECUTABLE"); v != "" {
		config.Executable = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
	if v := os.Getenv(EnvPrefix + "EXIT_HOTKEYS"); v != "" {
		config.ExitHotkeys = strings.Split(v, ",")
	}
	if v := os.Getenv(EnvPrefix + "LINES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Layout.Lines = &n
		}
	}
	if v := os.Getenv(EnvPrefix + "WIDTH"); v != "" {
		if w, err := strconv.ParseFloat(v, 64); err == nil {
			config.Layout.Width = &w
		}
	}
	if v := os.Getenv(EnvPrefix + "LOCATION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Layout.Location = &n
		}
	}
	if v := os.Getenv(EnvPrefix + "FULLSCREEN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.Layout.Fullscreen = &b
		}
	}
}
