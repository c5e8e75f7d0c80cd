// Package config loads rofigo's configuration: which rofi executable
// to run, default window layout, exit hotkeys, and logging. Files are
// JSON, merged over built-in defaults in precedence order, with
// environment variable overrides applied last.
package config

import (
	"fmt"
	"log/slog"

	"github.com/wrenhold/rofigo/src/rofi"
)

// Config is the complete rofigo configuration.
type Config struct {
	// Version of the configuration format
	Version string `json:"version"`

	// Executable is the rofi binary to invoke, a name looked up on
	// PATH or an absolute path.
	Executable string `json:"executable,omitempty"`

	// Layout holds the default window layout options.
	Layout LayoutConfig `json:"layout,omitempty"`

	// ExitHotkeys are bound in every dialog and request application
	// exit when pressed.
	ExitHotkeys []string `json:"exit_hotkeys,omitempty"`

	// LogLevel for the CLI logger.
	LogLevel string `json:"log_level,omitempty" validate:"omitempty,log_level"`
}

// LayoutConfig mirrors rofi.Options. Nil fields defer to rofi's own
// configuration.
type LayoutConfig struct {
	Lines      *int     `json:"lines,omitempty" validate:"omitempty,min=1"`
	FixedLines *int     `json:"fixed_lines,omitempty" validate:"omitempty,min=1"`
	Width      *float64 `json:"width,omitempty"`
	Fullscreen *bool    `json:"fullscreen,omitempty"`
	Location   *int     `json:"location,omitempty" validate:"omitempty,location"`
}

// RofiConfig converts the loaded configuration into the invoker's
// configuration.
func (c *Config) RofiConfig(logger *slog.Logger) rofi.Config {
	return rofi.Config{
		Executable: c.Executable,
		Defaults: rofi.Options{
			Lines:      c.Layout.Lines,
			FixedLines: c.Layout.FixedLines,
			Width:      c.Layout.Width,
			Fullscreen: c.Layout.Fullscreen,
			Location:   c.Layout.Location,
		},
		ExitHotkeys: c.ExitHotkeys,
		Logger:      logger,
	}
}

// ValidationError describes a configuration field that failed
// validation.
type ValidationError struct {
	Field   string
	Message string
	Value   interface{}
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration field %s: %s", e.Field, e.Message)
}
