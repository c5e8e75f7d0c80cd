package config

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func intPtr(v int) *int { return &v }

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", config.Version)
	}
	if config.Executable != "rofi" {
		t.Errorf("Expected executable rofi, got %s", config.Executable)
	}
	if len(config.ExitHotkeys) != 2 {
		t.Errorf("Expected two default exit hotkeys, got %v", config.ExitHotkeys)
	}
	if config.LogLevel != "warn" {
		t.Errorf("Expected log level warn, got %s", config.LogLevel)
	}
}

func TestConfigValidation(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name: "location out of range",
			config: func() *Config {
				c := DefaultConfig()
				c.Layout.Location = intPtr(9)
				return c
			}(),
			wantErr: true,
		},
		{
			name: "location zero is valid",
			config: func() *Config {
				c := DefaultConfig()
				c.Layout.Location = intPtr(0)
				return c
			}(),
			wantErr: false,
		},
		{
			name: "zero lines",
			config: func() *Config {
				c := DefaultConfig()
				c.Layout.Lines = intPtr(0)
				return c
			}(),
			wantErr: true,
		},
		{
			name: "invalid log level",
			config: func() *Config {
				c := DefaultConfig()
				c.LogLevel = "loud"
				return c
			}(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoaderMergesByPrecedence(t *testing.T) {
	fs := afero.NewMemMapFs()
	userCfg := `{"executable": "rofi-wayland", "layout": {"lines": 5, "width": 40}}`
	projectCfg := `{"layout": {"lines": 12}}`
	if err := afero.WriteFile(fs, "/home/user/.config/rofigo/config.json", []byte(userCfg), 0644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "/project/.rofigo.json", []byte(projectCfg), 0644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(fs, "/home/user/.config/rofigo/config.json", "/project/.rofigo.json")
	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if config.Executable != "rofi-wayland" {
		t.Errorf("Expected executable rofi-wayland, got %s", config.Executable)
	}
	if config.Layout.Lines == nil || *config.Layout.Lines != 12 {
		t.Errorf("Expected project config to override lines to 12, got %v", config.Layout.Lines)
	}
	if config.Layout.Width == nil || *config.Layout.Width != 40 {
		t.Errorf("Expected width 40 from user config to survive, got %v", config.Layout.Width)
	}
}

func TestLoaderSkipsMissingFiles(t *testing.T) {
	loader := NewLoader(afero.NewMemMapFs(), "/nowhere/config.json")
	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if config.Executable != "rofi" {
		t.Errorf("Expected defaults when no file exists, got executable %s", config.Executable)
	}
}

func TestLoaderRejectsMalformedJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/config.json", []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewLoader(fs, "/config.json").Load()
	if err == nil {
		t.Fatal("Expected error for malformed JSON")
	}
	if !strings.Contains(err.Error(), "/config.json") {
		t.Errorf("Error should name the offending file, got: %v", err)
	}
}

func TestLoaderRejectsInvalidFileValues(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/config.json", []byte(`{"layout": {"location": 42}}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewLoader(fs, "/config.json").Load()
	if err == nil {
		t.Fatal("Expected validation error for location 42")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("ROFIGO_EXECUTABLE", "/opt/rofi/bin/rofi")
	t.Setenv("ROFIGO_LINES", "7")
	t.Setenv("ROFIGO_FULLSCREEN", "true")
	t.Setenv("ROFIGO_EXIT_HOTKEYS", "Alt+F4")

	config, err := NewLoader(afero.NewMemMapFs()).Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if config.Executable != "/opt/rofi/bin/rofi" {
		t.Errorf("Expected env executable override, got %s", config.Executable)
	}
	if config.Layout.Lines == nil || *config.Layout.Lines != 7 {
		t.Errorf("Expected lines 7 from env, got %v", config.Layout.Lines)
	}
	if config.Layout.Fullscreen == nil || !*config.Layout.Fullscreen {
		t.Errorf("Expected fullscreen true from env, got %v", config.Layout.Fullscreen)
	}
	if len(config.ExitHotkeys) != 1 || config.ExitHotkeys[0] != "Alt+F4" {
		t.Errorf("Expected single exit hotkey from env, got %v", config.ExitHotkeys)
	}
}

func TestRofiConfigConversion(t *testing.T) {
	c := DefaultConfig()
	c.Layout.Lines = intPtr(5)
	c.Layout.Location = intPtr(0)

	rc := c.RofiConfig(nil)
	if rc.Executable != "rofi" {
		t.Errorf("Expected executable rofi, got %s", rc.Executable)
	}
	if rc.Defaults.Lines == nil || *rc.Defaults.Lines != 5 {
		t.Errorf("Expected lines 5, got %v", rc.Defaults.Lines)
	}
	if rc.Defaults.Location == nil || *rc.Defaults.Location != 0 {
		t.Errorf("Expected location 0 to be preserved, got %v", rc.Defaults.Location)
	}
}
