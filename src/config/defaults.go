package config

// DefaultConfig returns a configuration with sensible defaults: the
// rofi binary from PATH, no layout overrides, and the conventional
// exit hotkeys.
func DefaultConfig() *Config {
	return &Config{
		Version:     "1.0",
		Executable:  "rofi",
		ExitHotkeys: []string{"Alt+F4", "Control+q"},
		LogLevel:    "warn",
	}
}
