package domain

// ConfigFileName is the conventional configuration file name.
const ConfigFileName = "taskmenu.toml"

// Default configuration values.
const (
	DefaultLogLevel = "warn"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"` // Problems found while loading (unknown sections)
	Log      LogConfig     `toml:"log"`
	Display  DisplayConfig `toml:"display"`
	Notify   NotifyConfig  `toml:"notify"`
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// DisplayConfig holds output settings from [display] section.
type DisplayConfig struct {
	Color *bool `toml:"color,omitempty"` // Styled output (nil = default on)
}

// NotifyConfig holds observer settings from [notify] section.
type NotifyConfig struct {
	LogCompletions bool `toml:"log_completions,omitempty"` // Attach a logging observer to new tasks
}

// ColorEnabled reports whether styled output is enabled.
func (c *Config) ColorEnabled() bool {
	return c.Display.Color == nil || *c.Display.Color
}

// NewDefaultConfig returns a new Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}
