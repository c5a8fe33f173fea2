package config

// Config represents the application configuration
type Config struct {
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// OutputConfig controls how ranked records are rendered
type OutputConfig struct {
	Format string `toml:"format" validate:"oneof=text table json"`
}

// LogConfig controls diagnostic logging on stderr
type LogConfig struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
	Color string `toml:"color" validate:"oneof=auto always never"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "text",
		},
		Log: LogConfig{
			Level: "warn",
			Color: "auto",
		},
	}
}
