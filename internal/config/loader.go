package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

var validate = validator.New()

// Load reads and parses the configuration file.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	// Expand path
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	// Read file
	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (run 'okapi config init %s' to create)", expandedPath, path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Parse TOML over the defaults
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf("%s must be one of [%s], got '%v'", tomlKey(fe.Namespace()), fe.Param(), fe.Value()))
	}
	return errors.Join(errs...)
}

// tomlKey turns a validator namespace like "Config.Output.Format" into "output.format"
func tomlKey(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.ToLower(strings.Join(parts, "."))
}

// Encode renders the configuration as TOML
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

// WriteDefault writes the default configuration file to path.
// An existing file is left untouched and reported with os.ErrExist.
func WriteDefault(path string) (string, error) {
	expandedPath, err := expandPath(path)
	if err != nil {
		return "", fmt.Errorf("failed to expand config path: %w", err)
	}

	if _, err := os.Stat(expandedPath); err == nil {
		return expandedPath, fmt.Errorf("config file already exists at %s: %w", expandedPath, os.ErrExist)
	}

	if dir := filepath.Dir(expandedPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(expandedPath, []byte(DefaultFile), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return expandedPath, nil
}

// DefaultFile is the commented default configuration written by 'config init'
const DefaultFile = `# okapi configuration

[output]
format = "text"  # text, table, json

[log]
level = "warn"   # debug, info, warn, error
color = "auto"   # auto, always, never
`
