// Package config loads the cubewalk YAML configuration.
//
//	inputs:
//	  demo: ""               # empty: built-in example notes
//	  real: real-input.txt
//	log:
//	  level: info            # debug|info|warn|error
//	  format: text           # text|json
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "cubewalk.yaml"

// ErrInvalidConfig indicates a configuration value outside its allowed set.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the root of the configuration file.
type Config struct {
	Inputs Inputs `yaml:"inputs"`
	Log    Log    `yaml:"log"`
}

// Inputs maps input names, as given on the command line, to note files.
type Inputs struct {
	// Demo is the file used for "demo"; empty selects the built-in notes.
	Demo string `yaml:"demo"`
	// Real is the file used for "real".
	Real string `yaml:"real"`
}

// Log configures the slog handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Inputs: Inputs{Real: "real-input.txt"},
		Log:    Log{Level: "info", Format: "text"},
	}
}

// Load reads the configuration at path on top of Default. A missing file is
// not an error when path is DefaultPath or empty.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultPath {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the log settings.
func (c Config) Validate() error {
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// SlogLevel converts the configured level name.
func (l Log) SlogLevel() (slog.Level, error) {
	switch l.Level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, l.Level)
}

// InputFile returns the notes file configured for name ("demo" or "real").
// An empty result for "demo" selects the built-in notes.
func (c Config) InputFile(name string) (string, error) {
	switch name {
	case "demo":
		return c.Inputs.Demo, nil
	case "real":
		if c.Inputs.Real == "" {
			return "", fmt.Errorf("%w: inputs.real is empty", ErrInvalidConfig)
		}
		return c.Inputs.Real, nil
	}
	return "", fmt.Errorf("%w: unknown input %q (want demo or real)", ErrInvalidConfig, name)
}
