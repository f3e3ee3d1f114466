// Package config loads server settings from defaults, an optional YAML file, a .env file
// and the process environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/aretw0/waterjug/internal/logging"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when the merged settings fail validation.
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix namespaces the environment overrides (WATERJUG_PORT, WATERJUG_LOG_LEVEL, ...).
const EnvPrefix = "WATERJUG_"

// DotEnvFile is read before the environment overrides are applied, when present.
const DotEnvFile = ".env"

// Config holds the runtime settings of the waterjug server.
type Config struct {
	Port            string        `mapstructure:"port" yaml:"port"`
	LogLevel        string        `mapstructure:"log_level" yaml:"log_level"`
	LogFormat       string        `mapstructure:"log_format" yaml:"log_format"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	Metrics         bool          `mapstructure:"metrics" yaml:"metrics"`
}

// Defaults returns the settings used when nothing else is configured.
func Defaults() map[string]any {
	return map[string]any{
		"port":             "8080",
		"log_level":        "info",
		"log_format":       logging.FormatText,
		"shutdown_timeout": "5s",
		"metrics":          true,
	}
}

// Load merges defaults, the YAML file at path (skipped when path is empty), the .env file
// and environment variables, then decodes and validates the result.
// A missing file at an explicit path is an error; a missing .env is not.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", DotEnvFile, err)
	}

	values := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		var file map[string]any
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		for k, v := range file {
			values[k] = v
		}
	}

	applyEnv(values)

	return Decode(values)
}

// Decode turns a raw settings map into a validated Config.
func Decode(values map[string]any) (*Config, error) {
	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &cfg,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(values); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the decoded settings.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("%w: port is required", ErrInvalidConfig)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.LogFormat != logging.FormatText && c.LogFormat != logging.FormatJSON {
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.LogFormat)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown_timeout must be positive", ErrInvalidConfig)
	}
	return nil
}

// applyEnv overlays environment variables. PORT is honoured for platforms that inject it,
// WATERJUG_PORT wins over it.
func applyEnv(values map[string]any) {
	if v, ok := os.LookupEnv("PORT"); ok && v != "" {
		values["port"] = v
	}
	for _, key := range []string{"port", "log_level", "log_format", "shutdown_timeout", "metrics"} {
		if v, ok := os.LookupEnv(EnvPrefix + strings.ToUpper(key)); ok && v != "" {
			values[key] = v
		}
	}
}
