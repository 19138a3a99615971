// Package config provides configuration loading and management for the
// penguins dashboard.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	perrors "github.com/cintel/penguins/internal/errors"
)

const (
	// DefaultConfigPath is the default path to the config file relative to the working directory.
	DefaultConfigPath = ".penguins/config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "PENGUINS"
)

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// LoadConfig loads configuration from the specified path, applies defaults,
// merges environment variables, and validates the result.
//
// If path is empty, DefaultConfigPath is used and a missing file means
// defaults. A path given explicitly must exist.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	cfg := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return nil, &LoadError{
				Path:    path,
				Message: "config file not found",
				Err:     perrors.ConfigNotFound(path),
			}
		}
	} else {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, &LoadError{
				Path:    path,
				Message: "failed to read config file",
				Err:     perrors.ConfigParseError(path, err),
			}
		}
		if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
			return nil, &LoadError{
				Path:    path,
				Message: "failed to parse config file",
				Err:     perrors.ConfigParseError(path, err),
			}
		}
	}

	l.applyEnvOverrides(cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     validationError(err),
		}
	}

	return cfg, nil
}

// validationError turns the first validation failure into a PenguinError
// carrying the whole list as its cause.
func validationError(err error) error {
	errs, ok := err.(ValidationErrors)
	if !ok || len(errs) == 0 {
		return err
	}
	pe := perrors.ConfigValidationError(errs[0].Field, errs[0].Message, nil)
	if len(errs) > 1 {
		pe.WithCause(errs)
	}
	return pe
}

// LoadConfigFromDir loads configuration from .penguins/config.yaml in the specified directory.
func (l *Loader) LoadConfigFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, DefaultConfigPath)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := &Config{}
		l.applyEnvOverrides(cfg)
		cfg.ApplyDefaults()
		if err := cfg.Validate(); err != nil {
			return nil, &LoadError{Path: path, Message: "configuration validation failed", Err: validationError(err)}
		}
		return cfg, nil
	}
	return l.LoadConfig(path)
}

// applyEnvOverrides applies environment variable overrides to the config.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "_TITLE"); v != "" {
		cfg.Title = v
	}
	if v := os.Getenv(EnvPrefix + "_DATASET_PATH"); v != "" {
		cfg.Dataset.Path = v
	}

	// Controls
	if v := os.Getenv(EnvPrefix + "_CONTROLS_ATTRIBUTE"); v != "" {
		cfg.Controls.Attribute = v
	}
	if v := os.Getenv(EnvPrefix + "_CONTROLS_PLOTLY_BINS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Controls.PlotlyBins = n
		}
	}
	if v := os.Getenv(EnvPrefix + "_CONTROLS_SEABORN_BINS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Controls.SeabornBins = n
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "_CONTROLS_SPECIES"); ok {
		cfg.Controls.Species = parseList(v)
	}
	if v, ok := os.LookupEnv(EnvPrefix + "_CONTROLS_ISLANDS"); ok {
		cfg.Controls.Islands = parseList(v)
	}

	// Export
	if v := os.Getenv(EnvPrefix + "_EXPORT_DIR"); v != "" {
		cfg.Export.Dir = v
	}
	if v := os.Getenv(EnvPrefix + "_EXPORT_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Export.Width = n
		}
	}
	if v := os.Getenv(EnvPrefix + "_EXPORT_HEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Export.Height = n
		}
	}

	// Log
	if v := os.Getenv(EnvPrefix + "_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvPrefix + "_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
	if v := os.Getenv(EnvPrefix + "_LOG_MAX_AGE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Log.MaxAge = Duration(d)
		}
	}
}

// parseList splits a comma-separated list, dropping blanks. The result is
// never nil, so an empty variable selects nothing.
func parseList(s string) []string {
	out := []string{}
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// viperDecodeHook provides custom decoding for viper unmarshaling.
// It composes the standard mapstructure hooks with our custom ones.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		stringToDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// stringToDurationHookFunc decodes "1h30m" into a Duration.
func stringToDurationHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(Duration(0)) {
			return data, nil
		}
		switch from.Kind() {
		case reflect.String:
			d, err := time.ParseDuration(data.(string))
			if err != nil {
				return nil, err
			}
			return Duration(d), nil
		case reflect.Int, reflect.Int64:
			return Duration(reflect.ValueOf(data).Int()), nil
		}
		return data, nil
	}
}

// Save writes cfg as YAML to path, creating parent directories.
// If path is empty, DefaultConfigPath is used.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	header := "# penguins dashboard configuration\n"
	if err := os.WriteFile(path, append([]byte(header), data...), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load is a convenience function that creates a new Loader and loads configuration.
// If path is empty, it uses DefaultConfigPath.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}

// LoadFromDir is a convenience function that loads configuration from a directory.
func LoadFromDir(dir string) (*Config, error) {
	return NewLoader().LoadConfigFromDir(dir)
}
