// Package config provides configuration data structures for the penguins
// dashboard.
package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/cintel/penguins/internal/dashboard"
	"github.com/cintel/penguins/internal/logging"
)

// Config represents the complete configuration loaded from .penguins/config.yaml.
type Config struct {
	// Title is shown in the dashboard header.
	Title    string         `yaml:"title"    json:"title"    mapstructure:"title"`
	Dataset  DatasetConfig  `yaml:"dataset"  json:"dataset"  mapstructure:"dataset"`
	Controls ControlsConfig `yaml:"controls" json:"controls" mapstructure:"controls"`
	Export   ExportConfig   `yaml:"export"   json:"export"   mapstructure:"export"`
	Log      LogConfig      `yaml:"log"      json:"log"      mapstructure:"log"`
}

// DatasetConfig selects the CSV to load.
type DatasetConfig struct {
	// Path is a palmerpenguins-style CSV. Empty means the bundled dataset.
	Path string `yaml:"path" json:"path" mapstructure:"path"`
}

// ControlsConfig holds the initial value of every sidebar control.
type ControlsConfig struct {
	Attribute   string   `yaml:"attribute"    json:"attribute"    mapstructure:"attribute"`
	PlotlyBins  int      `yaml:"plotly_bins"  json:"plotly_bins"  mapstructure:"plotly_bins"`
	SeabornBins int      `yaml:"seaborn_bins" json:"seaborn_bins" mapstructure:"seaborn_bins"`
	Species     []string `yaml:"species"      json:"species"      mapstructure:"species"`
	Islands     []string `yaml:"islands"      json:"islands"      mapstructure:"islands"`
}

// ExportConfig configures `penguins export`.
type ExportConfig struct {
	// Dir receives the PNG and CSV files (default: export).
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"`
	// Width and Height are the PNG size in pixels.
	Width  int `yaml:"width"  json:"width"  mapstructure:"width"`
	Height int `yaml:"height" json:"height" mapstructure:"height"`
}

// LogConfig configures the log file.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default: info).
	Level string `yaml:"level" json:"level" mapstructure:"level"`
	// Dir holds the timestamped log files (default: .penguins/logs).
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"`
	// MaxFiles is how many log files to keep (default: 10).
	MaxFiles int `yaml:"max_files" json:"max_files" mapstructure:"max_files"`
	// MaxAge removes log files older than this (default: 168h).
	MaxAge Duration `yaml:"max_age" json:"max_age" mapstructure:"max_age"`
}

// Duration is a time.Duration written as "1h30m" in YAML.
type Duration time.Duration

// MarshalYAML writes the duration in its string form.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Default values.
const (
	DefaultTitle        = "Penguins Dashboard"
	DefaultExportDir    = "export"
	DefaultExportWidth  = 800
	DefaultExportHeight = 500
	DefaultLogLevel     = "info"
	DefaultLogDir       = ".penguins/logs"
	DefaultMaxLogFiles  = 10
	DefaultMaxLogAge    = 7 * 24 * time.Hour
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	sel := dashboard.DefaultSelection()
	return &Config{
		Title: DefaultTitle,
		Controls: ControlsConfig{
			Attribute:   sel.Attribute,
			PlotlyBins:  sel.PlotlyBins,
			SeabornBins: sel.SeabornBins,
			Species:     sel.Species,
			Islands:     sel.Islands,
		},
		Export: ExportConfig{
			Dir:    DefaultExportDir,
			Width:  DefaultExportWidth,
			Height: DefaultExportHeight,
		},
		Log: LogConfig{
			Level:    DefaultLogLevel,
			Dir:      DefaultLogDir,
			MaxFiles: DefaultMaxLogFiles,
			MaxAge:   Duration(DefaultMaxLogAge),
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
// This is used after loading config from file to fill in missing values.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Title == "" {
		c.Title = defaults.Title
	}

	// A nil list was never set; an explicit empty list selects nothing.
	if c.Controls.Attribute == "" {
		c.Controls.Attribute = defaults.Controls.Attribute
	}
	if c.Controls.PlotlyBins == 0 {
		c.Controls.PlotlyBins = defaults.Controls.PlotlyBins
	}
	if c.Controls.SeabornBins == 0 {
		c.Controls.SeabornBins = defaults.Controls.SeabornBins
	}
	if c.Controls.Species == nil {
		c.Controls.Species = defaults.Controls.Species
	}
	if c.Controls.Islands == nil {
		c.Controls.Islands = defaults.Controls.Islands
	}

	if c.Export.Dir == "" {
		c.Export.Dir = defaults.Export.Dir
	}
	if c.Export.Width == 0 {
		c.Export.Width = defaults.Export.Width
	}
	if c.Export.Height == 0 {
		c.Export.Height = defaults.Export.Height
	}

	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Dir == "" {
		c.Log.Dir = defaults.Log.Dir
	}
	if c.Log.MaxFiles == 0 {
		c.Log.MaxFiles = defaults.Log.MaxFiles
	}
	if c.Log.MaxAge == 0 {
		c.Log.MaxAge = defaults.Log.MaxAge
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
// Species and islands are not checked against the data: an unknown value
// just matches no rows.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if !slices.Contains(dashboard.Attributes, c.Controls.Attribute) {
		errs = append(errs, &ValidationError{
			Field:   "controls.attribute",
			Message: "must be one of " + strings.Join(dashboard.Attributes, ", "),
		})
	}
	if c.Controls.PlotlyBins < 1 || c.Controls.PlotlyBins > dashboard.MaxPlotlyBins {
		errs = append(errs, &ValidationError{
			Field:   "controls.plotly_bins",
			Message: fmt.Sprintf("must be between 1 and %d", dashboard.MaxPlotlyBins),
		})
	}
	if c.Controls.SeabornBins < dashboard.MinSeabornBins || c.Controls.SeabornBins > dashboard.MaxSeabornBins {
		errs = append(errs, &ValidationError{
			Field:   "controls.seaborn_bins",
			Message: fmt.Sprintf("must be between %d and %d", dashboard.MinSeabornBins, dashboard.MaxSeabornBins),
		})
	}

	if c.Export.Width < 0 {
		errs = append(errs, &ValidationError{Field: "export.width", Message: "must be non-negative"})
	}
	if c.Export.Height < 0 {
		errs = append(errs, &ValidationError{Field: "export.height", Message: "must be non-negative"})
	}

	if _, ok := logging.ParseLevel(c.Log.Level); c.Log.Level != "" && !ok {
		errs = append(errs, &ValidationError{
			Field:   "log.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		})
	}
	if c.Log.MaxFiles < 0 {
		errs = append(errs, &ValidationError{Field: "log.max_files", Message: "must be non-negative"})
	}
	if c.Log.MaxAge < 0 {
		errs = append(errs, &ValidationError{Field: "log.max_age", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Selection converts the control values into a dashboard selection.
func (c *Config) Selection() dashboard.Selection {
	return dashboard.Selection{
		Attribute:   c.Controls.Attribute,
		PlotlyBins:  c.Controls.PlotlyBins,
		SeabornBins: c.Controls.SeabornBins,
		Species:     slices.Clone(c.Controls.Species),
		Islands:     slices.Clone(c.Controls.Islands),
	}
}

// LoggingConfig converts the log section into a logging configuration.
func (c *Config) LoggingConfig() *logging.Config {
	lc := logging.DefaultConfig()
	if level, ok := logging.ParseLevel(c.Log.Level); ok {
		lc.Level = level
	}
	if c.Log.Dir != "" {
		lc.LogDir = c.Log.Dir
	}
	if c.Log.MaxFiles > 0 {
		lc.MaxLogFiles = c.Log.MaxFiles
	}
	if c.Log.MaxAge > 0 {
		lc.MaxLogAge = time.Duration(c.Log.MaxAge)
	}
	return lc
}
