// Package errors provides error types for the penguins dashboard.
// This file contains configuration-related errors.
package errors

import (
	"fmt"
	"strings"
)

// DocLinkConfig points at the configuration section of the README.
const DocLinkConfig = "https://github.com/cintel/penguins#configuration"

// ConfigNotFound creates an error for a config file that was explicitly
// requested but does not exist.
func ConfigNotFound(configPath string) *PenguinError {
	return &PenguinError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("configuration file not found: %s", configPath),
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Create a default configuration:

    penguins init

  or drop the --config flag to run with built-in defaults.`,
		DocLink: DocLinkConfig,
	}
}

// ConfigParseError creates an error for YAML parsing failures.
func ConfigParseError(configPath string, parseErr error) *PenguinError {
	return &PenguinError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to parse configuration: %s", configPath),
		Cause:   parseErr,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check the file for YAML syntax errors:
  - use spaces, not tabs, for indentation
  - lists need a '- ' prefix
  - quote strings that contain ':' or '#'`,
	}
}

// ConfigValidationError creates an error for invalid configuration values.
func ConfigValidationError(field, message string, validOptions []string) *PenguinError {
	suggestion := fmt.Sprintf("Fix the %q field in .penguins/config.yaml", field)
	if len(validOptions) > 0 {
		suggestion += fmt.Sprintf("\n  Valid options: %s", strings.Join(validOptions, ", "))
	}

	return &PenguinError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("invalid configuration: %s", message),
		Details: map[string]string{
			"field": field,
		},
		Suggestion: suggestion,
	}
}
