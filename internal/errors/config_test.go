package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigNotFound(t *testing.T) {
	err := ConfigNotFound("/path/to/config.yaml")

	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigNotFound should return ErrConfig")
	}
	if err.Details["path"] != "/path/to/config.yaml" {
		t.Error("Should include path in details")
	}
	if !strings.Contains(err.Suggestion, "penguins init") {
		t.Error("Suggestion should mention init command")
	}
	if err.DocLink == "" {
		t.Error("Should include documentation link")
	}
}

func TestConfigParseError(t *testing.T) {
	parseErr := errors.New("unexpected end of file")
	err := ConfigParseError("/path/config.yaml", parseErr)

	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigParseError should return ErrConfig")
	}
	if !errors.Is(err.Cause, parseErr) {
		t.Error("Should wrap the parse error")
	}
	if !strings.Contains(err.Suggestion, "YAML") {
		t.Error("Suggestion should mention YAML syntax")
	}
}

func TestConfigValidationError(t *testing.T) {
	err := ConfigValidationError("controls.attribute", "unknown attribute", []string{"bill_length_mm", "body_mass_g"})

	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigValidationError should return ErrConfig")
	}
	if !strings.Contains(err.Suggestion, "bill_length_mm, body_mass_g") {
		t.Error("Suggestion should list valid options")
	}
	if err.Details["field"] != "controls.attribute" {
		t.Error("Should include field name")
	}
}

func TestConfigValidationError_NoOptions(t *testing.T) {
	err := ConfigValidationError("controls.plotly_bins", "must be positive", nil)

	if !strings.Contains(err.Suggestion, "Fix the") {
		t.Error("Should still provide suggestion without options")
	}
	if strings.Contains(err.Suggestion, "Valid options") {
		t.Error("Should not list options when none are given")
	}
}
