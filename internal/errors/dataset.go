// Package errors provides error types for the penguins dashboard.
// This file contains dataset, attribute and rendering errors.
package errors

import (
	"fmt"
	"strings"
)

// DatasetNotFound creates an error for a dataset path that does not exist.
func DatasetNotFound(path string) *PenguinError {
	return &PenguinError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("dataset not found: %s", path),
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `Point --data (or dataset.path in the config) at a CSV in the
palmerpenguins layout, or leave it empty to use the bundled dataset.`,
	}
}

// DatasetParseError creates an error for a CSV that could not be read as a
// penguin table.
func DatasetParseError(path string, cause error) *PenguinError {
	if path == "" {
		path = "<bundled>"
	}
	return &PenguinError{
		Kind:    ErrDataset,
		Message: fmt.Sprintf("failed to load dataset: %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `The CSV needs a header row with at least these columns:
  species, island, bill_length_mm, bill_depth_mm, flipper_length_mm, body_mass_g
Missing measurements may be written as NA.`,
	}
}

// UnknownAttribute creates an error for a plot request on a column that is
// not one of the numeric attributes.
func UnknownAttribute(name string, valid []string) *PenguinError {
	return &PenguinError{
		Kind:    ErrAttribute,
		Message: fmt.Sprintf("unknown attribute: %q", name),
		Details: map[string]string{
			"attribute": name,
		},
		Suggestion: fmt.Sprintf("Choose one of: %s", strings.Join(valid, ", ")),
	}
}

// EmptyChart creates an error for a chart with nothing to draw, such as a
// derived view with no rows.
func EmptyChart(chart string) *PenguinError {
	return &PenguinError{
		Kind:    ErrRender,
		Message: fmt.Sprintf("nothing to draw for %s", chart),
		Details: map[string]string{
			"chart": chart,
		},
		Suggestion: "Select at least one species and one island.",
	}
}

// RenderFailed wraps a charting library failure.
func RenderFailed(chart string, cause error) *PenguinError {
	return &PenguinError{
		Kind:    ErrRender,
		Message: fmt.Sprintf("failed to render %s", chart),
		Cause:   cause,
		Details: map[string]string{
			"chart": chart,
		},
	}
}
