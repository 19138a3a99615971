// Package tui provides the terminal user interface for the penguins
// dashboard.
package tui

import (
	"github.com/cintel/penguins/internal/dashboard"
)

// SelectionMsg replaces every control value, for example after the config
// file changed.
type SelectionMsg struct {
	Selection dashboard.Selection
	Source    string
}

// ErrorMsg reports an error from outside the program, such as a config
// reload that failed to parse.
type ErrorMsg struct {
	Err error
}

func (e ErrorMsg) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}
