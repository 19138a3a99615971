// Package styles provides Lip Gloss styles for the penguins TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI.
var (
	Primary     = lipgloss.Color("#7C3AED") // Purple
	Secondary   = lipgloss.Color("#06B6D4") // Cyan
	Success     = lipgloss.Color("#10B981") // Green
	Warning     = lipgloss.Color("#F59E0B") // Amber
	Error       = lipgloss.Color("#EF4444") // Red
	Muted       = lipgloss.Color("#6B7280") // Gray
	MutedLight  = lipgloss.Color("#9CA3AF") // Light Gray
	Background  = lipgloss.Color("#1F2937") // Dark Gray
	Foreground  = lipgloss.Color("#F9FAFB") // White
	BorderColor = lipgloss.Color("#374151") // Border Gray
)

// Header styles.
var (
	// HeaderLabelStyle is for header labels.
	HeaderLabelStyle = lipgloss.NewStyle().
				Foreground(MutedLight)

	// HeaderValueStyle is for header values.
	HeaderValueStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Bold(true)

	// TitleStyle is for the application title.
	TitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 1)
)

// Card styles. A card frames one table or chart.
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// CardTitleStyle renders the heading inside a card.
	CardTitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// SidebarStyle frames the controls column.
	SidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	// SidebarTitleStyle is the "Sidebar" heading.
	SidebarTitleStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Bold(true).
				Underline(true)

	// LinkStyle is for the repository link line.
	LinkStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Underline(true)

	// RuleStyle draws horizontal rules.
	RuleStyle = lipgloss.NewStyle().
			Foreground(BorderColor)
)

// Text styles.
var (
	// MutedTextStyle is for de-emphasized text.
	MutedTextStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// ErrorTextStyle is for error messages.
	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(Error)

	// SuccessTextStyle is for success messages.
	SuccessTextStyle = lipgloss.NewStyle().
				Foreground(Success)

	// WarningTextStyle is for warning messages.
	WarningTextStyle = lipgloss.NewStyle().
				Foreground(Warning)
)

// Status bar styles.
var (
	// StatusBarStyle is the main status bar container.
	StatusBarStyle = lipgloss.NewStyle().
			Background(Background).
			Foreground(MutedLight).
			Padding(0, 1)

	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// Control styles.
var (
	// FormLabelStyle is for control labels.
	FormLabelStyle = lipgloss.NewStyle().
			Foreground(MutedLight)

	// FormLabelFocusedStyle is for the focused control's label.
	FormLabelFocusedStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				Bold(true)

	// OptionSelectedStyle highlights the chosen option of a picker.
	OptionSelectedStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Background(Primary).
				Padding(0, 1)

	// OptionStyle is for picker options that are not chosen.
	OptionStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			Padding(0, 1)

	// CheckboxCheckedStyle is for checked checkboxes.
	CheckboxCheckedStyle = lipgloss.NewStyle().
				Foreground(Success)

	// CheckboxUncheckedStyle is for unchecked checkboxes.
	CheckboxUncheckedStyle = lipgloss.NewStyle().
				Foreground(Muted)

	// CursorStyle marks the checkbox under the cursor.
	CursorStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// SliderFilledStyle is the part of the slider track left of the knob.
	SliderFilledStyle = lipgloss.NewStyle().
				Foreground(Primary)

	// SliderEmptyStyle is the rest of the slider track.
	SliderEmptyStyle = lipgloss.NewStyle().
				Foreground(Muted)
)

// Species returns a style that paints text in a species color given as hex.
func Species(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
