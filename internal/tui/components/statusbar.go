package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cintel/penguins/internal/tui/styles"
)

// StatusBarData contains the data to display in the status bar.
type StatusBarData struct {
	Focused       string // Name of the focused control
	Message       string // Optional status message
	Error         string // Last error, shown instead of Message
	ShowShortcuts bool
	Shortcuts     []ShortcutDef // Optional custom shortcuts (overrides defaults)
}

// StatusBar displays the focused control, the last error and keyboard
// shortcuts.
type StatusBar struct {
	data  StatusBarData
	width int
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{
		data: StatusBarData{
			ShowShortcuts: true,
		},
	}
}

// SetData updates the status bar data.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

// SetFocused sets the name of the focused control.
func (s *StatusBar) SetFocused(name string) {
	s.data.Focused = name
}

// SetMessage sets an optional status message.
func (s *StatusBar) SetMessage(message string) {
	s.data.Message = message
}

// SetError sets the error text. An empty string clears it.
func (s *StatusBar) SetError(err string) {
	s.data.Error = err
}

// Error returns the error text currently shown.
func (s *StatusBar) Error() string {
	return s.data.Error
}

// SetShortcuts replaces the shortcuts shown on the right.
func (s *StatusBar) SetShortcuts(shortcuts []ShortcutDef) {
	s.data.Shortcuts = shortcuts
}

// SetShowShortcuts sets whether to show keyboard shortcuts.
func (s *StatusBar) SetShowShortcuts(show bool) {
	s.data.ShowShortcuts = show
}

// SetWidth sets the width of the status bar.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	sep := lipgloss.NewStyle().
		Foreground(styles.Muted).
		Render(" │ ")

	focusLabel := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Render("Focus: ")
	focusValue := lipgloss.NewStyle().
		Foreground(styles.Secondary).
		Render(orDash(s.data.Focused))

	leftContent := focusLabel + focusValue

	switch {
	case s.data.Error != "":
		leftContent += sep + styles.ErrorTextStyle.Render("✗ "+s.data.Error)
	case s.data.Message != "":
		msgStyle := lipgloss.NewStyle().
			Foreground(styles.MutedLight).
			Italic(true)
		leftContent += sep + msgStyle.Render(s.data.Message)
	}

	rightContent := ""
	if s.data.ShowShortcuts {
		shortcuts := s.data.Shortcuts
		if len(shortcuts) == 0 {
			shortcuts = DashboardShortcuts
		}
		rightContent = NewShortcutBar(shortcuts...).View()
	}

	containerStyle := styles.StatusBarStyle
	if s.width > 0 {
		containerStyle = containerStyle.Width(s.width)

		leftWidth := lipgloss.Width(leftContent)
		rightWidth := lipgloss.Width(rightContent)
		padding := s.width - leftWidth - rightWidth - 2 // -2 for container padding
		if padding > 0 {
			return containerStyle.Render(leftContent + strings.Repeat(" ", padding) + rightContent)
		}
	}

	return containerStyle.Render(leftContent + "  " + rightContent)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
