package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cintel/penguins/internal/tui/styles"
)

// ShortcutDef defines a single keyboard shortcut.
type ShortcutDef struct {
	Key  string
	Desc string
}

// ShortcutBar is a component that displays contextual keyboard shortcuts.
type ShortcutBar struct {
	shortcuts []ShortcutDef
	width     int
	centered  bool
}

// NewShortcutBar creates a new ShortcutBar with the given shortcuts.
func NewShortcutBar(shortcuts ...ShortcutDef) *ShortcutBar {
	return &ShortcutBar{
		shortcuts: shortcuts,
	}
}

// SetShortcuts replaces all shortcuts.
func (s *ShortcutBar) SetShortcuts(shortcuts ...ShortcutDef) {
	s.shortcuts = shortcuts
}

// SetWidth sets the bar width for alignment.
func (s *ShortcutBar) SetWidth(width int) {
	s.width = width
}

// SetCentered controls whether the bar content is centered.
func (s *ShortcutBar) SetCentered(centered bool) {
	s.centered = centered
}

// View renders the shortcut bar.
func (s *ShortcutBar) View() string {
	if len(s.shortcuts) == 0 {
		return ""
	}

	parts := make([]string, 0, len(s.shortcuts))
	for _, sc := range s.shortcuts {
		parts = append(parts, s.renderShortcut(sc))
	}

	content := strings.Join(parts, s.renderSeparator())

	if s.centered && s.width > 0 {
		return lipgloss.NewStyle().
			Width(s.width).
			Align(lipgloss.Center).
			Render(content)
	}

	return content
}

func (s *ShortcutBar) renderShortcut(sc ShortcutDef) string {
	return styles.KeyStyle.Render(sc.Key) + styles.HelpStyle.Render(":") + styles.HelpStyle.Render(sc.Desc)
}

func (s *ShortcutBar) renderSeparator() string {
	return lipgloss.NewStyle().Foreground(styles.Muted).Render(" │ ")
}

// Predefined shortcut sets.
var (
	// DashboardShortcuts are shown while a sidebar control has focus.
	DashboardShortcuts = []ShortcutDef{
		{"Tab", "next"},
		{"←→", "change"},
		{"1/2", "page"},
		{"q", "quit"},
		{"?", "help"},
	}

	// NumberInputShortcuts are shown while the bin count input has focus.
	NumberInputShortcuts = []ShortcutDef{
		{"0-9", "type"},
		{"Enter", "apply"},
		{"Tab", "next"},
		{"?", "help"},
	}

	// CheckGroupShortcuts are shown while a checkbox group has focus.
	CheckGroupShortcuts = []ShortcutDef{
		{"←→", "move"},
		{"Space", "toggle"},
		{"Tab", "next"},
		{"?", "help"},
	}
)
