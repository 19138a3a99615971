package components

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Control is a sidebar input. A control owns its value. The app reads the
// value back after every key the control handles.
type Control interface {
	ID() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Update(msg tea.Msg) tea.Cmd
	View() string
	Shortcuts() []ShortcutDef
}

// KeyCapturer is implemented by controls that want keys the app would
// otherwise treat as global shortcuts, such as digits.
type KeyCapturer interface {
	Captures(msg tea.KeyMsg) bool
}

