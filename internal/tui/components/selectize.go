package components

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cintel/penguins/internal/tui/styles"
)

// Selectize picks one option out of a fixed list.
type Selectize struct {
	id       string
	label    string
	options  []string
	selected int
	focused  bool
}

// NewSelectize creates a picker over options with the first one selected.
func NewSelectize(id, label string, options []string) *Selectize {
	return &Selectize{
		id:      id,
		label:   label,
		options: slices.Clone(options),
	}
}

// ID returns the component's unique identifier.
func (s *Selectize) ID() string {
	return s.id
}

// Focus focuses the picker.
func (s *Selectize) Focus() tea.Cmd {
	s.focused = true
	return nil
}

// Blur removes focus from the picker.
func (s *Selectize) Blur() {
	s.focused = false
}

// Focused returns whether the picker is focused.
func (s *Selectize) Focused() bool {
	return s.focused
}

// Value returns the selected option, or "" when there are none.
func (s *Selectize) Value() string {
	if len(s.options) == 0 {
		return ""
	}
	return s.options[s.selected]
}

// SetValue selects v. It reports false and keeps the selection when v is
// not an option.
func (s *Selectize) SetValue(v string) bool {
	i := slices.Index(s.options, v)
	if i < 0 {
		return false
	}
	s.selected = i
	return true
}

// MovePrev selects the previous option.
func (s *Selectize) MovePrev() {
	if s.selected > 0 {
		s.selected--
	}
}

// MoveNext selects the next option.
func (s *Selectize) MoveNext() {
	if s.selected < len(s.options)-1 {
		s.selected++
	}
}

// Shortcuts returns the shortcuts that apply while the picker has focus.
func (s *Selectize) Shortcuts() []ShortcutDef {
	return DashboardShortcuts
}

// Update handles input messages.
func (s *Selectize) Update(msg tea.Msg) tea.Cmd {
	if !s.focused {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "left", "h":
			s.MovePrev()
		case "right", "l":
			s.MoveNext()
		}
	}
	return nil
}

// View renders the picker.
func (s *Selectize) View() string {
	var b strings.Builder

	label := styles.FormLabelStyle
	if s.focused {
		label = styles.FormLabelFocusedStyle
	}
	b.WriteString(label.Render(s.label))
	b.WriteString("\n")

	if len(s.options) == 0 {
		b.WriteString(styles.MutedTextStyle.Render("  (no options)"))
		return b.String()
	}

	prev, next := " ", " "
	if s.selected > 0 {
		prev = "‹"
	}
	if s.selected < len(s.options)-1 {
		next = "›"
	}

	value := styles.OptionStyle.Render(s.Value())
	if s.focused {
		value = styles.OptionSelectedStyle.Render(s.Value())
	}
	b.WriteString(styles.KeyStyle.Render(prev))
	b.WriteString(value)
	b.WriteString(styles.KeyStyle.Render(next))
	b.WriteString(styles.MutedTextStyle.Render(fmt.Sprintf(" %d/%d", s.selected+1, len(s.options))))

	return b.String()
}
