package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cintel/penguins/internal/tui/styles"
)

// Slider picks an integer in [min, max] one step at a time.
type Slider struct {
	id       string
	label    string
	min, max int
	value    int
	width    int
	focused  bool
}

// NewSlider creates a slider over [lo, hi] starting at value.
func NewSlider(id, label string, lo, hi, value int) *Slider {
	s := &Slider{
		id:    id,
		label: label,
		min:   lo,
		max:   hi,
		width: 20,
	}
	s.SetValue(value)
	return s
}

// ID returns the component's unique identifier.
func (s *Slider) ID() string {
	return s.id
}

// Focus focuses the slider.
func (s *Slider) Focus() tea.Cmd {
	s.focused = true
	return nil
}

// Blur removes focus from the slider.
func (s *Slider) Blur() {
	s.focused = false
}

// Focused returns whether the slider is focused.
func (s *Slider) Focused() bool {
	return s.focused
}

// Value returns the current position.
func (s *Slider) Value() int {
	return s.value
}

// SetValue moves the knob to v, clamped to the range.
func (s *Slider) SetValue(v int) {
	s.value = max(s.min, min(v, s.max))
}

// SetWidth sets the track width in cells.
func (s *Slider) SetWidth(width int) {
	s.width = max(width, 2)
}

// Shortcuts returns the shortcuts that apply while the slider has focus.
func (s *Slider) Shortcuts() []ShortcutDef {
	return DashboardShortcuts
}

// Update handles input messages.
func (s *Slider) Update(msg tea.Msg) tea.Cmd {
	if !s.focused {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "left", "h":
			s.SetValue(s.value - 1)
		case "right", "l":
			s.SetValue(s.value + 1)
		case "home":
			s.SetValue(s.min)
		case "end":
			s.SetValue(s.max)
		}
	}
	return nil
}

// knob returns the track cell holding the knob.
func (s *Slider) knob() int {
	if s.max == s.min {
		return 0
	}
	return (s.value - s.min) * (s.width - 1) / (s.max - s.min)
}

// View renders the slider.
func (s *Slider) View() string {
	label := styles.FormLabelStyle
	if s.focused {
		label = styles.FormLabelFocusedStyle
	}

	k := s.knob()
	track := styles.SliderFilledStyle.Render(strings.Repeat("━", k)) +
		styles.KeyStyle.Render("●") +
		styles.SliderEmptyStyle.Render(strings.Repeat("─", s.width-k-1))

	value := styles.HeaderValueStyle.Render(fmt.Sprintf(" %d", s.value))

	lo := fmt.Sprintf("%d", s.min)
	hi := fmt.Sprintf("%d", s.max)
	gap := max(s.width-lipgloss.Width(lo)-lipgloss.Width(hi), 1)
	scale := styles.MutedTextStyle.Render(lo + strings.Repeat(" ", gap) + hi)

	return label.Render(s.label) + "\n" + track + value + "\n" + scale
}
