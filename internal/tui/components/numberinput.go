package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cintel/penguins/internal/tui/styles"
)

// NumberInput is a whole-number field built on the bubbles textinput.
// Typed digits only take effect once enter commits them.
type NumberInput struct {
	model   textinput.Model
	id      string
	label   string
	value   int
	min     int
	max     int
	focused bool
	err     string
}

// NewNumberInput creates a field holding value that rejects anything
// outside [minimum, maximum].
func NewNumberInput(id, label string, value, minimum, maximum int) *NumberInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 6
	ti.Width = 8
	ti.SetValue(strconv.Itoa(value))

	return &NumberInput{
		model: ti,
		id:    id,
		label: label,
		value: value,
		min:   minimum,
		max:   maximum,
	}
}

// ID returns the component's unique identifier.
func (n *NumberInput) ID() string {
	return n.id
}

// Focus focuses the field.
func (n *NumberInput) Focus() tea.Cmd {
	n.focused = true
	n.model.CursorEnd()
	return n.model.Focus()
}

// Blur removes focus and drops uncommitted edits.
func (n *NumberInput) Blur() {
	n.focused = false
	n.model.Blur()
	n.model.SetValue(strconv.Itoa(n.value))
	n.err = ""
}

// Focused returns whether the field is focused.
func (n *NumberInput) Focused() bool {
	return n.focused
}

// Value returns the last committed number.
func (n *NumberInput) Value() int {
	return n.value
}

// SetValue replaces the committed number and the field text.
func (n *NumberInput) SetValue(v int) {
	n.value = v
	n.err = ""
	n.model.SetValue(strconv.Itoa(v))
}

// Text returns the text currently in the field.
func (n *NumberInput) Text() string {
	return n.model.Value()
}

// Err returns the message for the last rejected commit.
func (n *NumberInput) Err() string {
	return n.err
}

// Shortcuts returns the shortcuts that apply while the field has focus.
func (n *NumberInput) Shortcuts() []ShortcutDef {
	return NumberInputShortcuts
}

// Captures claims digits and editing keys so they do not switch pages.
func (n *NumberInput) Captures(msg tea.KeyMsg) bool {
	if !n.focused {
		return false
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyEnter, tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd:
		return true
	case tea.KeyRunes:
		return isDigits(msg.Runes)
	}
	return false
}

// Update handles messages for the field.
func (n *NumberInput) Update(msg tea.Msg) tea.Cmd {
	if !n.focused {
		return nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Type == tea.KeyEnter:
			n.commit()
			return nil
		case key.Type == tea.KeyRunes && !isDigits(key.Runes):
			return nil
		}
	}

	var cmd tea.Cmd
	n.model, cmd = n.model.Update(msg)
	return cmd
}

func (n *NumberInput) commit() {
	text := strings.TrimSpace(n.model.Value())
	v, err := strconv.Atoi(text)
	if err != nil || v < n.min || v > n.max {
		n.err = fmt.Sprintf("enter a whole number from %d to %d", n.min, n.max)
		return
	}
	n.value = v
	n.err = ""
	n.model.SetValue(strconv.Itoa(v))
}

// View renders the field.
func (n *NumberInput) View() string {
	label := styles.FormLabelStyle
	input := styles.OptionStyle
	if n.focused {
		label = styles.FormLabelFocusedStyle
		input = styles.OptionSelectedStyle
	}

	view := label.Render(n.label) + "\n" + input.Render(n.model.View())
	if n.focused && n.model.Value() != strconv.Itoa(n.value) {
		view += styles.MutedTextStyle.Render(" ⏎ to apply")
	}
	if n.err != "" {
		view += "\n" + styles.ErrorTextStyle.Render(n.err)
	}
	return view
}

func isDigits(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
