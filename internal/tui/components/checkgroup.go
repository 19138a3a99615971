package components

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cintel/penguins/internal/tui/styles"
)

// CheckGroup is an inline group of checkboxes over a fixed option list.
type CheckGroup struct {
	id      string
	label   string
	options []string
	checked map[string]bool
	cursor  int
	focused bool
}

// NewCheckGroup creates a group with the given options checked.
func NewCheckGroup(id, label string, options, checked []string) *CheckGroup {
	g := &CheckGroup{
		id:      id,
		label:   label,
		options: slices.Clone(options),
	}
	g.SetSelected(checked)
	return g
}

// ID returns the component's unique identifier.
func (g *CheckGroup) ID() string {
	return g.id
}

// Focus focuses the group.
func (g *CheckGroup) Focus() tea.Cmd {
	g.focused = true
	return nil
}

// Blur removes focus from the group.
func (g *CheckGroup) Blur() {
	g.focused = false
}

// Focused returns whether the group is focused.
func (g *CheckGroup) Focused() bool {
	return g.focused
}

// Cursor returns the option under the cursor.
func (g *CheckGroup) Cursor() string {
	if len(g.options) == 0 {
		return ""
	}
	return g.options[g.cursor]
}

// Toggle flips the option under the cursor.
func (g *CheckGroup) Toggle() {
	if len(g.options) == 0 {
		return
	}
	opt := g.options[g.cursor]
	g.checked[opt] = !g.checked[opt]
}

// Selected returns the checked options in option order. The result is
// never nil.
func (g *CheckGroup) Selected() []string {
	out := []string{}
	for _, opt := range g.options {
		if g.checked[opt] {
			out = append(out, opt)
		}
	}
	return out
}

// SetSelected checks exactly the options in sel. Unknown values are
// ignored.
func (g *CheckGroup) SetSelected(sel []string) {
	g.checked = make(map[string]bool, len(g.options))
	for _, v := range sel {
		if slices.Contains(g.options, v) {
			g.checked[v] = true
		}
	}
}

// Shortcuts returns the shortcuts that apply while the group has focus.
func (g *CheckGroup) Shortcuts() []ShortcutDef {
	return CheckGroupShortcuts
}

// Update handles messages for the group.
func (g *CheckGroup) Update(msg tea.Msg) tea.Cmd {
	if !g.focused {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "left", "h":
			if g.cursor > 0 {
				g.cursor--
			}
		case "right", "l":
			if g.cursor < len(g.options)-1 {
				g.cursor++
			}
		case " ", "space", "enter":
			g.Toggle()
		}
	}
	return nil
}

// View renders the group.
func (g *CheckGroup) View() string {
	var b strings.Builder

	label := styles.FormLabelStyle
	if g.focused {
		label = styles.FormLabelFocusedStyle
	}
	b.WriteString(label.Render(g.label))
	b.WriteString("\n")

	for i, opt := range g.options {
		box := styles.CheckboxUncheckedStyle.Render("[ ]")
		if g.checked[opt] {
			box = styles.CheckboxCheckedStyle.Render("[✓]")
		}
		name := styles.FormLabelStyle.Render(opt)
		if g.focused && i == g.cursor {
			name = styles.CursorStyle.Render(opt)
		}
		b.WriteString(box + " " + name)
		if i < len(g.options)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
