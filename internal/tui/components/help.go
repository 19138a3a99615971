package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cintel/penguins/internal/tui/styles"
)

// ShortcutGroup represents a group of related shortcuts.
type ShortcutGroup struct {
	Title     string
	Shortcuts []ShortcutDef
}

// HelpOverlay displays keyboard shortcuts. The first group describes the
// focused control and changes with focus; the rest are fixed.
type HelpOverlay struct {
	visible bool
	width   int
	height  int
	focused ShortcutGroup
	groups  []ShortcutGroup
}

// NewHelpOverlay creates a new HelpOverlay component.
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{
		width:  60,
		height: 20,
		groups: []ShortcutGroup{
			{
				Title: "Controls",
				Shortcuts: []ShortcutDef{
					{"Tab", "Focus next control"},
					{"S-Tab", "Focus previous control"},
					{"←/→", "Change attribute, slider or checkbox"},
					{"Space", "Toggle checkbox"},
					{"0-9 ⏎", "Type and apply bin count"},
				},
			},
			{
				Title: "Pages",
				Shortcuts: []ShortcutDef{
					{"1", "Tables"},
					{"2", "Charts"},
					{"j/k", "Scroll data table or plotly histogram"},
					{"↑/↓", "Scroll data grid or seaborn histogram"},
				},
			},
			{
				Title: "General",
				Shortcuts: []ShortcutDef{
					{"?", "Toggle help"},
					{"q", "Quit"},
					{"Esc", "Close overlay"},
				},
			},
		},
	}
}

// SetFocused describes the focused control. An empty id clears it.
func (h *HelpOverlay) SetFocused(id string, shortcuts []ShortcutDef) {
	if id == "" {
		h.focused = ShortcutGroup{}
		return
	}
	h.focused = ShortcutGroup{Title: "Focused: " + id, Shortcuts: shortcuts}
}

// Groups returns the groups in display order.
func (h *HelpOverlay) Groups() []ShortcutGroup {
	if h.focused.Title == "" {
		return h.groups
	}
	return append([]ShortcutGroup{h.focused}, h.groups...)
}

// SetSize sets the overlay dimensions.
func (h *HelpOverlay) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// Show makes the overlay visible.
func (h *HelpOverlay) Show() {
	h.visible = true
}

// Hide hides the overlay.
func (h *HelpOverlay) Hide() {
	h.visible = false
}

// Toggle toggles visibility.
func (h *HelpOverlay) Toggle() {
	h.visible = !h.visible
}

// IsVisible returns whether the overlay is visible.
func (h *HelpOverlay) IsVisible() bool {
	return h.visible
}

// Update handles input messages.
func (h *HelpOverlay) Update(msg tea.Msg) tea.Cmd {
	if !h.visible {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "h", "?", "q":
			h.Hide()
			return func() tea.Msg {
				return HelpClosedMsg{}
			}
		}
	}
	return nil
}

// View renders the help overlay.
func (h *HelpOverlay) View() string {
	if !h.visible {
		return ""
	}

	var b strings.Builder

	b.WriteString(styles.TitleStyle.Width(h.width - 4).Render("  Keyboard Shortcuts"))
	b.WriteString("\n\n")

	groups := h.Groups()
	for i, group := range groups {
		b.WriteString(renderGroup(group))
		if i < len(groups)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedTextStyle.Italic(true).Render("Press ? or Esc to close"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(styles.Primary).
		Padding(1, 2)

	return boxStyle.Render(b.String())
}

func renderGroup(group ShortcutGroup) string {
	var b strings.Builder

	b.WriteString(styles.CardTitleStyle.Render(group.Title))
	b.WriteString("\n")

	keyStyle := styles.KeyStyle.Width(8)
	for _, shortcut := range group.Shortcuts {
		b.WriteString("  ")
		b.WriteString(keyStyle.Render(shortcut.Key))
		b.WriteString(" ")
		b.WriteString(styles.HelpStyle.Render(shortcut.Desc))
		b.WriteString("\n")
	}

	return b.String()
}

// HelpClosedMsg is sent when the help overlay is closed.
type HelpClosedMsg struct{}
