// Package components provides reusable TUI components for the penguins
// dashboard.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/cintel/penguins/internal/tui/styles"
)

// HeaderData contains the data to display in the header.
type HeaderData struct {
	Title    string
	Source   string
	Rows     int
	Filtered int
	Page     string
}

// Header is a component that displays the dashboard title and row counts.
type Header struct {
	data  HeaderData
	width int
}

// NewHeader creates a new Header component.
func NewHeader(title string) *Header {
	return &Header{
		data: HeaderData{
			Title:  title,
			Source: "-",
		},
	}
}

// SetData updates the header data.
func (h *Header) SetData(data HeaderData) {
	h.data = data
}

// SetSource sets the dataset source shown in the header.
func (h *Header) SetSource(source string) {
	h.data.Source = source
}

// SetRows sets the full and filtered row counts.
func (h *Header) SetRows(rows, filtered int) {
	h.data.Rows = rows
	h.data.Filtered = filtered
}

// SetPage sets the name of the visible page.
func (h *Header) SetPage(page string) {
	h.data.Page = page
}

// SetWidth sets the width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	title := styles.TitleStyle.Render(h.data.Title)

	sep := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Render(" │ ")

	sourceLabel := styles.HeaderLabelStyle.Render("Data: ")
	sourceValue := styles.HeaderValueStyle.Render(h.data.Source)

	rowsLabel := styles.HeaderLabelStyle.Render("Rows: ")
	rowsValue := styles.HeaderValueStyle.Render(fmt.Sprintf("%d/%d", h.data.Filtered, h.data.Rows))

	content := fmt.Sprintf("%s%s%s%s%s%s%s",
		title, sep,
		sourceLabel, sourceValue, sep,
		rowsLabel, rowsValue,
	)

	if h.data.Page != "" {
		pageLabel := styles.HeaderLabelStyle.Render("Page: ")
		pageValue := styles.HeaderValueStyle.Render(h.data.Page)
		content = fmt.Sprintf("%s%s%s%s", content, sep, pageLabel, pageValue)
	}

	headerStyle := lipgloss.NewStyle().
		Background(styles.Primary).
		Foreground(styles.Foreground).
		Padding(0, 1)

	if h.width > 0 {
		headerStyle = headerStyle.Width(h.width)
	}

	return headerStyle.Render(content)
}
