package components

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/cintel/penguins/internal/dataset"
	"github.com/cintel/penguins/internal/tui/styles"
)

// maxColumnWidth caps a column so the eight penguin columns fit a terminal.
const maxColumnWidth = 17

// DataTable shows dataset rows in a scrollable bubbles table.
type DataTable struct {
	title  string
	model  table.Model
	rows   int
	width  int
	height int
}

// NewDataTable creates an empty table card.
func NewDataTable(title string) *DataTable {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.BorderColor).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(styles.Foreground).
		Background(styles.Primary)

	m := table.New(
		table.WithColumns(columnsFor(nil)),
		table.WithHeight(8),
		table.WithStyles(s),
	)

	return &DataTable{
		title: title,
		model: m,
	}
}

// columnsFor sizes each column to its widest cell.
func columnsFor(records [][]string) []table.Column {
	cols := make([]table.Column, len(dataset.Columns))
	for i, name := range dataset.Columns {
		w := lipgloss.Width(name)
		for _, rec := range records {
			w = max(w, lipgloss.Width(rec[i]))
		}
		cols[i] = table.Column{Title: name, Width: min(w, maxColumnWidth)}
	}
	return cols
}

// SetData replaces the rows with the contents of d.
func (t *DataTable) SetData(d *dataset.Dataset) {
	records := d.Records()
	rows := make([]table.Row, len(records))
	for i, rec := range records {
		rows[i] = table.Row(rec)
	}

	t.model.SetColumns(columnsFor(records))
	t.model.SetRows(rows)
	t.model.SetCursor(0)
	t.rows = len(rows)
}

// Len returns the number of rows shown.
func (t *DataTable) Len() int {
	return t.rows
}

// Cursor returns the index of the highlighted row.
func (t *DataTable) Cursor() int {
	return t.model.Cursor()
}

// SelectedRow returns the highlighted row, or nil for an empty table.
func (t *DataTable) SelectedRow() []string {
	return t.model.SelectedRow()
}

// Scroll moves the cursor by delta rows.
func (t *DataTable) Scroll(delta int) {
	if delta < 0 {
		t.model.MoveUp(-delta)
	} else {
		t.model.MoveDown(delta)
	}
}

// SetSize sets the outer card size.
func (t *DataTable) SetSize(width, height int) {
	t.width = width
	t.height = height
	// border, title, header and header rule
	t.model.SetHeight(max(height-5, 3))
	t.model.SetWidth(max(width-4, 10))
}

// View renders the card.
func (t *DataTable) View() string {
	body := t.model.View()
	if t.rows == 0 {
		body = styles.MutedTextStyle.Render("No rows match the current selection.")
	}
	return Card(t.title, body, t.width)
}
