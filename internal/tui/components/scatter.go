package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cintel/penguins/internal/chart"
	"github.com/cintel/penguins/internal/tui/styles"
)

// yAxisWidth is the room kept left of the plot for y tick labels.
const yAxisWidth = 7

// ScatterView plots a scatter as a character grid with one symbol per
// species.
type ScatterView struct {
	title   string
	scatter *chart.Scatter
	err     error
	width   int
	height  int
}

// NewScatterView creates an empty scatter card.
func NewScatterView(title string) *ScatterView {
	return &ScatterView{
		title:  title,
		width:  60,
		height: 20,
	}
}

// SetScatter replaces the points. A non-nil err is shown instead of the
// grid.
func (v *ScatterView) SetScatter(s *chart.Scatter, err error) {
	v.scatter = s
	v.err = err
}

// Scatter returns the scatter being shown.
func (v *ScatterView) Scatter() *chart.Scatter {
	return v.scatter
}

// SetSize sets the outer card size.
func (v *ScatterView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// plotSize is the grid area once the card frame, axes, caption and legend
// are taken out.
func (v *ScatterView) plotSize() (cols, rows int) {
	return max(v.width-4-yAxisWidth-1, 10), max(v.height-3-4, 4)
}

// Grid places every point on a cols×rows grid. Cells hold the group
// index plus one, 0 for empty. Later groups draw over earlier ones.
func (v *ScatterView) Grid(cols, rows int) [][]int {
	grid := make([][]int, rows)
	for r := range grid {
		grid[r] = make([]int, cols)
	}
	if v.scatter.Empty() {
		return grid
	}

	minX, maxX, minY, maxY := v.scatter.Bounds()
	for gi, g := range v.scatter.Groups {
		for _, p := range v.scatter.Points[g] {
			c := int(math.Round((p.X - minX) / (maxX - minX) * float64(cols-1)))
			r := rows - 1 - int(math.Round((p.Y-minY)/(maxY-minY)*float64(rows-1)))
			grid[r][c] = gi + 1
		}
	}
	return grid
}

// View renders the card.
func (v *ScatterView) View() string {
	return Card(v.title, v.body(), v.width)
}

func (v *ScatterView) body() string {
	caption := styles.HeaderValueStyle.Render("Plotly Scatterplot")

	switch {
	case v.err != nil:
		return caption + "\n" + styles.ErrorTextStyle.Render("✗ "+v.err.Error())
	case v.scatter.Empty():
		return caption + "\n" + styles.MutedTextStyle.Render("No data for the current selection.")
	}

	s := v.scatter
	cols, rows := v.plotSize()
	grid := v.Grid(cols, rows)
	minX, maxX, minY, maxY := s.Bounds()

	marks := make([]string, len(s.Groups))
	for i, g := range s.Groups {
		marks[i] = styles.Species(chart.Hex(g, s.Groups)).Render(string(chart.Marker(g)))
	}

	var b strings.Builder
	b.WriteString(caption)
	b.WriteString("\n")

	for r, line := range grid {
		tick := ""
		switch r {
		case 0:
			tick = formatTick(maxY)
		case rows - 1:
			tick = formatTick(minY)
		}
		fmt.Fprintf(&b, "%*s│", yAxisWidth, tick)
		for _, cell := range line {
			if cell == 0 {
				b.WriteString(" ")
			} else {
				b.WriteString(marks[cell-1])
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat(" ", yAxisWidth) + "└" + strings.Repeat("─", cols) + "\n")

	lo, hi := formatTick(minX), formatTick(maxX)
	gap := max(cols-lipgloss.Width(lo)-lipgloss.Width(hi), 1)
	b.WriteString(strings.Repeat(" ", yAxisWidth+1) + lo + strings.Repeat(" ", gap) + hi + "\n")

	legend := make([]string, len(s.Groups))
	for i, g := range s.Groups {
		legend[i] = marks[i] + " " + g
	}
	b.WriteString(styles.MutedTextStyle.Render(fmt.Sprintf("x: %s  y: %s  ", s.XAttr, s.YAttr)))
	b.WriteString(strings.Join(legend, "  "))

	return b.String()
}

func formatTick(v float64) string {
	if math.Abs(v) >= 100 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
