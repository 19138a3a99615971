package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/cintel/penguins/internal/chart"
	"github.com/cintel/penguins/internal/tui/styles"
)

// BarLayout says how species bars share a bin.
type BarLayout int

const (
	// Stacked draws one bar per bin with a segment per species.
	Stacked BarLayout = iota
	// Dodged draws one bar per species side by side within a bin.
	Dodged
)

// HistogramView draws a histogram as horizontal text bars, one bin per
// row, inside a scrollable viewport.
type HistogramView struct {
	title    string
	subtitle string
	yLabel   string
	layout   BarLayout
	hist     *chart.Histogram
	err      error
	viewport viewport.Model
	width    int
	height   int
}

// NewHistogramView creates an empty histogram card.
func NewHistogramView(title, subtitle, yLabel string, layout BarLayout) *HistogramView {
	v := &HistogramView{
		title:    title,
		subtitle: subtitle,
		yLabel:   yLabel,
		layout:   layout,
		viewport: viewport.New(40, 10),
	}
	v.SetSize(44, 14)
	return v
}

// SetHistogram replaces the histogram. A non-nil err is shown in place of
// the bars.
func (v *HistogramView) SetHistogram(h *chart.Histogram, err error) {
	v.hist = h
	v.err = err
	v.viewport.SetContent(v.Content())
	v.viewport.GotoTop()
}

// Histogram returns the histogram being shown.
func (v *HistogramView) Histogram() *chart.Histogram {
	return v.hist
}

// Err returns the error being shown, if any.
func (v *HistogramView) Err() error {
	return v.err
}

// SetSize sets the outer card size.
func (v *HistogramView) SetSize(width, height int) {
	v.width = width
	v.height = height
	// border, padding and title
	v.viewport.Width = max(width-4, 10)
	v.viewport.Height = max(height-3, 3)
	v.viewport.SetContent(v.Content())
}

// Scroll moves the viewport by delta lines.
func (v *HistogramView) Scroll(delta int) {
	v.viewport.SetYOffset(v.viewport.YOffset + delta)
}

// Offset returns the first visible line.
func (v *HistogramView) Offset() int {
	return v.viewport.YOffset
}

// barWidth is the room left for bars once labels and counts are drawn.
func (v *HistogramView) barWidth(labelWidth int) int {
	return max(v.viewport.Width-labelWidth-7, 4)
}

// Content renders every line of the chart, ignoring the viewport.
func (v *HistogramView) Content() string {
	var b strings.Builder

	if v.subtitle != "" {
		b.WriteString(styles.HeaderValueStyle.Render(v.subtitle))
		b.WriteString("\n")
	}

	switch {
	case v.err != nil:
		b.WriteString(styles.ErrorTextStyle.Render("✗ " + v.err.Error()))
		return b.String()
	case v.hist.Empty():
		b.WriteString(styles.MutedTextStyle.Render("No data for the current selection."))
		return b.String()
	}

	h := v.hist
	b.WriteString(styles.MutedTextStyle.Render(fmt.Sprintf("x: %s  bins: %d  y: %s", h.Attribute, h.Bins(), v.yLabel)))
	b.WriteString("\n")
	b.WriteString(v.legend())
	b.WriteString("\n")

	labelWidth := 0
	for i := 0; i < h.Bins(); i++ {
		labelWidth = max(labelWidth, lipgloss.Width(h.Label(i)))
	}

	if v.layout == Stacked {
		v.writeStacked(&b, labelWidth)
	} else {
		v.writeDodged(&b, labelWidth)
	}

	if h.Missing > 0 {
		b.WriteString(styles.MutedTextStyle.Render(fmt.Sprintf("%d rows without %s", h.Missing, h.Attribute)))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (v *HistogramView) writeStacked(b *strings.Builder, labelWidth int) {
	h := v.hist
	width := v.barWidth(labelWidth)
	scale := float64(width) / float64(max(h.MaxTotal(), 1))

	for i := 0; i < h.Bins(); i++ {
		fmt.Fprintf(b, "%*s │", labelWidth, h.Label(i))

		// Rounding the running sum keeps the bar length true to the total.
		cum, drawn := 0, 0
		for _, g := range h.Groups {
			cum += h.Counts[g][i]
			end := int(math.Round(float64(cum) * scale))
			if n := end - drawn; n > 0 {
				b.WriteString(v.paint(g, strings.Repeat("█", n)))
				drawn = end
			}
		}
		if t := h.Total(i); t > 0 {
			fmt.Fprintf(b, " %d", t)
		}
		b.WriteString("\n")
	}
}

func (v *HistogramView) writeDodged(b *strings.Builder, labelWidth int) {
	h := v.hist
	width := v.barWidth(labelWidth)
	scale := float64(width) / float64(max(h.MaxCount(), 1))

	for i := 0; i < h.Bins(); i++ {
		for j, g := range h.Groups {
			label := ""
			if j == 0 {
				label = h.Label(i)
			}
			fmt.Fprintf(b, "%*s │", labelWidth, label)

			c := h.Counts[g][i]
			if n := int(math.Round(float64(c) * scale)); n > 0 {
				b.WriteString(v.paint(g, strings.Repeat("█", n)))
			}
			if c > 0 {
				fmt.Fprintf(b, " %d", c)
			}
			b.WriteString("\n")
		}
	}
}

func (v *HistogramView) legend() string {
	parts := make([]string, len(v.hist.Groups))
	for i, g := range v.hist.Groups {
		parts[i] = v.paint(g, "█") + " " + g
	}
	return strings.Join(parts, "  ")
}

func (v *HistogramView) paint(group, s string) string {
	return styles.Species(chart.Hex(group, v.hist.Groups)).Render(s)
}

// View renders the card.
func (v *HistogramView) View() string {
	return Card(v.title, v.viewport.View(), v.width)
}
