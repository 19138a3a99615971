package chart

import (
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	perrors "github.com/cintel/penguins/internal/errors"
)

// Chart names used in errors, logs and export file names.
const (
	PlotlyHistogram  = "plotly_histogram"
	SeabornHistogram = "seaborn_histogram"
	PlotlyScatter    = "plotly_scatterplot"
)

// Size is a PNG size in pixels.
type Size struct {
	Width, Height int
}

// DefaultSize matches a laptop-width dashboard card.
var DefaultSize = Size{Width: 800, Height: 500}

const pngDPI = 96

func (s Size) lengths() (vg.Length, vg.Length) {
	if s.Width <= 0 || s.Height <= 0 {
		s = DefaultSize
	}
	toLength := func(px int) vg.Length {
		return vg.Length(px) * vg.Inch / pngDPI
	}
	return toLength(s.Width), toLength(s.Height)
}

// WritePlotlyHistogramPNG draws h as bars stacked per species.
func WritePlotlyHistogramPNG(w io.Writer, h *Histogram, size Size) error {
	if h.Empty() || h.Count() == 0 {
		return perrors.EmptyChart(PlotlyHistogram)
	}

	p := plot.New()
	p.Title.Text = "Species Plotly Histogram"
	p.X.Label.Text = h.Attribute
	p.Y.Label.Text = "count"
	p.Legend.Top = true

	width, height := size.lengths()
	barWidth := barWidthFor(width, h.Bins(), 1)

	var below *plotter.BarChart
	for _, g := range h.Groups {
		bars, err := plotter.NewBarChart(values(h.Counts[g]), barWidth)
		if err != nil {
			return perrors.RenderFailed(PlotlyHistogram, err)
		}
		bars.Color = Color(g, h.Groups)
		bars.LineStyle.Width = 0
		if below != nil {
			bars.StackOn(below)
		}
		p.Add(bars)
		p.Legend.Add(g, bars)
		below = bars
	}
	p.NominalX(tickLabels(h)...)

	return writePlot(w, p, width, height, PlotlyHistogram)
}

// WriteSeabornHistogramPNG draws h as bars dodged side by side per species.
func WriteSeabornHistogramPNG(w io.Writer, h *Histogram, size Size) error {
	if h.Empty() || h.Count() == 0 {
		return perrors.EmptyChart(SeabornHistogram)
	}

	p := plot.New()
	p.Title.Text = "Species Seaborn Histogram"
	p.X.Label.Text = h.Attribute
	p.Y.Label.Text = "Measurement"
	p.Legend.Top = true

	width, height := size.lengths()
	n := len(h.Groups)
	barWidth := barWidthFor(width, h.Bins(), n)

	for i, g := range h.Groups {
		bars, err := plotter.NewBarChart(values(h.Counts[g]), barWidth)
		if err != nil {
			return perrors.RenderFailed(SeabornHistogram, err)
		}
		bars.Color = Color(g, h.Groups)
		bars.LineStyle.Width = 0
		bars.Offset = vg.Length(float64(i)-float64(n-1)/2) * barWidth
		p.Add(bars)
		p.Legend.Add(g, bars)
	}
	p.NominalX(tickLabels(h)...)

	return writePlot(w, p, width, height, SeabornHistogram)
}

func writePlot(w io.Writer, p *plot.Plot, width, height vg.Length, name string) error {
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return perrors.RenderFailed(name, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return perrors.RenderFailed(name, err)
	}
	return nil
}

// barWidthFor splits most of the canvas width across bins, then across
// the groups sharing a bin.
func barWidthFor(canvas vg.Length, bins, groups int) vg.Length {
	if groups < 1 {
		groups = 1
	}
	w := canvas * 0.7 / vg.Length(bins*groups)
	if w < 1 {
		w = 1
	}
	return w
}

func values(counts []int) plotter.Values {
	v := make(plotter.Values, len(counts))
	for i, c := range counts {
		v[i] = float64(c)
	}
	return v
}

// tickLabels labels every bin's lower edge, thinned so that at most about
// ten labels show.
func tickLabels(h *Histogram) []string {
	bins := h.Bins()
	step := (bins + 9) / 10
	labels := make([]string, bins)
	for i := range labels {
		if i%step == 0 {
			labels[i] = h.Label(i)
		}
	}
	return labels
}
