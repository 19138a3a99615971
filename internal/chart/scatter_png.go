package chart

import (
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	perrors "github.com/cintel/penguins/internal/errors"
)

// pointStyle renders points only, without connecting lines.
func pointStyle(species string, groups []string) gochart.Style {
	c := Color(species, groups)
	return gochart.Style{
		StrokeWidth: gochart.Disabled,
		DotWidth:    4,
		DotColor:    drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A},
	}
}

// WriteScatterPNG draws s with one dot series per species.
func WriteScatterPNG(w io.Writer, s *Scatter, size Size) error {
	if s.Empty() {
		return perrors.EmptyChart(PlotlyScatter)
	}
	if size.Width <= 0 || size.Height <= 0 {
		size = DefaultSize
	}

	var series []gochart.Series
	for _, g := range s.Groups {
		pts := s.Points[g]
		if len(pts) == 0 {
			continue
		}
		xs := make([]float64, len(pts))
		ys := make([]float64, len(pts))
		for i, p := range pts {
			xs[i], ys[i] = p.X, p.Y
		}
		if len(pts) == 1 {
			// go-chart needs two values to size a series.
			xs = append(xs, xs[0])
			ys = append(ys, ys[0])
		}
		series = append(series, gochart.ContinuousSeries{
			Name:    g,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(g, s.Groups),
		})
	}

	minX, maxX, minY, maxY := s.Bounds()
	ch := gochart.Chart{
		Title:  "Plotly Scatterplot",
		Width:  size.Width,
		Height: size.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16},
		},
		XAxis: gochart.XAxis{
			Name:  s.XAttr,
			Range: &gochart.ContinuousRange{Min: minX, Max: maxX},
		},
		YAxis: gochart.YAxis{
			Name:  s.YAttr,
			Range: &gochart.ContinuousRange{Min: minY, Max: maxY},
		},
		Series: series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	if err := ch.Render(gochart.PNG, w); err != nil {
		return perrors.RenderFailed(PlotlyScatter, err)
	}
	return nil
}
