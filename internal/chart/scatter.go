package chart

import (
	"math"

	"github.com/cintel/penguins/internal/dataset"
	perrors "github.com/cintel/penguins/internal/errors"
)

// Default scatter axes.
const (
	ScatterX = dataset.ColBodyMass
	ScatterY = dataset.ColBillLength
)

// Point is one scatter mark.
type Point struct {
	X, Y float64
}

// Scatter holds points grouped by species.
type Scatter struct {
	XAttr, YAttr string
	Groups       []string
	Points       map[string][]Point
	Missing      int
}

// NewScatter collects (x, y) for every row of view, skipping rows with a
// missing coordinate. Rows without a species are left out, matching
// NewHistogram.
func NewScatter(view *dataset.Dataset, x, y string) (*Scatter, error) {
	for _, attr := range []string{x, y} {
		if !dataset.IsNumericAttribute(attr) {
			return nil, perrors.UnknownAttribute(attr, dataset.NumericAttributes)
		}
	}

	s := &Scatter{
		XAttr:  x,
		YAttr:  y,
		Groups: view.Species(),
		Points: make(map[string][]Point),
	}
	for _, p := range view.Rows() {
		if p.Species == "" {
			continue
		}
		xv, _ := p.Measure(x)
		yv, _ := p.Measure(y)
		if math.IsNaN(xv) || math.IsNaN(yv) {
			s.Missing++
			continue
		}
		s.Points[p.Species] = append(s.Points[p.Species], Point{X: xv, Y: yv})
	}
	return s, nil
}

// Len returns the number of plotted points.
func (s *Scatter) Len() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, pts := range s.Points {
		n += len(pts)
	}
	return n
}

// Empty reports whether there is nothing to plot.
func (s *Scatter) Empty() bool {
	return s.Len() == 0
}

// Bounds returns the data extent. A degenerate axis is widened by 0.5 on
// each side.
func (s *Scatter) Bounds() (minX, maxX, minY, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, pts := range s.Points {
		for _, p := range pts {
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if minX == maxX {
		minX, maxX = minX-0.5, maxX+0.5
	}
	if minY == maxY {
		minY, maxY = minY-0.5, maxY+0.5
	}
	return minX, maxX, minY, maxY
}
