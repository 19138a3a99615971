// Package chart turns a derived view into chart models and renders them.
//
// The models (Histogram, Scatter) are plain data shared by the terminal
// widgets and the PNG writers, so both draw the same bins and points.
package chart

import (
	"fmt"
	"math"

	"github.com/cintel/penguins/internal/dataset"
	perrors "github.com/cintel/penguins/internal/errors"
)

// MaxBins is the largest bin count a histogram accepts.
const MaxBins = 500

// Histogram holds per-species counts over equal-width bins.
type Histogram struct {
	// Attribute is the measured column.
	Attribute string
	// Edges has len(bins)+1 entries. The last bin includes its upper edge.
	Edges []float64
	// Groups lists the species present in the view, in dataset order.
	Groups []string
	// Counts maps each group to one count per bin.
	Counts map[string][]int
	// Missing counts rows skipped for a missing measurement.
	Missing int
}

// NewHistogram bins the view's values of attr into bins equal-width bins
// spanning [min, max]. Rows with a missing value are counted in Missing.
// A view with no values yields an empty histogram, not an error.
func NewHistogram(view *dataset.Dataset, attr string, bins int) (*Histogram, error) {
	if !dataset.IsNumericAttribute(attr) {
		return nil, perrors.UnknownAttribute(attr, dataset.NumericAttributes)
	}
	if bins < 1 || bins > MaxBins {
		return nil, perrors.New(perrors.ErrConfig,
			fmt.Sprintf("bin count must be between 1 and %d, got %d", MaxBins, bins))
	}

	h := &Histogram{
		Attribute: attr,
		Groups:    view.Species(),
		Counts:    make(map[string][]int),
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range view.Rows() {
		v, _ := p.Measure(attr)
		if math.IsNaN(v) {
			h.Missing++
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(lo, 1) {
		return h, nil
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	width := (hi - lo) / float64(bins)
	h.Edges = make([]float64, bins+1)
	for i := range h.Edges {
		h.Edges[i] = lo + float64(i)*width
	}
	h.Edges[bins] = hi

	for _, g := range h.Groups {
		h.Counts[g] = make([]int, bins)
	}
	for _, p := range view.Rows() {
		v, _ := p.Measure(attr)
		if math.IsNaN(v) {
			continue
		}
		counts, ok := h.Counts[p.Species]
		if !ok {
			// Rows without a species have no bar to land in.
			continue
		}
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return h, nil
}

// Empty reports whether the histogram has no bins to draw.
func (h *Histogram) Empty() bool {
	return h == nil || len(h.Edges) == 0
}

// Bins returns the number of bins.
func (h *Histogram) Bins() int {
	if h.Empty() {
		return 0
	}
	return len(h.Edges) - 1
}

// Total returns the count of bin i summed over groups.
func (h *Histogram) Total(i int) int {
	total := 0
	for _, g := range h.Groups {
		total += h.Counts[g][i]
	}
	return total
}

// MaxTotal is the tallest stacked bar.
func (h *Histogram) MaxTotal() int {
	most := 0
	for i := 0; i < h.Bins(); i++ {
		if t := h.Total(i); t > most {
			most = t
		}
	}
	return most
}

// MaxCount is the tallest single-group bar.
func (h *Histogram) MaxCount() int {
	most := 0
	for _, g := range h.Groups {
		for _, c := range h.Counts[g] {
			if c > most {
				most = c
			}
		}
	}
	return most
}

// Count returns the number of binned values.
func (h *Histogram) Count() int {
	n := 0
	for i := 0; i < h.Bins(); i++ {
		n += h.Total(i)
	}
	return n
}

// Label formats the lower edge of bin i.
func (h *Histogram) Label(i int) string {
	return formatEdge(h.Edges[i])
}

func formatEdge(v float64) string {
	if math.Abs(v) >= 100 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
