package dashboard

import (
	"slices"

	"github.com/cintel/penguins/internal/chart"
	"github.com/cintel/penguins/internal/dataset"
)

// Control names as they appear in the sidebar and in logs.
const (
	ControlAttribute   = "selected_attribute"
	ControlPlotlyBins  = "plotly_bin_count"
	ControlSeabornBins = "seaborn_bin_count"
	ControlSpecies     = "selected_species_list"
	ControlIslands     = "selected_island_list"
)

// MaxPlotlyBins caps the plotly bin count.
const MaxPlotlyBins = chart.MaxBins

// Seaborn bin slider range.
const (
	MinSeabornBins = 1
	MaxSeabornBins = 40
)

// Attributes are the numeric columns the attribute picker offers.
var Attributes = dataset.NumericAttributes

// AllSpecies and AllIslands are the choices of the checkbox groups.
var (
	AllSpecies = []string{"Adelie", "Gentoo", "Chinstrap"}
	AllIslands = []string{"Torgersen", "Biscoe", "Dream"}
)

// Selection is the current value of every control.
type Selection struct {
	Attribute   string
	PlotlyBins  int
	SeabornBins int
	Species     []string
	Islands     []string
}

// DefaultSelection is the state the dashboard opens with.
func DefaultSelection() Selection {
	return Selection{
		Attribute:   dataset.ColBillLength,
		PlotlyBins:  40,
		SeabornBins: 20,
		Species:     []string{"Gentoo", "Chinstrap"},
		Islands:     slices.Clone(AllIslands),
	}
}

// Clone returns a deep copy.
func (s Selection) Clone() Selection {
	s.Species = slices.Clone(s.Species)
	s.Islands = slices.Clone(s.Islands)
	return s
}

// ClampSeabornBins limits n to the slider range.
func ClampSeabornBins(n int) int {
	return max(MinSeabornBins, min(n, MaxSeabornBins))
}
