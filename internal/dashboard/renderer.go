package dashboard

import (
	"github.com/cintel/penguins/internal/chart"
	"github.com/cintel/penguins/internal/dataset"
)

// Renderer consumes the dashboard's outputs. Each method is called by one
// effect when its inputs changed. Chart errors arrive next to the value so
// the widget can show them in place.
type Renderer interface {
	RenderDataTable(data *dataset.Dataset)
	RenderDataGrid(view *dataset.Dataset)
	RenderPlotlyHistogram(h *chart.Histogram, err error)
	RenderSeabornHistogram(h *chart.Histogram, err error)
	RenderScatter(s *chart.Scatter, err error)
}

// Output names, one per effect, in the order Flush runs them.
const (
	OutputDataTable        = "data_table"
	OutputDataGrid         = "data_grid"
	OutputPlotlyHistogram  = chart.PlotlyHistogram
	OutputSeabornHistogram = chart.SeabornHistogram
	OutputScatter          = chart.PlotlyScatter
)

// Outputs lists every output.
var Outputs = []string{
	OutputDataTable,
	OutputDataGrid,
	OutputPlotlyHistogram,
	OutputSeabornHistogram,
	OutputScatter,
}

// Discard is a Renderer that ignores everything.
type Discard struct{}

func (Discard) RenderDataTable(*dataset.Dataset)               {}
func (Discard) RenderDataGrid(*dataset.Dataset)                {}
func (Discard) RenderPlotlyHistogram(*chart.Histogram, error)  {}
func (Discard) RenderSeabornHistogram(*chart.Histogram, error) {}
func (Discard) RenderScatter(*chart.Scatter, error)            {}
