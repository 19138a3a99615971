// Package dashboard wires the penguin controls, the filtered view and the
// five outputs into one reactive graph.
//
// Each output reruns only when something it reads changed: a new seaborn
// bin count redraws the seaborn histogram alone, while a new species set
// redraws the data grid and all three charts.
package dashboard

import (
	"fmt"
	"slices"

	"github.com/cintel/penguins/internal/chart"
	"github.com/cintel/penguins/internal/dataset"
	perrors "github.com/cintel/penguins/internal/errors"
	"github.com/cintel/penguins/internal/logging"
	"github.com/cintel/penguins/internal/reactive"
)

// Dashboard owns the reactive graph for one dataset.
type Dashboard struct {
	data     *dataset.Dataset
	renderer Renderer
	graph    *reactive.Graph

	attribute   *reactive.Input[string]
	plotlyBins  *reactive.Input[int]
	seabornBins *reactive.Input[int]
	species     *reactive.Input[[]string]
	islands     *reactive.Input[[]string]

	filtered         *reactive.Calc[*dataset.Dataset]
	plotlyHistogram  *reactive.Calc[*chart.Histogram]
	seabornHistogram *reactive.Calc[*chart.Histogram]
	scatter          *reactive.Calc[*chart.Scatter]

	effects map[string]*reactive.Effect
}

// New builds the graph over data, starting from sel. Nothing renders
// until the first Flush.
func New(data *dataset.Dataset, sel Selection, renderer Renderer) (*Dashboard, error) {
	if renderer == nil {
		renderer = Discard{}
	}
	if err := validate(&sel); err != nil {
		return nil, err
	}

	g := reactive.NewGraph("dashboard")
	d := &Dashboard{
		data:     data,
		renderer: renderer,
		graph:    g,
		effects:  make(map[string]*reactive.Effect),
	}

	d.attribute = reactive.NewInput(g, ControlAttribute, sel.Attribute, reactive.Equal[string])
	d.plotlyBins = reactive.NewInput(g, ControlPlotlyBins, sel.PlotlyBins, reactive.Equal[int])
	d.seabornBins = reactive.NewInput(g, ControlSeabornBins, sel.SeabornBins, reactive.Equal[int])
	d.species = reactive.NewInput(g, ControlSpecies, slices.Clone(sel.Species), reactive.EqualSets)
	d.islands = reactive.NewInput(g, ControlIslands, slices.Clone(sel.Islands), reactive.EqualSets)

	d.filtered = reactive.NewCalc(g, "filtered", func() (*dataset.Dataset, error) {
		return dataset.Filter(d.data, d.species.Get(), d.islands.Get()), nil
	}, d.species, d.islands)

	d.plotlyHistogram = reactive.NewCalc(g, "plotly_histogram_data", func() (*chart.Histogram, error) {
		view, _ := d.filtered.Get()
		return chart.NewHistogram(view, d.attribute.Get(), d.plotlyBins.Get())
	}, d.filtered, d.attribute, d.plotlyBins)

	d.seabornHistogram = reactive.NewCalc(g, "seaborn_histogram_data", func() (*chart.Histogram, error) {
		view, _ := d.filtered.Get()
		return chart.NewHistogram(view, d.attribute.Get(), d.seabornBins.Get())
	}, d.filtered, d.attribute, d.seabornBins)

	d.scatter = reactive.NewCalc(g, "scatter_data", func() (*chart.Scatter, error) {
		view, _ := d.filtered.Get()
		return chart.NewScatter(view, chart.ScatterX, chart.ScatterY)
	}, d.filtered)

	d.effect(OutputDataTable, func() {
		d.renderer.RenderDataTable(d.data)
	})
	d.effect(OutputDataGrid, func() {
		view, _ := d.filtered.Get()
		d.renderer.RenderDataGrid(view)
	}, d.filtered)
	d.effect(OutputPlotlyHistogram, func() {
		d.renderer.RenderPlotlyHistogram(d.plotlyHistogram.Get())
	}, d.plotlyHistogram)
	d.effect(OutputSeabornHistogram, func() {
		d.renderer.RenderSeabornHistogram(d.seabornHistogram.Get())
	}, d.seabornHistogram)
	d.effect(OutputScatter, func() {
		d.renderer.RenderScatter(d.scatter.Get())
	}, d.scatter)

	return d, nil
}

func (d *Dashboard) effect(name string, fn func(), deps ...reactive.Node) {
	d.effects[name] = reactive.NewEffect(d.graph, name, fn, deps...)
}

// validate rejects what the controls could never produce and clamps the
// slider value into range.
func validate(sel *Selection) error {
	if !slices.Contains(Attributes, sel.Attribute) {
		return perrors.UnknownAttribute(sel.Attribute, Attributes)
	}
	if err := checkPlotlyBins(sel.PlotlyBins); err != nil {
		return err
	}
	sel.SeabornBins = ClampSeabornBins(sel.SeabornBins)
	return nil
}

func checkPlotlyBins(n int) error {
	if n < 1 || n > MaxPlotlyBins {
		return perrors.ConfigValidationError("controls.plotly_bins",
			fmt.Sprintf("plotly bin count must be between 1 and %d, got %d", MaxPlotlyBins, n), nil)
	}
	return nil
}

// SetLogger routes recompute tracing to l.
func (d *Dashboard) SetLogger(l *logging.Logger) {
	d.graph.SetLogger(l)
}

// Data returns the full dataset.
func (d *Dashboard) Data() *dataset.Dataset {
	return d.data
}

// Selection returns a copy of the current control values.
func (d *Dashboard) Selection() Selection {
	return Selection{
		Attribute:   d.attribute.Get(),
		PlotlyBins:  d.plotlyBins.Get(),
		SeabornBins: d.seabornBins.Get(),
		Species:     slices.Clone(d.species.Get()),
		Islands:     slices.Clone(d.islands.Get()),
	}
}

// SetAttribute selects the histogram attribute.
func (d *Dashboard) SetAttribute(attr string) error {
	if !slices.Contains(Attributes, attr) {
		return perrors.UnknownAttribute(attr, Attributes)
	}
	d.attribute.Set(attr)
	return nil
}

// SetPlotlyBins sets the plotly histogram bin count.
func (d *Dashboard) SetPlotlyBins(n int) error {
	if err := checkPlotlyBins(n); err != nil {
		return err
	}
	d.plotlyBins.Set(n)
	return nil
}

// SetSeabornBins sets the seaborn bin count, clamped to the slider range.
// It returns the value actually stored.
func (d *Dashboard) SetSeabornBins(n int) int {
	n = ClampSeabornBins(n)
	d.seabornBins.Set(n)
	return n
}

// SetSpecies replaces the selected species set.
func (d *Dashboard) SetSpecies(species []string) {
	d.species.Set(slices.Clone(species))
}

// SetIslands replaces the selected island set.
func (d *Dashboard) SetIslands(islands []string) {
	d.islands.Set(slices.Clone(islands))
}

// Apply sets every control from sel. Nothing changes if sel is invalid.
func (d *Dashboard) Apply(sel Selection) error {
	if err := validate(&sel); err != nil {
		return err
	}
	d.attribute.Set(sel.Attribute)
	d.plotlyBins.Set(sel.PlotlyBins)
	d.seabornBins.Set(sel.SeabornBins)
	d.SetSpecies(sel.Species)
	d.SetIslands(sel.Islands)
	return nil
}

// Flush re-renders every output whose inputs changed and returns their
// names in render order.
func (d *Dashboard) Flush() []string {
	ran := d.graph.Flush()
	if len(ran) > 0 {
		logging.Debug("dashboard flushed", "outputs", ran)
	}
	return ran
}

// Pending returns the outputs the next Flush would render.
func (d *Dashboard) Pending() []string {
	return d.graph.Pending()
}

// Filtered returns the current derived view.
func (d *Dashboard) Filtered() *dataset.Dataset {
	view, _ := d.filtered.Get()
	return view
}

// PlotlyHistogram returns the current stacked histogram model.
func (d *Dashboard) PlotlyHistogram() (*chart.Histogram, error) {
	return d.plotlyHistogram.Get()
}

// SeabornHistogram returns the current dodged histogram model.
func (d *Dashboard) SeabornHistogram() (*chart.Histogram, error) {
	return d.seabornHistogram.Get()
}

// Scatter returns the current scatter model.
func (d *Dashboard) Scatter() (*chart.Scatter, error) {
	return d.scatter.Get()
}

// Runs returns how many times an output has rendered.
func (d *Dashboard) Runs(output string) int {
	if e, ok := d.effects[output]; ok {
		return e.Runs()
	}
	return 0
}
