package dashboard

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/cintel/penguins/internal/chart"
	"github.com/cintel/penguins/internal/dataset"
	perrors "github.com/cintel/penguins/internal/errors"
	"github.com/cintel/penguins/internal/logging"
)

// Export file names.
const (
	DataGridFile         = "data_grid.csv"
	PlotlyHistogramFile  = chart.PlotlyHistogram + ".png"
	SeabornHistogramFile = chart.SeabornHistogram + ".png"
	ScatterFile          = chart.PlotlyScatter + ".png"
)

// FileRenderer writes each output it receives into Dir. The full data
// table is not written; it never changes.
type FileRenderer struct {
	Dir  string
	Size chart.Size

	written []string
	errs    []error
}

// NewFileRenderer creates a renderer writing into dir.
func NewFileRenderer(dir string, size chart.Size) *FileRenderer {
	return &FileRenderer{Dir: dir, Size: size}
}

// Written returns the paths written so far.
func (r *FileRenderer) Written() []string {
	return r.written
}

// Err joins every failure seen so far.
func (r *FileRenderer) Err() error {
	return errors.Join(r.errs...)
}

func (r *FileRenderer) RenderDataTable(*dataset.Dataset) {}

func (r *FileRenderer) RenderDataGrid(view *dataset.Dataset) {
	r.write(DataGridFile, func(w io.Writer) error {
		return view.WriteCSV(w)
	})
}

func (r *FileRenderer) RenderPlotlyHistogram(h *chart.Histogram, err error) {
	if err != nil {
		r.errs = append(r.errs, err)
		return
	}
	r.write(PlotlyHistogramFile, func(w io.Writer) error {
		return chart.WritePlotlyHistogramPNG(w, h, r.Size)
	})
}

func (r *FileRenderer) RenderSeabornHistogram(h *chart.Histogram, err error) {
	if err != nil {
		r.errs = append(r.errs, err)
		return
	}
	r.write(SeabornHistogramFile, func(w io.Writer) error {
		return chart.WriteSeabornHistogramPNG(w, h, r.Size)
	})
}

func (r *FileRenderer) RenderScatter(s *chart.Scatter, err error) {
	if err != nil {
		r.errs = append(r.errs, err)
		return
	}
	r.write(ScatterFile, func(w io.Writer) error {
		return chart.WriteScatterPNG(w, s, r.Size)
	})
}

// write renders into a temp file and renames it, so a failed render never
// leaves a truncated file behind.
func (r *FileRenderer) write(name string, render func(io.Writer) error) {
	if err := os.MkdirAll(r.Dir, 0755); err != nil {
		r.errs = append(r.errs, perrors.Wrap(err, perrors.ErrRender, "failed to create export directory"))
		return
	}

	path := filepath.Join(r.Dir, name)
	tmp, err := os.CreateTemp(r.Dir, "."+name+".*")
	if err != nil {
		r.errs = append(r.errs, perrors.RenderFailed(name, err))
		return
	}
	defer os.Remove(tmp.Name())

	if err := render(tmp); err != nil {
		tmp.Close()
		r.errs = append(r.errs, err)
		logging.Warn("export skipped", "file", name, "error", err)
		return
	}
	if err := tmp.Close(); err != nil {
		r.errs = append(r.errs, perrors.RenderFailed(name, err))
		return
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		r.errs = append(r.errs, perrors.RenderFailed(name, err))
		return
	}

	logging.Info("exported", "file", path)
	r.written = append(r.written, path)
}
