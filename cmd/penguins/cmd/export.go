package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cintel/penguins/internal/chart"
	"github.com/cintel/penguins/internal/dashboard"
	"github.com/cintel/penguins/internal/logging"
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the dashboard charts as PNG files",
	Long: `Write the dashboard charts as PNG files.

The dashboard is built once from the selection and flushed into a
directory: the filtered data grid as CSV, then the two histograms and the
scatterplot as PNG. Flags override the config file.

A chart with nothing to draw is reported and skipped; the other files are
still written.

Examples:
  penguins export                                   # Config selection into export/
  penguins export --out plots --attribute body_mass_g
  penguins export --species Adelie --plotly-bins 10 --seaborn-bins 5
  penguins export --width 1200 --height 800`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addSelectionFlags(exportCmd)

	exportCmd.Flags().StringP("out", "o", "", "Directory for the exported files (default: from config)")
	exportCmd.Flags().StringP("attribute", "a", "", "Histogram attribute (default: from config)")
	exportCmd.Flags().Int("plotly-bins", 0, "Bin count of the stacked histogram (default: from config)")
	exportCmd.Flags().Int("seaborn-bins", 0, "Bin count of the dodged histogram, clamped to 1-40 (default: from config)")
	exportCmd.Flags().Int("width", 0, "PNG width in pixels (default: from config)")
	exportCmd.Flags().Int("height", 0, "PNG height in pixels (default: from config)")
}

// runExport is the main entry point for the export command.
func runExport(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer initLogging(cmd, cfg, true)()

	data, err := loadDataset(cmd, cfg)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	sel := cfg.Selection()
	applySelectionFlags(cmd, &sel)
	if flags.Changed("attribute") {
		sel.Attribute, _ = flags.GetString("attribute")
	}
	if flags.Changed("plotly-bins") {
		sel.PlotlyBins, _ = flags.GetInt("plotly-bins")
	}
	if flags.Changed("seaborn-bins") {
		sel.SeabornBins, _ = flags.GetInt("seaborn-bins")
	}

	dir := cfg.Export.Dir
	if flags.Changed("out") {
		dir, _ = flags.GetString("out")
	}
	size := chart.Size{Width: cfg.Export.Width, Height: cfg.Export.Height}
	if flags.Changed("width") {
		size.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("height") {
		size.Height, _ = flags.GetInt("height")
	}

	renderer := dashboard.NewFileRenderer(dir, size)
	d, err := dashboard.New(data, sel, renderer)
	if err != nil {
		return err
	}
	d.SetLogger(logging.Global())

	ran := d.Flush()
	logging.Info("export finished", "dir", dir, "outputs", ran, "written", len(renderer.Written()))

	for _, path := range renderer.Written() {
		cmd.Printf("Wrote %s\n", path)
	}
	return renderer.Err()
}
