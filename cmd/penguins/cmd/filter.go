package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/cintel/penguins/internal/dataset"
	perrors "github.com/cintel/penguins/internal/errors"
	"github.com/cintel/penguins/internal/logging"
	"github.com/cintel/penguins/internal/tui/styles"
)

// Output formats for the filter command.
const (
	formatTable = "table"
	formatCSV   = "csv"
	formatJSON  = "json"
)

var outputFormats = []string{formatTable, formatCSV, formatJSON}

// filterCmd represents the filter command.
var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Print the rows matching a species and island selection",
	Long: `Print the rows matching a species and island selection.

This is the data grid of the dashboard without the terminal UI. The
selection defaults to the controls section of the config file; --species
and --island replace it. An empty flag selects nothing.

Examples:
  penguins filter                                  # Config selection as a table
  penguins filter --species Adelie --island Dream  # One species on one island
  penguins filter --species Gentoo,Chinstrap --format csv > subset.csv
  penguins filter --format json`,
	Args: cobra.NoArgs,
	RunE: runFilter,
}

func init() {
	rootCmd.AddCommand(filterCmd)
	addSelectionFlags(filterCmd)
	filterCmd.Flags().StringP("format", "f", formatTable, "Output format: "+strings.Join(outputFormats, ", "))
}

// runFilter is the main entry point for the filter command.
func runFilter(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if !slices.Contains(outputFormats, format) {
		return perrors.WithSuggestion(perrors.ErrConfig,
			fmt.Sprintf("unknown output format %q", format),
			"Use one of: "+strings.Join(outputFormats, ", ")).
			WithDetails("flag", "--format")
	}

	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer initLogging(cmd, cfg, true)()

	data, err := loadDataset(cmd, cfg)
	if err != nil {
		return err
	}

	sel := cfg.Selection()
	applySelectionFlags(cmd, &sel)
	view := data.Filter(sel.Species, sel.Islands)
	logging.Debug("filtered", "species", sel.Species, "islands", sel.Islands, "rows", view.Len())

	out := cmd.OutOrStdout()
	switch format {
	case formatCSV:
		return view.WriteCSV(out)
	case formatJSON:
		return view.WriteJSON(out)
	default:
		return writeTable(out, view, data.Len())
	}
}

// writeTable renders view as a bordered table followed by a row count.
func writeTable(w io.Writer, view *dataset.Dataset, total int) error {
	cell := lipgloss.NewStyle().Padding(0, 1)
	header := styles.CardTitleStyle.Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.RuleStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Headers(dataset.Columns...).
		Rows(view.Records()...)

	_, err := fmt.Fprintf(w, "%s\n%d of %d rows\n", t.Render(), view.Len(), total)
	return err
}
