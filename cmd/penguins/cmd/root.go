// Package cmd provides the CLI commands for penguins.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cintel/penguins/internal/config"
	perrors "github.com/cintel/penguins/internal/errors"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "penguins",
	Short: "Palmer Penguins dashboard",
	Long: `Penguins is a terminal dashboard for the Palmer Penguins dataset.

It shows the data as a table and a filtered grid, plus two histograms and
a scatterplot that follow the sidebar controls. The same charts can be
exported as PNG files, and the filtered rows printed as a table, CSV or
JSON.`,
	// With no subcommand, penguins starts the dashboard.
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	addGlobalFlags(rootCmd)
	rootCmd.Flags().BoolP("watch", "w", false, "Re-apply config file edits while the dashboard runs")
}

// addGlobalFlags registers the flags every subcommand understands.
func addGlobalFlags(c *cobra.Command) {
	c.PersistentFlags().StringP("config", "c", "", "Path to config file (default: "+config.DefaultConfigPath+")")
	c.PersistentFlags().StringP("data", "d", "", "Path to a penguins CSV (default: bundled dataset)")
	c.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// runRoot is called when penguins is invoked with no subcommand.
func runRoot(cmd *cobra.Command, args []string) error {
	return runDashboard(cmd, args)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("penguins {{.Version}}\n")

	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

// printError writes err to w, using the long form for penguin errors.
// Joined errors are printed one by one.
func printError(w io.Writer, err error) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			printError(w, e)
		}
		return
	}
	if pe, ok := perrors.As(err); ok {
		fmt.Fprint(w, pe.Format())
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}
