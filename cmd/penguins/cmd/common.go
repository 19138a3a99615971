package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cintel/penguins/internal/config"
	"github.com/cintel/penguins/internal/dashboard"
	"github.com/cintel/penguins/internal/dataset"
	"github.com/cintel/penguins/internal/logging"
)

// loadConfig loads the file named by --config, or the default path when
// the flag is empty. It also returns the path that was used.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		path = config.DefaultConfigPath
	}
	return cfg, path, nil
}

// loadDataset opens --data, then dataset.path, then the bundled CSV.
func loadDataset(cmd *cobra.Command, cfg *config.Config) (*dataset.Dataset, error) {
	path, _ := cmd.Flags().GetString("data")
	if path == "" {
		path = cfg.Dataset.Path
	}
	if path == "" {
		return dataset.Bundled()
	}
	return dataset.Open(path)
}

// initLogging starts the global logger and returns the function that
// closes it. A logger that fails to start is reported and skipped.
func initLogging(cmd *cobra.Command, cfg *config.Config, console bool) func() {
	verbose, _ := cmd.Flags().GetBool("verbose")

	logConfig := cfg.LoggingConfig()
	if verbose {
		logConfig.Level = logging.LevelDebug
	}
	logConfig.Console = console && verbose

	if err := logging.InitGlobal(logConfig); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
		return func() {}
	}
	logging.Info("penguins starting", "version", Version, "command", cmd.Name(), "verbose", verbose)
	return func() { _ = logging.CloseGlobal() }
}

// addSelectionFlags registers --species and --island on c.
func addSelectionFlags(c *cobra.Command) {
	c.Flags().StringSliceP("species", "s", nil, "Species to include, comma separated (default: from config)")
	c.Flags().StringSliceP("island", "i", nil, "Islands to include, comma separated (default: from config)")
}

// applySelectionFlags overrides sel with the selection flags the user set.
// An explicitly empty flag selects nothing.
func applySelectionFlags(cmd *cobra.Command, sel *dashboard.Selection) {
	if cmd.Flags().Changed("species") {
		sel.Species, _ = cmd.Flags().GetStringSlice("species")
	}
	if cmd.Flags().Changed("island") {
		sel.Islands, _ = cmd.Flags().GetStringSlice("island")
	}
}
