package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cintel/penguins/internal/logging"
	"github.com/cintel/penguins/internal/tui"
)

// dashboardCmd represents the dashboard command.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Start the interactive dashboard",
	Long: `Start the interactive dashboard.

The sidebar holds the attribute picker, the two bin counts and the species
and island checkboxes. Tables are on page 1 and charts on page 2.
Press ? inside the dashboard for the full key list.

With --watch, saving the config file re-applies its controls section to
the running dashboard.

Examples:
  penguins                       # Start with .penguins/config.yaml or defaults
  penguins dashboard --watch     # Follow config edits
  penguins --data penguins.csv   # Use a full palmerpenguins CSV`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().BoolP("watch", "w", false, "Re-apply config file edits while the dashboard runs")
}

// runDashboard is the main entry point for the dashboard command.
func runDashboard(cmd *cobra.Command, args []string) error {
	watch, _ := cmd.Flags().GetBool("watch")

	cfg, path, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// The TUI owns the terminal, so logs only go to the file.
	defer initLogging(cmd, cfg, false)()

	data, err := loadDataset(cmd, cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	opts := tui.Options{
		Title:  cfg.Title,
		Logger: logging.Global(),
	}
	if watch {
		opts.WatchPath = path
	}
	return tui.Run(ctx, data, cfg.Selection(), opts)
}
