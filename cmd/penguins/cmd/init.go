package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cintel/penguins/internal/config"
	perrors "github.com/cintel/penguins/internal/errors"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a default config file.

The file holds the initial sidebar controls, the dataset path, the export
size and the log settings. It is written to .penguins/config.yaml, or to
the path given with --config.

Use --force to overwrite an existing file.

Examples:
  penguins init                      # Create .penguins/config.yaml
  penguins init --force              # Reset it to the defaults
  penguins init --config demo.yaml   # Write somewhere else`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolP("force", "f", false, "Overwrite existing configuration")
}

// runInit is the main entry point for the init command.
func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath
	}

	if _, err := os.Stat(path); err == nil && !force {
		return perrors.WithSuggestion(perrors.ErrConfig,
			"config file already exists: "+path,
			"Use 'penguins init --force' to overwrite it").
			WithDetails("path", path)
	}

	if err := config.Save(config.NewConfig(), path); err != nil {
		return err
	}

	cmd.Printf("Created %s\n", path)
	cmd.Println("")
	cmd.Println("Edit it to change the initial controls, dataset or export size.")
	cmd.Println("Run 'penguins' to start the dashboard.")
	return nil
}
