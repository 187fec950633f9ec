package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samhoang/micbot/internal/config"
)

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate default micbot.toml configuration",
	Long: `Generate a default micbot.toml configuration file.

Example micbot.toml:

  [output]
  format = "table"   # table, json or yaml
  color = true

  [log]
  level = "warn"     # debug, info, warn or error`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configPath := appPaths.ConfigPath()

	// Check if already exists
	if _, err := os.Stat(configPath); err == nil {
		fmt.Fprintf(out, "Config already exists: %s\n", configPath)
		fmt.Fprintln(out, "Edit it directly or delete to regenerate.")
		return nil
	}

	cfg := config.DefaultConfig()
	if err := cfg.Save(appPaths.Dir); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(out, "Created: %s\n", configPath)
	return nil
}
