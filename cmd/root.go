package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/samhoang/micbot/internal/config"
	"github.com/samhoang/micbot/internal/db"
)

var Version = "dev"

var (
	verbose bool

	// set by setup before any subcommand runs
	appPaths  *config.Paths
	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "micbot",
	Short: "Manage the Slack webhooks micbot posts to",
	Long: `micbot keeps a small list of named Slack incoming webhooks in
~/.micbot/db.json (or $MICBOT_DIR) and remembers which one is active.

Examples:
  micbot hook add team https://hooks.slack.com/services/T.../B.../...
  micbot hook list
  micbot use team`,
	Version:           Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func setup(cmd *cobra.Command, args []string) error {
	paths, err := config.ResolvePaths()
	if err != nil {
		return fmt.Errorf("resolve micbot directory: %w", err)
	}

	cfg, err := config.LoadConfig(paths.Dir)
	if err != nil {
		return err
	}

	level, _ := config.ParseLevel(cfg.Log.Level)
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	appPaths = paths
	appConfig = cfg
	return nil
}

// openStore loads the hook database from the resolved directory
func openStore() (*db.Store, error) {
	return db.Open(appPaths.Dir)
}

// stdoutIsTerminal reports whether styled output makes sense
func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log debug output to stderr")
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}
