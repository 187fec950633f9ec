package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samhoang/micbot/internal/config"
	"github.com/samhoang/micbot/internal/output"
)

var hookListOutput string

var hookListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List all webhooks",
	Long: `List stored webhooks in insertion order and mark the active one.

The default format comes from [output] format in micbot.toml.

Examples:
  micbot hook list
  micbot hook list -o json`,
	Args: cobra.NoArgs,
	RunE: runHookList,
}

func init() {
	hookListCmd.Flags().StringVarP(&hookListOutput, "output", "o", "", "Output format: table, json or yaml")
	hookCmd.AddCommand(hookListCmd)
}

func runHookList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	store, err := openStore()
	if err != nil {
		return err
	}

	format := hookListOutput
	if format == "" {
		format = appConfig.Output.Format
	}

	entries := store.ListHooks()
	if len(entries) == 0 && format == config.FormatTable {
		fmt.Fprintln(out, "No hooks configured")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Add one with:")
		fmt.Fprintln(out, "  micbot hook add <name> <url>")
		return nil
	}

	return output.WriteHooks(out, entries, output.Options{
		Format: format,
		Color:  appConfig.Output.Color && stdoutIsTerminal(),
	})
}
