package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mberrors "github.com/samhoang/micbot/internal/errors"
	"github.com/samhoang/micbot/internal/hook"
)

var hookAddUse bool

var hookAddCmd = &cobra.Command{
	Use:   "add <name> <url>",
	Short: "Add a webhook",
	Long: `Add a named Slack incoming webhook.

Examples:
  micbot hook add team https://hooks.slack.com/services/T.../B.../...
  micbot hook add alerts <url> --use   # Also make it the active hook`,
	Args: cobra.ExactArgs(2),
	RunE: runHookAdd,
}

func init() {
	hookAddCmd.Flags().BoolVarP(&hookAddUse, "use", "u", false, "Make the new hook active")
	hookCmd.AddCommand(hookAddCmd)
}

func runHookAdd(cmd *cobra.Command, args []string) error {
	name, url := args[0], args[1]
	out := cmd.OutOrStdout()

	store, err := openStore()
	if err != nil {
		return err
	}

	// Explain rejections; AddHook itself only reports false
	if _, exists := store.GetHook(name); exists {
		return mberrors.NewHookError(name, "add", mberrors.ErrHookExists)
	}
	if err := hook.Validate(name, url); err != nil {
		return mberrors.NewHookError(name, "add", err)
	}

	added, err := store.AddHook(name, url)
	if err != nil {
		return err
	}
	if !added {
		return mberrors.NewHookError(name, "add", hook.ErrInvalidURL)
	}

	fmt.Fprintf(out, "Added hook: %s\n", name)

	if hookAddUse {
		h, _ := store.GetHook(name)
		if err := store.SetActiveHook(h); err != nil {
			return fmt.Errorf("failed to set active hook: %w", err)
		}
	}

	if active, ok := store.ActiveHook(); ok && active.Name == name {
		fmt.Fprintf(out, "Active hook: %s\n", name)
	}
	return nil
}
