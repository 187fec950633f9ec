package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mberrors "github.com/samhoang/micbot/internal/errors"
)

var hookRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm", "delete"},
	Short:   "Remove a webhook",
	Long: `Remove a stored webhook by name.

If the removed hook was active, the first remaining hook becomes active.

Examples:
  micbot hook remove team`,
	Args: cobra.ExactArgs(1),
	RunE: runHookRemove,
}

func init() {
	hookCmd.AddCommand(hookRemoveCmd)
}

func runHookRemove(cmd *cobra.Command, args []string) error {
	name := args[0]
	out := cmd.OutOrStdout()

	store, err := openStore()
	if err != nil {
		return err
	}

	wasActive := false
	if active, ok := store.ActiveHook(); ok && active.Name == name {
		wasActive = true
	}

	removed, err := store.RemoveHook(name)
	if err != nil {
		return err
	}
	if !removed {
		return mberrors.NewHookError(name, "remove", mberrors.ErrHookNotFound)
	}

	fmt.Fprintf(out, "Removed hook: %s\n", name)

	if wasActive {
		if active, ok := store.ActiveHook(); ok {
			fmt.Fprintf(out, "Active hook: %s\n", active.Name)
		} else {
			fmt.Fprintln(out, "No active hook")
		}
	}
	return nil
}
