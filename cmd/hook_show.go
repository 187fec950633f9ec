package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mberrors "github.com/samhoang/micbot/internal/errors"
	"github.com/samhoang/micbot/internal/hook"
)

var hookShowURLOnly bool

var hookShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a webhook (the active one by default)",
	Long: `Show a stored webhook. Without a name, the active hook is shown.

Examples:
  micbot hook show
  micbot hook show team --url   # Print only the URL`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHookShow,
}

func init() {
	hookShowCmd.Flags().BoolVar(&hookShowURLOnly, "url", false, "Print only the URL")
	hookCmd.AddCommand(hookShowCmd)
}

func runHookShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	store, err := openStore()
	if err != nil {
		return err
	}

	active, hasActive := store.ActiveHook()

	var h hook.Hook
	if len(args) == 0 {
		if !hasActive {
			return mberrors.ErrNoActiveHook
		}
		h = active
	} else {
		var ok bool
		h, ok = store.GetHook(args[0])
		if !ok {
			return mberrors.NewHookError(args[0], "show", mberrors.ErrHookNotFound)
		}
	}

	if hookShowURLOnly {
		fmt.Fprintln(out, h.URL)
		return nil
	}

	fmt.Fprintf(out, "Name:   %s\n", h.Name)
	fmt.Fprintf(out, "URL:    %s\n", h.URL)
	fmt.Fprintf(out, "Active: %t\n", hasActive && active.Same(h))
	return nil
}
