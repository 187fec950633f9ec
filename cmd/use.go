package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	mberrors "github.com/samhoang/micbot/internal/errors"
	"github.com/samhoang/micbot/internal/picker"
)

var useShowFlag bool

var useCmd = &cobra.Command{
	Use:   "use [hook]",
	Short: "Set or show the active webhook",
	Long: `Set which stored webhook micbot posts to, or show the current one.

Without a name on an interactive terminal, a picker is shown.

Examples:
  micbot use team     # Make "team" the active hook
  micbot use          # Pick interactively
  micbot use --show   # Show the active hook`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUse,
}

func init() {
	useCmd.Flags().BoolVar(&useShowFlag, "show", false, "Show the active hook")
	rootCmd.AddCommand(useCmd)
}

func runUse(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	store, err := openStore()
	if err != nil {
		return err
	}

	// Show mode
	if useShowFlag {
		active, ok := store.ActiveHook()
		if !ok {
			fmt.Fprintln(out, "No active hook")
			return nil
		}
		fmt.Fprintf(out, "Active hook: %s\n", active.Name)
		fmt.Fprintf(out, "URL: %s\n", active.URL)
		return nil
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		entries := store.ListHooks()
		if len(entries) == 0 {
			return errors.New("no hooks configured: add one with 'micbot hook add <name> <url>'")
		}
		if !stdinIsTerminal() || !stdoutIsTerminal() {
			return errors.New("hook name required when not running in a terminal")
		}

		name, err = picker.Run("Select active hook", picker.HookItems(entries))
		if err != nil {
			return fmt.Errorf("picker: %w", err)
		}
		if name == "" {
			fmt.Fprintln(out, "Cancelled")
			return nil
		}
	}

	h, ok := store.GetHook(name)
	if !ok {
		return mberrors.NewHookError(name, "use", mberrors.ErrHookNotFound)
	}

	if err := store.SetActiveHook(h); err != nil {
		return fmt.Errorf("failed to set active hook: %w", err)
	}

	fmt.Fprintf(out, "Switched to hook: %s\n", name)
	return nil
}
