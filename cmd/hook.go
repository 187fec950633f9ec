package cmd

import (
	"github.com/spf13/cobra"
)

var hookCmd = &cobra.Command{
	Use:     "hook",
	Aliases: []string{"hooks", "h"},
	Short:   "Manage stored webhooks",
	Long: `Add, remove and list the Slack incoming webhooks micbot can post to.

Only URLs of the form
  https://hooks.slack.com/services/T<8>/B<8>/<24>
are accepted. The first hook added becomes the active one.

Examples:
  micbot hook add team https://hooks.slack.com/services/T.../B.../...
  micbot hook list
  micbot hook remove team`,
}

func init() {
	rootCmd.AddCommand(hookCmd)
}
