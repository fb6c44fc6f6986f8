package cmd

import (
	"github.com/spf13/cobra"
)

var retryFailedCmd = &cobra.Command{
	Use:   "retry-failed",
	Short: "Re-enqueue failed posts with retry budget left",
	Long: `Re-enqueue every post in error status that has not exhausted its retry
budget. The syncer daemon runs the same sweep periodically; this command
triggers it on demand.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			cmd.Printf("Failed to initialize: %v\n", err)
			return
		}
		defer a.Close()

		retried, skipped, err := a.queue.RetryFailed(cmd.Context())
		if err != nil {
			cmd.Printf("Retry sweep failed: %v\n", err)
			return
		}

		cmd.Printf("%s Re-enqueued %d post(s), skipped %d with exhausted budget\n",
			colorGreen+"✓"+colorReset, retried, skipped)
	},
}

func init() {
	rootCmd.AddCommand(retryFailedCmd)
}
