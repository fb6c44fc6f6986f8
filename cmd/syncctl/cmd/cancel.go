package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
)

var cancelCmd = &cobra.Command{
	Use:   "cancel [post_id]",
	Short: "Withdraw a pending sync",
	Long: `Withdraw a pending sync and release the post's lock.

A job already picked up by a worker cannot be recalled from the broker; the
worker drops it when it sees the sync is no longer pending.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		postID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			cmd.Printf("Invalid post id %q\n", args[0])
			return
		}

		a, err := newApp()
		if err != nil {
			cmd.Printf("Failed to initialize: %v\n", err)
			return
		}
		defer a.Close()

		if err := a.queue.Cancel(cmd.Context(), postID); err != nil {
			cmd.Printf("Failed to cancel sync of post %d: %v\n", postID, err)
			return
		}

		cmd.Printf("%s Sync of post %d cancelled\n", colorGreen+"✓"+colorReset, postID)
	},
}

func init() {
	rootCmd.AddCommand(cancelCmd)
}
