package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
)

var enqueueCmd = &cobra.Command{
	Use:   "enqueue [post_id]",
	Short: "Queue a post for syncing",
	Long: `Queue a WordPress post for syncing to the target repository.

Enqueueing a post that is already pending or processing is a no-op, so it is
safe to call repeatedly, e.g. from an edit webhook.`,
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

		if err := a.queue.Enqueue(cmd.Context(), postID); err != nil {
			cmd.Printf("Failed to enqueue post %d: %v\n", postID, err)
			return
		}

		cmd.Printf("%s Post %d queued for sync\n", colorGreen+"✓"+colorReset, postID)
	},
}

func init() {
	rootCmd.AddCommand(enqueueCmd)
}
