package cmd

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"post_publisher/internal/domain"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [post_id]",
	Short: "Remove a post and its media from the site",
	Long: `Remove a post's markdown document and media directory from the target
repository. Works for posts already gone from WordPress as long as their
document path was cached by an earlier sync.`,
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

		deleted, err := a.orchestrator.Delete(cmd.Context(), postID)
		if err != nil {
			if errors.Is(err, domain.ErrPathUnresolvable) {
				cmd.Printf("Post %d is gone from WordPress and no cached path exists; cannot locate its document\n", postID)
				return
			}
			cmd.Printf("Failed to delete post %d: %v\n", postID, err)
			return
		}

		cmd.Printf("%s Removed %d file(s):\n", colorGreen+"✓"+colorReset, len(deleted))
		for _, path := range deleted {
			cmd.Printf("  %s\n", path)
		}
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
