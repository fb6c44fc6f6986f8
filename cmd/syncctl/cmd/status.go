package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"post_publisher/internal/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status [post_id]",
	Short: "Show sync state of one post or of all posts",
	Long: `Show the sync state of a post: its status, retry count, last transition
time and the commit of the last successful sync. Without an argument, lists
the state of every post ever enqueued.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			cmd.Printf("Failed to initialize: %v\n", err)
			return
		}
		defer a.Close()

		if len(args) == 1 {
			postID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				cmd.Printf("Invalid post id %q\n", args[0])
				return
			}
			state, err := a.queue.GetStatus(cmd.Context(), postID)
			if err != nil {
				cmd.Printf("Failed to get status: %v\n", err)
				return
			}
			printState(cmd, state)
			return
		}

		states, err := a.queue.GetAllStatuses(cmd.Context())
		if err != nil {
			cmd.Printf("Failed to list statuses: %v\n", err)
			return
		}
		if len(states) == 0 {
			cmd.Println("No posts have been enqueued yet")
			return
		}
		for i := range states {
			printState(cmd, &states[i])
			if i < len(states)-1 {
				cmd.Println()
			}
		}
	},
}

func printState(cmd *cobra.Command, state *domain.SyncState) {
	icon := statusIcon(state.Status)
	cmd.Printf("%s %sPost %d%s\n", icon, colorBold, state.PostID, colorReset)
	cmd.Println("──────────────────────────────")
	cmd.Printf("%sStatus:%s      %s\n", colorDim, colorReset, colorizeStatus(state.Status))
	cmd.Printf("%sRetries:%s     %d/%d\n", colorDim, colorReset, state.RetryCount, domain.MaxRetries)

	if state.LastTransitionAt.IsZero() {
		cmd.Printf("%sUpdated:%s     -\n", colorDim, colorReset)
	} else {
		cmd.Printf("%sUpdated:%s     %s %s(%s ago)%s\n", colorDim, colorReset,
			state.LastTransitionAt.Format("Mon, 02 Jan 2006 15:04:05 MST"),
			colorDim, relativeTime(state.LastTransitionAt), colorReset)
	}

	if state.CachedFilePath != nil {
		cmd.Printf("%sDocument:%s    %s\n", colorDim, colorReset, *state.CachedFilePath)
	}
	if state.LastCommitRef != nil {
		cmd.Printf("%sLast commit:%s %s\n", colorDim, colorReset, *state.LastCommitRef)
	}
}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

func statusIcon(status domain.SyncStatus) string {
	switch status {
	case domain.SyncStatusSuccess:
		return colorGreen + "✓" + colorReset
	case domain.SyncStatusError:
		return colorRed + "✗" + colorReset
	case domain.SyncStatusProcessing:
		return colorYellow + "⏳" + colorReset
	case domain.SyncStatusPending:
		return colorCyan + "◯" + colorReset
	default:
		return "•"
	}
}

func colorizeStatus(status domain.SyncStatus) string {
	icon := statusIcon(status)
	switch status {
	case domain.SyncStatusSuccess:
		return icon + " " + colorGreen + string(status) + colorReset
	case domain.SyncStatusError:
		return icon + " " + colorRed + string(status) + colorReset
	case domain.SyncStatusProcessing:
		return icon + " " + colorYellow + string(status) + colorReset
	case domain.SyncStatusPending:
		return icon + " " + colorCyan + string(status) + colorReset
	default:
		return string(status)
	}
}

func relativeTime(t time.Time) string {
	duration := time.Since(t)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	} else if duration < time.Hour {
		return fmt.Sprintf("%dm", int(duration.Minutes()))
	} else if duration < 24*time.Hour {
		return fmt.Sprintf("%dh", int(duration.Hours()))
	} else {
		days := int(duration.Hours() / 24)
		if days == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", days)
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
