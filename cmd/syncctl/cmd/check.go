package cmd

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify connectivity to the database and target repository",
	Long: `Run the same preflight checks the syncer daemon performs on startup:
database reachability and repository access, including whether the token can
push to the configured branch and how much API rate budget remains.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			cmd.Printf("%s Initialization failed: %v\n", colorRed+"✗"+colorReset, err)
			return
		}
		defer a.Close()

		ok := true

		if err := a.db.PingContext(cmd.Context()); err != nil {
			cmd.Printf("%s Database: %v\n", colorRed+"✗"+colorReset, err)
			ok = false
		} else {
			cmd.Printf("%s Database reachable\n", colorGreen+"✓"+colorReset)
		}

		if err := a.repo.TestConnection(cmd.Context()); err != nil {
			cmd.Printf("%s Repository %s: %v\n", colorRed+"✗"+colorReset, a.cfg.GitHub.Repository, err)
			ok = false
		} else {
			cmd.Printf("%s Repository %s accessible on branch %s\n",
				colorGreen+"✓"+colorReset, a.cfg.GitHub.Repository, a.cfg.GitHub.Branch)
		}

		if !ok {
			cmd.Println("\nSome checks failed; see messages above")
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
