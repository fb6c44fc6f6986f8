package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "syncctl",
	Short: "Syncctl drives and inspects WordPress post syncs",
	Long: `syncctl is the operator tool for the post publisher pipeline.

The pipeline mirrors WordPress posts into a Git-hosted static site: each sync
fetches a post, re-encodes its images, renders a markdown document and commits
everything atomically to the target repository.

Common workflows:

  Queue a post for syncing:
    syncctl enqueue 42

  Withdraw a pending sync:
    syncctl cancel 42

  Inspect sync state:
    syncctl status 42
    syncctl status

  Re-enqueue failed posts with retry budget left:
    syncctl retry-failed

  Remove a post and its media from the site:
    syncctl delete 42

  Verify repository access:
    syncctl check

Configuration:
  syncctl reads the same config file as the syncer daemon. Point at it with
  --config or the POSTSYNC_CONFIG environment variable.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func initConfig() {
	// Read environment variables that match "POSTSYNC_VARNAME"
	viper.SetEnvPrefix("POSTSYNC")
	viper.AutomaticEnv()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yaml)")
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}
