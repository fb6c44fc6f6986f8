// Package main is the entry point for the syncctl CLI.
// The CLI is the operator tool for driving and inspecting post syncs.
package main

import (
	"os"

	"post_publisher/cmd/syncctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
