package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "adpilot",
	Short:        "Vietnamese chat assistant for ad campaigns",
	Long:         `adpilot turns short Vietnamese commands into ad platform operations such as listing, pausing and creating campaigns.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, chatCmd)
}
