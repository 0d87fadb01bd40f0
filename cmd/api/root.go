package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "nagarseva",
	Short:         "NagarSeva civic issue reporting: citizen portal, municipal dashboard, map, community and analytics",
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(fixturesCmd)
}
