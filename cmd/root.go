package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "attackgen",
	Short: "Controlled attack traffic generator for IDS research.",
	Long: `Attackgen sends precise, deterministic attack traffic regardless of
network responses: exact packet counts, fixed timing, no retries, and a
ground-truth record of everything sent for later detection scoring.`,
	SilenceUsage: true,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
