// Package cli implements the Momentum command-line interface using Cobra.
// Each subcommand maps to one engine operation (add, next, done, day, etc.).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "momentum",
	Short: "Momentum — A task tracker that rewards showing up",
	Long: `Momentum is a local-first task tracker built around one idea:
the reward for doing something should never depend on doing everything.

Completing tasks earns XP and the occasional surprise drop, streaks have
shields so one bad day doesn't erase a good month, and coming back after
a gap is always welcomed, never punished.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
