// Package cmd defines the jornada command line interface.
package cmd

import (
	"github.com/spf13/cobra"

	"jornada/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "jornada",
	Short: "Jornada - a terminal-based user story map",
	Long: `Jornada is a terminal-based user story map: journeys broken into
steps, issues placed on steps, and releases grouping issues for
delivery. Running it without a subcommand opens the board.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch()
	},
}

func Execute() error {
	return rootCmd.Execute()
}
