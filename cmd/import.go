package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"jornada/internal/app"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the story map with the contents of a JSON export",
	Long: `Import replaces all journeys, issues, and releases with the
contents of a previously exported JSON file. The file must contain
both a "journeys" and an "issues" key; a missing "releases" key
clears the releases.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		application, err := app.New(ctx)
		if err != nil {
			return err
		}
		defer application.Close()

		if err := application.DataIO.ImportFromFile(ctx, args[0]); err != nil {
			return err
		}
		fmt.Printf("Imported story map from %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
