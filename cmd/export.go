package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"jornada/internal/app"
	"jornada/internal/dataio"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the story map to a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		application, err := app.New(ctx)
		if err != nil {
			return err
		}
		defer application.Close()

		if err := application.DataIO.ExportToFile(exportOutput); err != nil {
			return err
		}
		fmt.Printf("Exported story map to %s\n", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", dataio.DefaultExportFilename, "destination file")
	rootCmd.AddCommand(exportCmd)
}
