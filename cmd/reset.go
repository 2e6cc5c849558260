package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"jornada/internal/app"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all board data and restore the sample story map",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce {
			fmt.Print("This deletes all journeys, issues, and releases. Continue? [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		ctx := context.Background()

		application, err := app.New(ctx)
		if err != nil {
			return err
		}
		defer application.Close()

		if err := application.Journeys.ResetAll(ctx); err != nil {
			return err
		}
		if err := application.Issues.ResetAll(ctx); err != nil {
			return err
		}
		if err := application.Releases.ResetAll(ctx); err != nil {
			return err
		}
		fmt.Println("Board reset to the sample story map.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}
