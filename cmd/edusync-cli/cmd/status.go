package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"edusync/internal/application/commands"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync state and per-level link counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewStatusCommand(GetEngine()).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
