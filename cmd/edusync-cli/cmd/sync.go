package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"edusync/internal/application/commands"
)

var syncCmd = &cobra.Command{
	Use:   "sync <doctype> <name>",
	Short: "Sync one Education document to the Learning side",
	Long: `Sync a single Education document, creating or updating its Learning
counterpart. Syncing a container also links its direct children.

Examples:
  edusync-cli sync Program physics-101
  edusync-cli sync Topic forces
  edusync-cli sync Article newton-laws`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewSyncCommand(GetEngine(), args[0], args[1]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
