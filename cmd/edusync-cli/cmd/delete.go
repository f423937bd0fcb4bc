package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"edusync/internal/application/commands"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <doctype> <name>",
	Short: "Delete a document's Learning counterpart",
	Long: `Delete the Learning counterpart of an Education document, cascading
to the sync-owned children underneath it. Manually created rows are
left alone. The delete is refused while learners are enrolled.

Examples:
  edusync-cli delete Program physics-101
  edusync-cli delete Topic forces`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewDeleteCommand(GetEngine(), args[0], args[1]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
