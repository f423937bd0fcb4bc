package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"edusync/internal/application/commands"
)

var backfillCmd = &cobra.Command{
	Use:   "backfill",
	Short: "Sync every eligible Education document",
	Long: `Walk the whole Education tree level by level (programs, courses,
topics, contents) and sync every eligible document. One document's
failure does not stop the run; failures are reported at the end.

Example:
  edusync-cli backfill`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewBackfillCommand(GetEngine()).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backfillCmd)
}
