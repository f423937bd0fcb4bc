package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"edusync/internal/application/commands"
)

var treeSide string

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display one side of the synced hierarchy",
	Long: `Display the Education or Learning hierarchy as a tree. Linked
documents carry a [linked] badge; Learning rows created by the sync
carry [synced].

Examples:
  edusync-cli tree
  edusync-cli tree --side learning`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewTreeCommand(GetEngine(), treeSide).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	treeCmd.Flags().StringVar(&treeSide, "side", commands.SideEducation, "hierarchy to render (education or learning)")
	rootCmd.AddCommand(treeCmd)
}
