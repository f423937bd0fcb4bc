package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"edusync/internal/adapters/fixture"
)

var importSync bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Load an Education tree from a YAML fixture",
	Long: `Create Education documents from a YAML fixture file. With --sync,
every imported program and submitted enrollment goes through the same
hooks a saved document would, linking the Learning side immediately.

Examples:
  edusync-cli import seed.yaml
  edusync-cli import seed.yaml --sync`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		importer := fixture.NewImporter(GetEngine(), importSync)
		result, err := importer.Import(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d programs, %d courses, %d topics, %d contents, %d enrollments\n",
			result.Programs, result.Courses, result.Topics, result.Contents, result.Enrollments)
		return nil
	},
}

func init() {
	importCmd.Flags().BoolVar(&importSync, "sync", false, "sync imported documents to the Learning side")
	rootCmd.AddCommand(importCmd)
}
