package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"edusync/internal/application/commands"
)

var enrollCmd = &cobra.Command{
	Use:   "enroll <enrollment>",
	Short: "Push a submitted enrollment to the Learning side",
	Long: `Add the enrollment's member to the linked LMS Program and enroll
them in every published course of the program.

Example:
  edusync-cli enroll enr-0001`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewEnrollCommand(GetEngine(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var resyncEnrollmentCmd = &cobra.Command{
	Use:   "resync-enrollment <enrollment>",
	Short: "Reconcile a member's course enrollments",
	Long: `Compare the member's Learning course enrollments against the
program's current published courses, enrolling into missing ones and
removing stale ones.

Example:
  edusync-cli resync-enrollment enr-0001`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewResyncEnrollmentCommand(GetEngine(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(enrollCmd)
	rootCmd.AddCommand(resyncEnrollmentCmd)
}
