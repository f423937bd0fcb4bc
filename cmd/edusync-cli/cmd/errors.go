package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"edusync/internal/adapters/errlog"
)

var ackErrors bool

var errorsCmd = &cobra.Command{
	Use:   "errors",
	Short: "Show unacknowledged sync failures",
	Long: `List the sync failures recorded by hooks and backfill runs, newest
first. With --ack, mark the listed entries as seen.

Examples:
  edusync-cli errors
  edusync-cli errors --ack`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sink := errlog.NewSink(GetEngine().Store())
		unseen, err := sink.Unseen()
		if err != nil {
			return err
		}
		if len(unseen) == 0 {
			fmt.Println("No unacknowledged sync errors.")
			return nil
		}

		for _, entry := range unseen {
			fmt.Printf("%s  %s\n    %s\n", entry.Fields.Str("logged"), entry.Fields.Str("title"), entry.Fields.Str("error"))
			if ackErrors {
				if err := sink.MarkSeen(entry.Name); err != nil {
					return err
				}
			}
		}
		return nil
	},
}

func init() {
	errorsCmd.Flags().BoolVar(&ackErrors, "ack", false, "mark listed errors as seen")
	rootCmd.AddCommand(errorsCmd)
}
