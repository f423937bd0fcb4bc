package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"edusync/internal/adapters/docstore"
	"edusync/internal/adapters/errlog"
	"edusync/internal/application"
	"edusync/internal/config"
)

var (
	storePath string
	store     *docstore.Store
	engine    *application.Engine
)

var rootCmd = &cobra.Command{
	Use:   "edusync-cli",
	Short: "CLI for the Education ↔ Learning sync engine",
	Long: `edusync-cli manages the bidirectional sync between an Education
content hierarchy (Program → Course → Topic → Article/Video) and its
Learning counterpart (LMS Program → LMS Course → Chapter → Lesson).

It provides commands to sync single documents, backfill the whole tree,
delete counterparts, push enrollments, and inspect link status.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		store = docstore.NewStore()
		if err := store.Open(storePath); err != nil {
			return err
		}
		engine = application.NewEngine(store, errlog.NewSink(store))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&storePath, "store", "s", config.StorePath(), "path to the document store")
}

// GetEngine returns the initialized sync engine
func GetEngine() *application.Engine {
	return engine
}
