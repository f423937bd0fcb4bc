package config

import "os"

const DefaultStorePath = "~/.local/share/edusync/edusync.db"

// StorePath returns the document store path from the EDUSYNC_STORE env var,
// falling back to DefaultStorePath.
func StorePath() string {
	if env := os.Getenv("EDUSYNC_STORE"); env != "" {
		return env
	}
	return DefaultStorePath
}
