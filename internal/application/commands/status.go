package commands

import (
	"context"
	"fmt"
	"strings"

	"edusync/internal/application"
	"edusync/internal/domain"
)

// StatusResult contains per-level link counts
type StatusResult struct {
	Enabled bool
	Levels  map[domain.Level]application.LevelStatus
	Message string
}

// StatusCommand reports how much of the Education tree is linked to Learning
type StatusCommand struct {
	engine *application.Engine
}

// NewStatusCommand creates a new StatusCommand
func NewStatusCommand(engine *application.Engine) *StatusCommand {
	return &StatusCommand{engine: engine}
}

// Validate checks if the status operation is valid
func (c *StatusCommand) Validate() error {
	return nil
}

// Execute runs the status command
func (c *StatusCommand) Execute(ctx context.Context) (*StatusResult, error) {
	levels, err := c.engine.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to read sync status: %w", err)
	}
	enabled := c.engine.Gate().Enabled()

	var b strings.Builder
	if enabled {
		b.WriteString("sync: enabled\n")
	} else {
		b.WriteString("sync: disabled\n")
	}
	for _, level := range domain.Levels() {
		s := levels[level]
		fmt.Fprintf(&b, "%s: %d/%d linked\n", level, s.Linked, s.Total)
	}

	return &StatusResult{
		Enabled: enabled,
		Levels:  levels,
		Message: strings.TrimRight(b.String(), "\n"),
	}, nil
}
