package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"edusync/internal/application"
	"edusync/internal/domain"
)

// BackfillResult contains the result of a bulk sync run
type BackfillResult struct {
	Report  *application.Report
	Message string
}

// BackfillCommand syncs every eligible Education entity to the Learning side
type BackfillCommand struct {
	engine *application.Engine
}

// NewBackfillCommand creates a new BackfillCommand
func NewBackfillCommand(engine *application.Engine) *BackfillCommand {
	return &BackfillCommand{engine: engine}
}

// Validate checks if the backfill operation is valid
func (c *BackfillCommand) Validate() error {
	return nil
}

// Execute runs the backfill command
func (c *BackfillCommand) Execute(ctx context.Context) (*BackfillResult, error) {
	report, err := c.engine.RunAll()
	if err != nil {
		return nil, fmt.Errorf("failed to backfill: %w", err)
	}

	return &BackfillResult{
		Report:  report,
		Message: formatReport(report),
	}, nil
}

func formatReport(r *application.Report) string {
	var b strings.Builder

	levels := make([]domain.Level, 0, len(r.Counts))
	for level := range r.Counts {
		levels = append(levels, level)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })

	for _, level := range levels {
		count := r.Counts[level]
		fmt.Fprintf(&b, "%s: %d synced, %d skipped, %d failed\n",
			level, count.Synced, count.Skipped, count.Failed)
	}
	for _, failure := range r.Errors {
		fmt.Fprintf(&b, "  error: %s %s: %s\n", failure.DocType, failure.Name, failure.Message)
	}

	return strings.TrimRight(b.String(), "\n")
}
