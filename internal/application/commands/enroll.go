package commands

import (
	"context"
	"fmt"

	"edusync/internal/application"
	"edusync/internal/domain"
)

// EnrollResult contains the result of pushing an enrollment to Learning
type EnrollResult struct {
	Enrollment string
	Message    string
}

// EnrollCommand syncs a submitted Program Enrollment to the Learning side
type EnrollCommand struct {
	engine     *application.Engine
	Enrollment string
}

// NewEnrollCommand creates a new EnrollCommand
func NewEnrollCommand(engine *application.Engine, enrollment string) *EnrollCommand {
	return &EnrollCommand{
		engine:     engine,
		Enrollment: enrollment,
	}
}

// Validate checks if the enroll operation is valid
func (c *EnrollCommand) Validate() error {
	return application.ValidateRequired("enrollment", c.Enrollment)
}

// Execute runs the enroll command
func (c *EnrollCommand) Execute(ctx context.Context) (*EnrollResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	f, err := c.engine.Store().Get(domain.DocTypeProgramEnrollment, c.Enrollment)
	if err != nil {
		return nil, err
	}

	if err := c.engine.SyncEnrollment(domain.ProgramEnrollmentFromFields(c.Enrollment, f)); err != nil {
		return nil, fmt.Errorf("failed to sync enrollment %s: %w", c.Enrollment, err)
	}

	return &EnrollResult{
		Enrollment: c.Enrollment,
		Message:    fmt.Sprintf("Synced enrollment %s", c.Enrollment),
	}, nil
}

// ResyncEnrollmentResult contains the result of reconciling one member's
// course enrollments against the published program courses
type ResyncEnrollmentResult struct {
	Enrollment string
	Added      int
	Removed    int
	Message    string
}

// ResyncEnrollmentCommand re-reconciles a member's Learning course enrollments
type ResyncEnrollmentCommand struct {
	engine     *application.Engine
	Enrollment string
}

// NewResyncEnrollmentCommand creates a new ResyncEnrollmentCommand
func NewResyncEnrollmentCommand(engine *application.Engine, enrollment string) *ResyncEnrollmentCommand {
	return &ResyncEnrollmentCommand{
		engine:     engine,
		Enrollment: enrollment,
	}
}

// Validate checks if the resync operation is valid
func (c *ResyncEnrollmentCommand) Validate() error {
	return application.ValidateRequired("enrollment", c.Enrollment)
}

// Execute runs the resync command
func (c *ResyncEnrollmentCommand) Execute(ctx context.Context) (*ResyncEnrollmentResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	report, err := c.engine.ResyncEnrollmentToLms(c.Enrollment)
	if err != nil {
		return nil, fmt.Errorf("failed to resync enrollment %s: %w", c.Enrollment, err)
	}

	return &ResyncEnrollmentResult{
		Enrollment: c.Enrollment,
		Added:      report.Added,
		Removed:    report.Removed,
		Message:    fmt.Sprintf("Resynced enrollment %s: %d added, %d removed", c.Enrollment, report.Added, report.Removed),
	}, nil
}
