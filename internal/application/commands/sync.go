package commands

import (
	"context"
	"fmt"

	"edusync/internal/application"
	"edusync/internal/domain"
)

// SyncResult contains the result of syncing one Education entity
type SyncResult struct {
	DocType  string
	Name     string
	TargetID string
	Message  string
}

// SyncCommand syncs a single Education entity to the Learning side
type SyncCommand struct {
	engine  *application.Engine
	DocType string
	Name    string
}

// NewSyncCommand creates a new SyncCommand
func NewSyncCommand(engine *application.Engine, docType, name string) *SyncCommand {
	return &SyncCommand{
		engine:  engine,
		DocType: docType,
		Name:    name,
	}
}

// Validate checks if the sync operation is valid
func (c *SyncCommand) Validate() error {
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	return application.ValidateEducationDocType("docType", c.DocType)
}

// Execute runs the sync command
func (c *SyncCommand) Execute(ctx context.Context) (*SyncResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	store := c.engine.Store()
	f, err := store.Get(c.DocType, c.Name)
	if err != nil {
		return nil, err
	}

	var target string
	switch c.DocType {
	case domain.DocTypeProgram:
		target, err = c.engine.SyncProgram(domain.ProgramFromFields(c.Name, f))
	case domain.DocTypeCourse:
		target, err = c.engine.SyncCourse(domain.CourseFromFields(c.Name, f))
	case domain.DocTypeTopic:
		target, err = c.engine.SyncTopic(domain.TopicFromFields(c.Name, f))
	case domain.DocTypeArticle:
		target, err = c.engine.SyncArticle(domain.ArticleFromFields(c.Name, f))
	case domain.DocTypeVideo:
		target, err = c.engine.SyncVideo(domain.VideoFromFields(c.Name, f))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to sync %s %s: %w", c.DocType, c.Name, err)
	}

	return &SyncResult{
		DocType:  c.DocType,
		Name:     c.Name,
		TargetID: target,
		Message:  fmt.Sprintf("Synced %s %s → %s", c.DocType, c.Name, target),
	}, nil
}
