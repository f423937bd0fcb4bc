package commands

import (
	"context"
	"errors"
	"fmt"

	"edusync/internal/application"
	"edusync/internal/domain"
)

// DeleteResult contains the result of deleting a synced entity pair
type DeleteResult struct {
	DocType string
	Name    string
	Message string
}

// DeleteCommand deletes an Education entity's Learning counterpart.
// Rule violations (e.g. a program that still has members) are returned
// to the caller instead of being swallowed.
type DeleteCommand struct {
	engine  *application.Engine
	DocType string
	Name    string
}

// NewDeleteCommand creates a new DeleteCommand
func NewDeleteCommand(engine *application.Engine, docType, name string) *DeleteCommand {
	return &DeleteCommand{
		engine:  engine,
		DocType: docType,
		Name:    name,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteCommand) Validate() error {
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	return application.ValidateEducationDocType("docType", c.DocType)
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	store := c.engine.Store()
	f, err := store.Get(c.DocType, c.Name)
	if err != nil {
		return nil, err
	}

	switch c.DocType {
	case domain.DocTypeProgram:
		err = c.engine.DeleteProgram(domain.ProgramFromFields(c.Name, f))
	case domain.DocTypeCourse:
		err = c.engine.DeleteCourse(domain.CourseFromFields(c.Name, f))
	case domain.DocTypeTopic:
		err = c.engine.DeleteTopic(domain.TopicFromFields(c.Name, f))
	case domain.DocTypeArticle:
		err = c.engine.DeleteArticle(domain.ArticleFromFields(c.Name, f))
	case domain.DocTypeVideo:
		err = c.engine.DeleteVideo(domain.VideoFromFields(c.Name, f))
	}
	if err != nil {
		if errors.Is(err, application.ErrRuleViolation) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to delete %s %s: %w", c.DocType, c.Name, err)
	}

	return &DeleteResult{
		DocType: c.DocType,
		Name:    c.Name,
		Message: fmt.Sprintf("Deleted Learning counterpart of %s %s", c.DocType, c.Name),
	}, nil
}
