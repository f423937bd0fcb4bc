package commands

import (
	"context"
	"fmt"
	"strings"

	"edusync/internal/application"
	"edusync/internal/domain"
)

// Tree sides
const (
	SideEducation = "education"
	SideLearning  = "learning"
)

// TreeResult contains a rendered hierarchy
type TreeResult struct {
	Root    *domain.TreeNode
	Message string
}

// TreeCommand renders one side of the synced hierarchy with link badges
type TreeCommand struct {
	engine *application.Engine
	Side   string
}

// NewTreeCommand creates a new TreeCommand
func NewTreeCommand(engine *application.Engine, side string) *TreeCommand {
	return &TreeCommand{
		engine: engine,
		Side:   side,
	}
}

// Validate checks if the tree operation is valid
func (c *TreeCommand) Validate() error {
	if c.Side != SideEducation && c.Side != SideLearning {
		return &application.ValidationError{
			Field:   "side",
			Message: fmt.Sprintf("expected %s or %s, got: %s", SideEducation, SideLearning, c.Side),
		}
	}
	return nil
}

// Execute runs the tree command
func (c *TreeCommand) Execute(ctx context.Context) (*TreeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var (
		root *domain.TreeNode
		err  error
	)
	if c.Side == SideEducation {
		root, err = c.engine.EducationTree()
	} else {
		root, err = c.engine.LearningTree()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build %s tree: %w", c.Side, err)
	}

	return &TreeResult{
		Root:    root,
		Message: renderTree(root),
	}, nil
}

func renderTree(root *domain.TreeNode) string {
	var b strings.Builder
	var walk func(n *domain.TreeNode, depth int)
	walk = func(n *domain.TreeNode, depth int) {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(n.Title)
		if n.Linked {
			b.WriteString(" [linked]")
		}
		if n.SyncOwned {
			b.WriteString(" [synced]")
		}
		b.WriteString("\n")
		for _, child := range n.Children {
			walk(child, depth+1)
		}
	}
	walk(root, 0)
	return strings.TrimRight(b.String(), "\n")
}
