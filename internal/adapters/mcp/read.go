package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"edusync/internal/application"
	"edusync/internal/application/commands"
	"edusync/internal/domain"
)

// RegisterReadTools adds all read-only sync tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, engine *application.Engine) {
	s.AddTool(statusTool(), statusHandler(engine))
	s.AddTool(treeTool(), treeHandler(engine))
	s.AddTool(listTool(), listHandler(engine))
	s.AddTool(getTool(), getHandler(engine))
}

// --- status ---

func statusTool() mcp.Tool {
	return mcp.NewTool("status",
		mcp.WithDescription("Report the sync state: whether sync is enabled and how many Education documents per level are linked to their Learning counterparts."),
	)
}

func statusHandler(engine *application.Engine) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewStatusCommand(engine).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display one side of the synced hierarchy as a tree with link badges."),
		mcp.WithString("side",
			mcp.Description("Which hierarchy to render: education or learning. Defaults to education."),
		),
	)
}

func treeHandler(engine *application.Engine) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		side := req.GetString("side", commands.SideEducation)

		result, err := commands.NewTreeCommand(engine, side).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List documents of one type. Optionally filter to unlinked documents only."),
		mcp.WithString("doctype",
			mcp.Description("Document type (e.g. Program, Course, Topic, Article, Video, LMS Course, Lesson)."),
			mcp.Required(),
		),
		mcp.WithBoolean("unlinked_only",
			mcp.Description("When true, return only documents without a sync link."),
		),
	)
}

func listHandler(engine *application.Engine) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		doctype := req.GetString("doctype", "")
		if doctype == "" {
			return toolError(fmt.Errorf("doctype is required"))
		}
		unlinkedOnly := req.GetBool("unlinked_only", false)

		var filters map[string]any
		if unlinkedOnly {
			field, ok := linkFields[doctype]
			if !ok {
				return toolError(fmt.Errorf("%s documents carry no sync link", doctype))
			}
			filters = map[string]any{field: ""}
		}

		rows, err := engine.Store().List(doctype, filters)
		if err != nil {
			return toolError(err)
		}
		if len(rows) == 0 {
			return mcp.NewToolResultText("No results."), nil
		}

		var sb strings.Builder
		for _, row := range rows {
			fmt.Fprintf(&sb, "%s  %s\n", row.Name, row.Fields.Str("title"))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// linkFields maps each document type to the field holding its sync link.
var linkFields = map[string]string{
	domain.DocTypeProgram:    "lms_program",
	domain.DocTypeCourse:     "lms_course",
	domain.DocTypeTopic:      "chapter",
	domain.DocTypeArticle:    "lesson",
	domain.DocTypeVideo:      "lesson",
	domain.DocTypeLMSProgram: "program",
	domain.DocTypeLMSCourse:  "course",
	domain.DocTypeChapter:    "topic",
	domain.DocTypeLesson:     "content",
}

// --- get ---

func getTool() mcp.Tool {
	return mcp.NewTool("get",
		mcp.WithDescription("Read one document's fields by type and name."),
		mcp.WithString("doctype",
			mcp.Description("Document type."),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("Document name."),
			mcp.Required(),
		),
	)
}

func getHandler(engine *application.Engine) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		doctype := req.GetString("doctype", "")
		name := req.GetString("name", "")
		if doctype == "" || name == "" {
			return toolError(fmt.Errorf("doctype and name are required"))
		}

		f, err := engine.Store().Get(doctype, name)
		if err != nil {
			return toolError(err)
		}

		keys := make([]string, 0, len(f))
		for k := range f {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var sb strings.Builder
		fmt.Fprintf(&sb, "%s %s\n", doctype, name)
		for _, k := range keys {
			fmt.Fprintf(&sb, "  %s: %v\n", k, f[k])
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
