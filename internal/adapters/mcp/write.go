package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"edusync/internal/application"
	"edusync/internal/application/commands"
)

// RegisterWriteTools adds all mutating sync tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, engine *application.Engine) {
	s.AddTool(syncTool(), syncHandler(engine))
	s.AddTool(backfillTool(), backfillHandler(engine))
	s.AddTool(deleteTool(), deleteHandler(engine))
	s.AddTool(enrollTool(), enrollHandler(engine))
	s.AddTool(resyncEnrollmentTool(), resyncEnrollmentHandler(engine))
}

// --- sync ---

func syncTool() mcp.Tool {
	return mcp.NewTool("sync",
		mcp.WithDescription("Sync one Education document to the Learning side, creating or updating its counterpart. Descends one level: syncing a Program also links its Courses."),
		mcp.WithString("doctype",
			mcp.Description("Education document type: Program, Course, Topic, Article, or Video."),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("Document name."),
			mcp.Required(),
		),
	)
}

func syncHandler(engine *application.Engine) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		doctype := req.GetString("doctype", "")
		name := req.GetString("name", "")

		result, err := commands.NewSyncCommand(engine, doctype, name).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- backfill ---

func backfillTool() mcp.Tool {
	return mcp.NewTool("backfill",
		mcp.WithDescription("Sync every eligible Education document to the Learning side, level by level. Reports per-level counts and any per-document failures."),
	)
}

func backfillHandler(engine *application.Engine) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewBackfillCommand(engine).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete_counterpart",
		mcp.WithDescription("Delete an Education document's Learning counterpart, cascading to sync-owned children. Refused while learners are enrolled."),
		mcp.WithString("doctype",
			mcp.Description("Education document type: Program, Course, Topic, Article, or Video."),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("Document name."),
			mcp.Required(),
		),
	)
}

func deleteHandler(engine *application.Engine) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		doctype := req.GetString("doctype", "")
		name := req.GetString("name", "")

		result, err := commands.NewDeleteCommand(engine, doctype, name).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- enroll ---

func enrollTool() mcp.Tool {
	return mcp.NewTool("enroll",
		mcp.WithDescription("Push a submitted Program Enrollment to the Learning side: add the member to the LMS Program and enroll them in its published courses."),
		mcp.WithString("enrollment",
			mcp.Description("Program Enrollment document name."),
			mcp.Required(),
		),
	)
}

func enrollHandler(engine *application.Engine) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		enrollment := req.GetString("enrollment", "")
		if enrollment == "" {
			return toolError(fmt.Errorf("enrollment is required"))
		}

		result, err := commands.NewEnrollCommand(engine, enrollment).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- resync_enrollment ---

func resyncEnrollmentTool() mcp.Tool {
	return mcp.NewTool("resync_enrollment",
		mcp.WithDescription("Reconcile one member's Learning course enrollments against the program's current published courses, adding and removing as needed."),
		mcp.WithString("enrollment",
			mcp.Description("Program Enrollment document name."),
			mcp.Required(),
		),
	)
}

func resyncEnrollmentHandler(engine *application.Engine) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		enrollment := req.GetString("enrollment", "")
		if enrollment == "" {
			return toolError(fmt.Errorf("enrollment is required"))
		}

		result, err := commands.NewResyncEnrollmentCommand(engine, enrollment).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
