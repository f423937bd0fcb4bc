package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"edusync/internal/adapters/docstore"
	"edusync/internal/adapters/errlog"
	mcpadapter "edusync/internal/adapters/mcp"
	"edusync/internal/application"
	"edusync/internal/config"
)

func main() {
	storeFlag := flag.String("store", config.StorePath(), "path to the document store")
	flag.Parse()

	store := docstore.NewStore()
	if err := store.Open(*storeFlag); err != nil {
		log.Fatalf("edusync-mcp: %v", err)
	}
	defer store.Close()

	engine := application.NewEngine(store, errlog.NewSink(store))

	mcpServer := server.NewMCPServer(
		"edusync-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, engine)
	mcpadapter.RegisterWriteTools(mcpServer, engine)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("edusync-mcp: %v", err)
	}
}
