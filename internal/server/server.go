package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/averycrespi/ecl-mcp/internal/client"
	"github.com/averycrespi/ecl-mcp/internal/tools"
	"github.com/averycrespi/ecl-mcp/pkg/project"
	"github.com/averycrespi/ecl-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &EclServer{}

// EclServer represents the ECL MCP server
type EclServer struct {
	mcpServer *server.MCPServer
	eclClient *client.EclClient
	config    types.Config
}

// NewEclServer creates a new ECL MCP server with all tools registered
func NewEclServer(config types.Config) (*EclServer, error) {
	eclClient, err := client.NewEclClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create ECL client: %w", err)
	}

	s := &EclServer{
		mcpServer: server.NewMCPServer(project.Name, project.Version, server.WithToolCapabilities(false)),
		eclClient: eclClient,
		config:    config,
	}
	s.registerTools()

	return s, nil
}

// Serve serves MCP requests over stdio until the context is done or stdin closes
func (s *EclServer) Serve(ctx context.Context) error {
	return s.serve(ctx, os.Stdin, os.Stdout)
}

func (s *EclServer) serve(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	slog.Info("Starting ECL MCP server",
		"version", project.Version,
		"workspace_root", s.config.WorkspaceRoot,
		"max_concurrency", s.config.MaxConcurrency)

	stdioServer := server.NewStdioServer(s.mcpServer)
	stdioServer.SetErrorLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelError))

	if err := stdioServer.Listen(ctx, stdin, stdout); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	slog.Info("ECL MCP server stopped")
	return nil
}

type toolHandler interface {
	GetTool() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

func (s *EclServer) registerTools() {
	for _, tool := range []toolHandler{
		tools.NewFindSymbolDefinitionTool(s.eclClient, s.config),
		tools.NewGoToDefinitionByAnchorTool(s.eclClient, s.config),
		tools.NewFindSymbolDefinitionsByNameTool(s.eclClient, s.config),
		tools.NewFindSymbolReferencesByAnchorTool(s.eclClient, s.config),
		tools.NewListSymbolsInFileTool(s.eclClient, s.config),
		tools.NewHoverInfoTool(s.eclClient, s.config),
		tools.NewGetCompletionTool(s.eclClient, s.config),
	} {
		s.mcpServer.AddTool(tool.GetTool(), tool.Handle)
		slog.Debug("Registered MCP tool", "tool", tool.GetTool().Name)
	}
}
