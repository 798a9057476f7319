package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/averycrespi/ecl-mcp/internal/results"
	"github.com/averycrespi/ecl-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// FindSymbolDefinitionTool handles find symbol definition requests
type FindSymbolDefinitionTool struct {
	client types.Client
	config types.Config
}

// NewFindSymbolDefinitionTool creates a new find symbol definition tool
func NewFindSymbolDefinitionTool(client types.Client, config types.Config) *FindSymbolDefinitionTool {
	return &FindSymbolDefinitionTool{
		client: client,
		config: config,
	}
}

// GetTool returns the MCP tool definition
func (t *FindSymbolDefinitionTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolFindSymbolDefinition,
		mcp.WithDescription("Find the definition of a symbol as seen from an ECL file, "+
			"searching the file first and then the files it imports"),
		mcp.WithString("file_path", mcp.Required(), mcp.Description("Path to the ECL file the symbol is used in")),
		mcp.WithString("symbol_name", mcp.Required(), mcp.Description("Exact symbol name to find the definition for")),
	)
	return tool
}

// Handle processes the tool request
func (t *FindSymbolDefinitionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filePath := mcp.ParseString(req, "file_path", "")
	if filePath == "" {
		return mcp.NewToolResultError("file_path parameter is required"), nil
	}
	symbolName := mcp.ParseString(req, "symbol_name", "")
	if symbolName == "" {
		return mcp.NewToolResultError("symbol_name parameter is required"), nil
	}

	slog.Debug("MCP tool called", "tool", ToolFindSymbolDefinition, "file_path", filePath, "symbol_name", symbolName)

	uri := PathToUri(filePath, t.config.WorkspaceRoot)
	locations, err := t.client.FindDefinition(ctx, uri, symbolName)
	if err != nil {
		slog.Error("Failed to find definition", "tool", ToolFindSymbolDefinition, "uri", uri, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to find definition of %s: %v", symbolName, err)), nil
	}

	toolResult := results.FindSymbolDefinitionToolResult{
		Arguments: results.FindSymbolDefinitionToolArgs{
			FilePath:   filePath,
			SymbolName: symbolName,
		},
	}
	for _, loc := range locations {
		toolResult.Definitions = append(toolResult.Definitions, newSymbolDefinition(loc, "", t.config.WorkspaceRoot))
	}

	if len(toolResult.Definitions) == 0 {
		toolResult.Message = "No definition found. " +
			"The symbol is not declared in the file or in any file it imports directly."
	} else {
		toolResult.Message = fmt.Sprintf("Found the definition of %s.", symbolName)
	}

	return newJSONToolResult(toolResult)
}
