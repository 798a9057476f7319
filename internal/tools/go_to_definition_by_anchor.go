package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/averycrespi/ecl-mcp/internal/results"
	"github.com/averycrespi/ecl-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// GoToDefinitionByAnchorTool handles go to definition by anchor requests
type GoToDefinitionByAnchorTool struct {
	client types.Client
	config types.Config
}

// NewGoToDefinitionByAnchorTool creates a new go to definition by anchor tool
func NewGoToDefinitionByAnchorTool(client types.Client, config types.Config) *GoToDefinitionByAnchorTool {
	return &GoToDefinitionByAnchorTool{
		client: client,
		config: config,
	}
}

// GetTool returns the MCP tool definition
func (t *GoToDefinitionByAnchorTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolGoToDefinitionByAnchor,
		mcp.WithDescription("Go to the definition of the symbol at an anchor in the ECL workspace"),
		mcp.WithString("symbol_anchor", mcp.Required(), mcp.Description(anchorDescription)),
	)
	return tool
}

// Handle processes the tool request
func (t *GoToDefinitionByAnchorTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	anchorStr := mcp.ParseString(req, "symbol_anchor", "")
	if anchorStr == "" {
		return mcp.NewToolResultError("symbol_anchor parameter is required"), nil
	}

	file, position, err := results.SymbolAnchor(anchorStr).ToFilePosition()
	if err != nil {
		slog.Debug("Invalid anchor format", "tool", ToolGoToDefinitionByAnchor, "symbol_anchor", anchorStr, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Invalid anchor format: %v", err)), nil
	}

	uri := PathToUri(file, t.config.WorkspaceRoot)
	locations, err := t.client.GoToDefinition(ctx, uri, position)
	if err != nil {
		slog.Error("Failed to go to definition", "tool", ToolGoToDefinitionByAnchor, "uri", uri, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to go to definition for anchor %s: %v", anchorStr, err)), nil
	}

	toolResult := results.GoToDefinitionByAnchorToolResult{
		Arguments: results.GoToDefinitionByAnchorToolArgs{
			SymbolAnchor: anchorStr,
		},
	}
	for _, loc := range locations {
		toolResult.Definitions = append(toolResult.Definitions, newSymbolDefinition(loc, "", t.config.WorkspaceRoot))
	}

	if len(toolResult.Definitions) == 0 {
		toolResult.Message = "No definition found for the symbol anchor. " +
			"This could mean that there is no identifier at the anchor, or that your symbol anchor is out of date."
	} else {
		toolResult.Message = "Found the definition for the symbol anchor."
	}

	return newJSONToolResult(toolResult)
}
