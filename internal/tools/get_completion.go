package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/ecl-mcp/internal/results"
	"github.com/averycrespi/ecl-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetCompletionTool handles completion requests
type GetCompletionTool struct {
	client types.Client
	config types.Config
}

// NewGetCompletionTool creates a new completion tool
func NewGetCompletionTool(client types.Client, config types.Config) *GetCompletionTool {
	return &GetCompletionTool{
		client: client,
		config: config,
	}
}

// GetTool returns the MCP tool definition
func (t *GetCompletionTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolGetCompletion,
		mcp.WithDescription("Get completion suggestions at a position in ECL code"),
		mcp.WithString("file_path", mcp.Required(), mcp.Description("Path to the ECL file")),
		mcp.WithNumber("line", mcp.Required(), mcp.Description("Line number (1-based)")),
		mcp.WithNumber("character", mcp.Required(), mcp.Description("Character position (1-based), i.e. the cursor sits before this character")),
	)
	return tool
}

// Handle processes the tool request
func (t *GetCompletionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filePath := mcp.ParseString(req, "file_path", "")
	if filePath == "" {
		return mcp.NewToolResultError("file_path parameter is required"), nil
	}

	position, err := GetPosition(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	uri := PathToUri(filePath, t.config.WorkspaceRoot)
	items, err := t.client.GetCompletion(ctx, uri, position)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get completion: %v", err)), nil
	}

	toolResult := results.GetCompletionToolResult{
		Arguments: results.PositionToolArgs{
			FilePath:    filePath,
			DisplayLine: position.Line + 1,
			DisplayChar: position.Character + 1,
		},
	}
	for _, item := range items {
		toolResult.Items = append(toolResult.Items, results.CompletionItem{
			Label:      item.Label,
			Kind:       item.Kind,
			Detail:     item.Detail,
			InsertText: item.InsertText,
		})
	}
	toolResult.Message = fmt.Sprintf("Found %d completion items.", len(toolResult.Items))

	return newJSONToolResult(toolResult)
}
