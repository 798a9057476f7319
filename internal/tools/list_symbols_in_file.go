package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/ecl-mcp/internal/results"
	"github.com/averycrespi/ecl-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListSymbolsInFileTool handles list symbols in file requests
type ListSymbolsInFileTool struct {
	client types.Client
	config types.Config
}

// NewListSymbolsInFileTool creates a new list symbols in file tool
func NewListSymbolsInFileTool(client types.Client, config types.Config) *ListSymbolsInFileTool {
	return &ListSymbolsInFileTool{
		client: client,
		config: config,
	}
}

// GetTool returns the MCP tool definition
func (t *ListSymbolsInFileTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolListSymbolsInFile,
		mcp.WithDescription("List the functions, expressions, and variables declared in an ECL file"),
		mcp.WithString("file_path", mcp.Required(), mcp.Description("Path to the ECL file")),
	)
	return tool
}

// Handle processes the tool request
func (t *ListSymbolsInFileTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filePath := mcp.ParseString(req, "file_path", "")
	if filePath == "" {
		return mcp.NewToolResultError("file_path parameter is required"), nil
	}

	uri := PathToUri(filePath, t.config.WorkspaceRoot)
	documentSymbols, err := t.client.GetDocumentSymbols(ctx, uri)
	if err != nil {
		return mcp.NewToolResultError(
			fmt.Sprintf("Failed to get document symbols for file: %s: %v", filePath, err),
		), nil
	}

	toolResult := results.ListSymbolsInFileToolResult{
		Arguments: results.ListSymbolsInFileToolArgs{
			FilePath: filePath,
		},
	}
	for _, docSym := range documentSymbols {
		location := ToSymbolLocation(types.Location{URI: uri, Range: docSym.SelectionRange}, t.config.WorkspaceRoot)
		toolResult.FileSymbols = append(toolResult.FileSymbols, results.FileSymbol{
			Name:     docSym.Name,
			Kind:     results.NewSymbolKind(docSym.Kind),
			Detail:   docSym.Detail,
			Location: location,
			Anchor:   location.ToAnchor(),
		})
	}

	if len(toolResult.FileSymbols) == 0 {
		toolResult.Message = "No symbols found in file. " +
			"This could mean that the file is empty or declares nothing at the start of a line."
	} else {
		toolResult.Message = fmt.Sprintf("Found %d symbols in file.", len(toolResult.FileSymbols))
	}

	return newJSONToolResult(toolResult)
}
