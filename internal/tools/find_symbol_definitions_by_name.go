package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/ecl-mcp/internal/results"
	"github.com/averycrespi/ecl-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// FindSymbolDefinitionsByNameTool handles find symbol definitions by name requests
type FindSymbolDefinitionsByNameTool struct {
	client types.Client
	config types.Config
}

// NewFindSymbolDefinitionsByNameTool creates a new find symbol definitions by name tool
func NewFindSymbolDefinitionsByNameTool(client types.Client, config types.Config) *FindSymbolDefinitionsByNameTool {
	return &FindSymbolDefinitionsByNameTool{
		client: client,
		config: config,
	}
}

// GetTool returns the MCP tool definition
func (t *FindSymbolDefinitionsByNameTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolFindSymbolDefinitionsByName,
		mcp.WithDescription("Find every definition of a symbol name across the ECL files of the workspace"),
		mcp.WithString("symbol_name", mcp.Required(), mcp.Description("Exact symbol name to find definitions for")),
	)
	return tool
}

// Handle processes the tool request
func (t *FindSymbolDefinitionsByNameTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbolName := mcp.ParseString(req, "symbol_name", "")
	if symbolName == "" {
		return mcp.NewToolResultError("symbol_name parameter is required"), nil
	}

	symbols, err := t.client.FindWorkspaceSymbols(ctx, symbolName)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to search workspace symbols: %v", err)), nil
	}

	toolResult := results.FindSymbolDefinitionsByNameToolResult{
		Arguments: results.FindSymbolDefinitionsByNameToolArgs{
			SymbolName: symbolName,
		},
	}
	for _, sym := range symbols {
		definition := newSymbolDefinition(sym.Location, results.NewSymbolKind(sym.Kind), t.config.WorkspaceRoot)
		definition.Name = sym.Name
		toolResult.Definitions = append(toolResult.Definitions, definition)
	}

	if len(toolResult.Definitions) == 0 {
		toolResult.Message = "No symbol definitions found. " +
			"This could mean that the symbol name is incorrect, or that the symbol is not defined in the workspace."
	} else {
		toolResult.Message = fmt.Sprintf("Found %d symbol definitions.", len(toolResult.Definitions))
	}

	return newJSONToolResult(toolResult)
}
