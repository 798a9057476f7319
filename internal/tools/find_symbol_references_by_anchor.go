package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/averycrespi/ecl-mcp/internal/results"
	"github.com/averycrespi/ecl-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// FindSymbolReferencesByAnchorTool handles find symbol references by anchor requests
type FindSymbolReferencesByAnchorTool struct {
	client types.Client
	config types.Config
}

// NewFindSymbolReferencesByAnchorTool creates a new find symbol references by anchor tool
func NewFindSymbolReferencesByAnchorTool(client types.Client, config types.Config) *FindSymbolReferencesByAnchorTool {
	return &FindSymbolReferencesByAnchorTool{
		client: client,
		config: config,
	}
}

// GetTool returns the MCP tool definition
func (t *FindSymbolReferencesByAnchorTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolFindSymbolReferencesByAnchor,
		mcp.WithDescription("Find all references to a symbol by its anchor within the anchored ECL file, "+
			"returning a list of symbol references"),
		mcp.WithString("symbol_anchor", mcp.Required(), mcp.Description(anchorDescription)),
		mcp.WithBoolean("include_declaration",
			mcp.Description("Include occurrences on lines that declare the symbol (default: false)")),
	)
	return tool
}

// Handle processes the tool request
func (t *FindSymbolReferencesByAnchorTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	anchorStr := mcp.ParseString(req, "symbol_anchor", "")
	if anchorStr == "" {
		slog.Debug("MCP tool called with missing symbol_anchor parameter", "tool", ToolFindSymbolReferencesByAnchor)
		return mcp.NewToolResultError("symbol_anchor parameter is required"), nil
	}
	includeDeclaration := mcp.ParseBoolean(req, "include_declaration", false)

	slog.Debug("MCP tool called",
		"tool", ToolFindSymbolReferencesByAnchor,
		"symbol_anchor", anchorStr,
		"include_declaration", includeDeclaration)

	file, position, err := results.SymbolAnchor(anchorStr).ToFilePosition()
	if err != nil {
		slog.Debug("Invalid anchor format",
			"tool", ToolFindSymbolReferencesByAnchor,
			"symbol_anchor", anchorStr,
			"error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Invalid anchor format: %v", err)), nil
	}

	uri := PathToUri(file, t.config.WorkspaceRoot)
	refLocations, err := t.client.FindReferences(ctx, uri, position, includeDeclaration)
	if err != nil {
		slog.Error("Failed to find references",
			"tool", ToolFindSymbolReferencesByAnchor,
			"symbol_anchor", anchorStr,
			"uri", uri,
			"error", err)
		return mcp.NewToolResultError(
			fmt.Sprintf("Failed to find references for anchor %s: %v", anchorStr, err),
		), nil
	}

	toolResult := results.FindSymbolReferencesByAnchorToolResult{
		Arguments: results.FindSymbolReferencesByAnchorToolArgs{
			SymbolAnchor:       anchorStr,
			IncludeDeclaration: includeDeclaration,
		},
		References: make([]results.SymbolReference, 0, len(refLocations)),
	}

	for _, refLoc := range refLocations {
		symbolLoc := ToSymbolLocation(refLoc, t.config.WorkspaceRoot)
		toolResult.References = append(toolResult.References, results.SymbolReference{
			Location: symbolLoc,
			Anchor:   symbolLoc.ToAnchor(),
		})
	}

	if len(toolResult.References) == 0 {
		toolResult.Message = "No references found for the symbol anchor. " +
			"This could mean that the symbol has no references, or that your symbol anchor is out of date. " +
			"You can try getting a fresh symbol anchor from another tool."
	} else {
		toolResult.Message = fmt.Sprintf("Found %d references for the symbol anchor.", len(toolResult.References))
	}

	slog.Debug("MCP tool completed successfully",
		"tool", ToolFindSymbolReferencesByAnchor,
		"symbol_anchor", anchorStr,
		"reference_count", len(toolResult.References))

	return newJSONToolResult(toolResult)
}
