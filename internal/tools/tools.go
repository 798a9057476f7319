package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names
const (
	ToolFindSymbolDefinition         = "find_symbol_definition"
	ToolGoToDefinitionByAnchor       = "go_to_definition_by_anchor"
	ToolFindSymbolDefinitionsByName  = "find_symbol_definitions_by_name"
	ToolFindSymbolReferencesByAnchor = "find_symbol_references_by_anchor"
	ToolListSymbolsInFile            = "list_symbols_in_file"
	ToolHoverInfo                    = "hover_info"
	ToolGetCompletion                = "get_completion"
)

const (
	definitionContextLines = 1
)

const anchorDescription = "Symbol anchor, which is included in tool responses. Don't try to parse or generate this yourself."

// newJSONToolResult marshals a tool result into an indented JSON text result
func newJSONToolResult(toolResult any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result into JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
