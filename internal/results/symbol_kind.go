package results

import "github.com/averycrespi/ecl-mcp/pkg/types"

// SymbolKind represents the type of a symbol as an enum
type SymbolKind string

const (
	SymbolKindFunction SymbolKind = "function"
	SymbolKindVariable SymbolKind = "variable"
	SymbolKindUnknown  SymbolKind = "unknown"
)

var symbolKindMap = map[int]SymbolKind{
	types.SymbolKindFunction: SymbolKindFunction,
	types.SymbolKindVariable: SymbolKindVariable,
}

// NewSymbolKind returns the SymbolKind for a given LSP symbol kind
func NewSymbolKind(kind int) SymbolKind {
	symbolKind, ok := symbolKindMap[kind]
	if !ok {
		return SymbolKindUnknown
	}
	return symbolKind
}
