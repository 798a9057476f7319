package types

import (
	"context"
)

// Client defines the ECL code intelligence interface consumed by the MCP tools
type Client interface {
	GoToDefinition(ctx context.Context, uri string, position Position) ([]Location, error)
	FindDefinition(ctx context.Context, uri string, name string) ([]Location, error)
	FindReferences(ctx context.Context, uri string, position Position, includeDeclaration bool) ([]Location, error)
	GetHoverInfo(ctx context.Context, uri string, position Position) (string, error)
	GetCompletion(ctx context.Context, uri string, position Position) ([]CompletionItem, error)
	GetDocumentSymbols(ctx context.Context, uri string) ([]DocumentSymbol, error)
	FindWorkspaceSymbols(ctx context.Context, name string) ([]SymbolInformation, error)
}

// Position represents a 0-indexed position in a text document
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range represents a range in a text document
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Location represents a location in a text document
type Location struct {
	URI   string `json:"uri"`
	Range Range  `json:"range"`
}

// SymbolInformation represents information about a symbol
type SymbolInformation struct {
	Name     string   `json:"name"`
	Kind     int      `json:"kind"`
	Location Location `json:"location"`
}

// DocumentSymbol represents a symbol declared within a document
type DocumentSymbol struct {
	Name           string `json:"name"`
	Detail         string `json:"detail,omitempty"`
	Kind           int    `json:"kind"`
	Range          Range  `json:"range"`
	SelectionRange Range  `json:"selectionRange"`
}

// CompletionItem represents a completion item
type CompletionItem struct {
	Label      string `json:"label"`
	Kind       string `json:"kind"`
	Detail     string `json:"detail,omitempty"`
	InsertText string `json:"insertText,omitempty"`
}

// Symbol kinds, numbered as in the LSP specification
// See: https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#symbolKind
const (
	SymbolKindFunction = 12
	SymbolKindVariable = 13
)
