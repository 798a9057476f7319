package results

// SymbolDefinition represents a symbol definition result
type SymbolDefinition struct {
	Name     string         `json:"name,omitempty"`
	Kind     SymbolKind     `json:"kind,omitempty"`
	Location SymbolLocation `json:"location"`
	Anchor   SymbolAnchor   `json:"anchor"`
	Source   *SourceContext `json:"source,omitempty"`
}

// FindSymbolDefinitionToolResult represents the result of the find symbol definition tool
type FindSymbolDefinitionToolResult struct {
	Message     string                       `json:"message"`
	Arguments   FindSymbolDefinitionToolArgs `json:"arguments"`
	Definitions []SymbolDefinition           `json:"definitions,omitempty"`
}

// FindSymbolDefinitionToolArgs represents the arguments for the find symbol definition tool
type FindSymbolDefinitionToolArgs struct {
	FilePath   string `json:"file_path"`
	SymbolName string `json:"symbol_name"`
}

// GoToDefinitionByAnchorToolResult represents the result of the go to definition by anchor tool
type GoToDefinitionByAnchorToolResult struct {
	Message     string                         `json:"message"`
	Arguments   GoToDefinitionByAnchorToolArgs `json:"arguments"`
	Definitions []SymbolDefinition             `json:"definitions,omitempty"`
}

// GoToDefinitionByAnchorToolArgs represents the arguments for the go to definition by anchor tool
type GoToDefinitionByAnchorToolArgs struct {
	SymbolAnchor string `json:"symbol_anchor"`
}
