package results

// FindSymbolDefinitionsByNameToolResult represents the result of the find symbol definitions by name tool
type FindSymbolDefinitionsByNameToolResult struct {
	Message     string                              `json:"message"`
	Arguments   FindSymbolDefinitionsByNameToolArgs `json:"arguments"`
	Definitions []SymbolDefinition                  `json:"definitions,omitempty"`
}

// FindSymbolDefinitionsByNameToolArgs represents the arguments for the find symbol definitions by name tool
type FindSymbolDefinitionsByNameToolArgs struct {
	SymbolName string `json:"symbol_name"`
}
