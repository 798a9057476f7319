package results

// ListSymbolsInFileToolResult represents the result of the list_symbols_in_file tool
type ListSymbolsInFileToolResult struct {
	Message     string                    `json:"message"`
	Arguments   ListSymbolsInFileToolArgs `json:"arguments"`
	FileSymbols []FileSymbol              `json:"file_symbols,omitempty"`
}

// ListSymbolsInFileToolArgs represents the arguments for the list_symbols_in_file tool
type ListSymbolsInFileToolArgs struct {
	FilePath string `json:"file_path"`
}

// FileSymbol represents a symbol declared in a file
type FileSymbol struct {
	Name     string         `json:"name"`
	Kind     SymbolKind     `json:"kind"`
	Detail   string         `json:"detail,omitempty"`
	Location SymbolLocation `json:"location"`
	Anchor   SymbolAnchor   `json:"anchor"`
}
