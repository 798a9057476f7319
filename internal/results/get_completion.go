package results

// GetCompletionToolResult represents the result of the get_completion tool
type GetCompletionToolResult struct {
	Message   string           `json:"message"`
	Arguments PositionToolArgs `json:"arguments"`
	Items     []CompletionItem `json:"items,omitempty"`
}

// CompletionItem represents a completion suggestion
type CompletionItem struct {
	Label      string `json:"label"`
	Kind       string `json:"kind"`
	Detail     string `json:"detail,omitempty"`
	InsertText string `json:"insert_text,omitempty"`
}
