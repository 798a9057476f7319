package results

// HoverInfoToolResult represents the result of the hover_info tool
type HoverInfoToolResult struct {
	Message   string           `json:"message"`
	Arguments PositionToolArgs `json:"arguments"`
	HoverInfo string           `json:"hover_info,omitempty"`
}

// PositionToolArgs represents tool arguments naming a display position in a file
type PositionToolArgs struct {
	FilePath    string `json:"file_path"`
	DisplayLine int    `json:"line"`
	DisplayChar int    `json:"character"`
}
