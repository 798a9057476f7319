package project

const (
	Name    = "ecl-mcp"
	Version = "0.1.0"
)
