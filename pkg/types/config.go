package types

// Config represents the configuration for the ecl-mcp server
type Config struct {
	WorkspaceRoot  string   `json:"workspace_root" mapstructure:"workspace_root"`
	LogLevel       string   `json:"log_level,omitempty" mapstructure:"log_level"`
	MaxConcurrency int      `json:"max_concurrency,omitempty" mapstructure:"max_concurrency"`
	Include        []string `json:"include,omitempty" mapstructure:"include"`
	ExcludeDirs    []string `json:"exclude_dirs,omitempty" mapstructure:"exclude_dirs"`
}
