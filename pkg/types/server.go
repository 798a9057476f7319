package types

import "context"

// Server serves MCP requests until ctx is done or its input closes
type Server interface {
	Serve(ctx context.Context) error
}
