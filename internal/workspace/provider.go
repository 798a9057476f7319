package workspace

import (
	"context"
	"fmt"
	"os"

	"github.com/averycrespi/ecl-mcp/internal/resolver"
)

var _ resolver.DocumentProvider = &FileProvider{}

// FileProvider opens documents from the local file system
type FileProvider struct{}

// NewFileProvider creates a new file provider
func NewFileProvider() *FileProvider {
	return &FileProvider{}
}

// Open reads the file at path. Directories and missing files fail to open.
func (p *FileProvider) Open(ctx context.Context, path string) (*resolver.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat document: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("document is a directory: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return resolver.NewDocument(path, string(data)), nil
}
