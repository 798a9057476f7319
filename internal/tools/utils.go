package tools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/averycrespi/ecl-mcp/internal/results"
	"github.com/averycrespi/ecl-mcp/pkg/types"
	"github.com/mark3labs/mcp-go/mcp"
)

const fileScheme = "file://"

// PathToUri converts a file path, relative to the workspace root or absolute, to a file URI
func PathToUri(filePath string, workspaceRoot string) string {
	if strings.HasPrefix(filePath, fileScheme) {
		return filePath
	}

	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(workspaceRoot, filePath)
	}

	return fileScheme + filePath
}

// UriToPath converts a file URI to a local file path
func UriToPath(uri string) string {
	return strings.TrimPrefix(uri, fileScheme)
}

// GetRelativePath converts absolute path to relative path from workspace root
func GetRelativePath(absolutePath, workspaceRoot string) string {
	if rel, err := filepath.Rel(workspaceRoot, absolutePath); err == nil {
		return rel
	}
	return filepath.Base(absolutePath)
}

// GetPosition extracts a 1-indexed display position from the request and converts it to 0-indexed
func GetPosition(req mcp.CallToolRequest) (types.Position, error) {
	line := int(mcp.ParseFloat64(req, "line", 0))
	character := int(mcp.ParseFloat64(req, "character", 0))

	if line < 1 {
		return types.Position{}, fmt.Errorf("line must be positive (starts at 1): %d", line)
	}
	if character < 1 {
		return types.Position{}, fmt.Errorf("character must be positive (starts at 1): %d", character)
	}

	return types.Position{
		Line:      line - 1,
		Character: character - 1,
	}, nil
}

// ToSymbolLocation converts an LSP-style location to a workspace-relative display location
func ToSymbolLocation(loc types.Location, workspaceRoot string) results.SymbolLocation {
	return results.SymbolLocation{
		File:        GetRelativePath(UriToPath(loc.URI), workspaceRoot),
		DisplayLine: loc.Range.Start.Line + 1,      // Convert 0-indexed line to display line
		DisplayChar: loc.Range.Start.Character + 1, // Convert 0-indexed character to display character
	}
}

// ReadSourceLines reads lines startLine through endLine (0-indexed, inclusive),
// marking highlightLine
func ReadSourceLines(reader io.Reader, startLine, endLine, highlightLine int) ([]results.SourceLine, error) {
	var lines []results.SourceLine
	scanner := bufio.NewScanner(reader)

	for currentLine := 0; currentLine <= endLine && scanner.Scan(); currentLine++ {
		if currentLine < startLine {
			continue
		}
		lines = append(lines, results.SourceLine{
			Number:    currentLine + 1,
			Content:   scanner.Text(),
			Highlight: currentLine == highlightLine,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan source lines: %w", err)
	}

	return lines, nil
}

// ReadSourceContext reads the lines surrounding line (0-indexed), highlighting it
func ReadSourceContext(reader io.Reader, line int, contextLines int) (*results.SourceContext, error) {
	lines, err := ReadSourceLines(reader, max(0, line-contextLines), line+contextLines, line)
	if err != nil {
		return nil, fmt.Errorf("failed to read source lines: %w", err)
	}
	return &results.SourceContext{Lines: lines}, nil
}

// newSymbolDefinition builds a definition result, enriched with the symbol
// name and surrounding source when the file can be read
func newSymbolDefinition(loc types.Location, kind results.SymbolKind, workspaceRoot string) results.SymbolDefinition {
	symbolLoc := ToSymbolLocation(loc, workspaceRoot)
	definition := results.SymbolDefinition{
		Kind:     kind,
		Location: symbolLoc,
		Anchor:   symbolLoc.ToAnchor(),
	}

	file, err := os.Open(UriToPath(loc.URI))
	if err != nil {
		return definition
	}
	defer file.Close()

	sourceContext, err := ReadSourceContext(file, loc.Range.Start.Line, definitionContextLines)
	if err != nil {
		return definition
	}
	definition.Source = sourceContext

	for _, line := range sourceContext.Lines {
		if line.Highlight {
			definition.Name = sliceRunes(line.Content, loc.Range.Start.Character, loc.Range.End.Character)
		}
	}

	return definition
}

func sliceRunes(s string, start int, end int) string {
	runes := []rune(s)
	if start < 0 || end > len(runes) || start >= end {
		return ""
	}
	return string(runes[start:end])
}
