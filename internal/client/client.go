package client

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/averycrespi/ecl-mcp/internal/language"
	"github.com/averycrespi/ecl-mcp/internal/resolver"
	"github.com/averycrespi/ecl-mcp/internal/workspace"
	"github.com/averycrespi/ecl-mcp/pkg/types"
)

const fileScheme = "file://"

var _ types.Client = &EclClient{}

// EclClient implements the Client interface on top of the lexical resolver
type EclClient struct {
	workspaceRoot string
	provider      resolver.DocumentProvider
	resolver      *resolver.Resolver
	scanner       *workspace.Scanner
}

// NewEclClient creates a client that reads documents from the configured workspace
func NewEclClient(config types.Config) (*EclClient, error) {
	scanner, err := workspace.NewScanner(config.WorkspaceRoot, config.Include, config.ExcludeDirs)
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace scanner: %w", err)
	}

	return newEclClient(config.WorkspaceRoot, workspace.NewFileProvider(), scanner,
		resolver.WithMaxConcurrency(config.MaxConcurrency)), nil
}

func newEclClient(workspaceRoot string, provider resolver.DocumentProvider, scanner *workspace.Scanner, opts ...resolver.Option) *EclClient {
	slog.Debug("Creating new ECL client", "workspace_root", workspaceRoot)

	return &EclClient{
		workspaceRoot: workspaceRoot,
		provider:      provider,
		resolver:      resolver.New(provider, opts...),
		scanner:       scanner,
	}
}

func (c *EclClient) GoToDefinition(ctx context.Context, uri string, position types.Position) ([]types.Location, error) {
	slog.Debug("Getting symbol definition", "uri", uri, "line", position.Line, "character", position.Character)

	doc, err := c.open(ctx, uri)
	if err != nil {
		return nil, err
	}

	word, ok := wordAt(doc, position)
	if !ok {
		slog.Debug("No identifier at position", "uri", uri)
		return []types.Location{}, nil
	}

	return c.resolve(ctx, doc, word), nil
}

func (c *EclClient) FindDefinition(ctx context.Context, uri string, name string) ([]types.Location, error) {
	slog.Debug("Finding symbol definition by name", "uri", uri, "name", name)

	doc, err := c.open(ctx, uri)
	if err != nil {
		return nil, err
	}

	return c.resolve(ctx, doc, name), nil
}

func (c *EclClient) resolve(ctx context.Context, doc *resolver.Document, identifier string) []types.Location {
	decl, ok := c.resolver.Resolve(ctx, doc, identifier, c.workspaceRoot)
	if !ok {
		slog.Debug("No definitions found", "path", doc.Path, "identifier", identifier)
		return []types.Location{}
	}

	slog.Debug("Found symbol definition", "identifier", identifier, "path", decl.Location.Path, "line", decl.Location.Line)
	return []types.Location{toLocation(decl.Location)}
}

func (c *EclClient) FindReferences(ctx context.Context, uri string, position types.Position, includeDeclaration bool) ([]types.Location, error) {
	slog.Debug("Finding symbol references",
		"uri", uri,
		"line", position.Line,
		"character", position.Character,
		"include_declaration", includeDeclaration)

	doc, err := c.open(ctx, uri)
	if err != nil {
		return nil, err
	}

	locations := []types.Location{}
	word, ok := wordAt(doc, position)
	if !ok {
		return locations, nil
	}

	for loc := range resolver.FindAllReferences(doc, word, includeDeclaration) {
		locations = append(locations, toLocation(loc))
	}

	slog.Debug("Found symbol references", "count", len(locations), "uri", uri)
	return locations, nil
}

func (c *EclClient) GetHoverInfo(ctx context.Context, uri string, position types.Position) (string, error) {
	slog.Debug("Getting hover info", "uri", uri, "line", position.Line, "character", position.Character)

	doc, err := c.open(ctx, uri)
	if err != nil {
		return "", err
	}

	word, ok := wordAt(doc, position)
	if !ok {
		return "", nil
	}

	if keywordDoc, ok := language.Doc(word); ok {
		return keywordDoc, nil
	}

	decl, ok := c.resolver.Resolve(ctx, doc, word, c.workspaceRoot)
	if !ok {
		return "", nil
	}

	declDoc := doc
	if decl.Location.Path != doc.Path {
		if declDoc, err = c.provider.Open(ctx, decl.Location.Path); err != nil {
			slog.Debug("Failed to reopen declaring document", "path", decl.Location.Path, "error", err)
			return "", nil
		}
	}

	line, _ := declDoc.Line(decl.Location.Line)
	return fmt.Sprintf("```ecl\n%s\n```\n%s `%s` declared in %s:%d",
		strings.TrimSpace(line), decl.Kind, decl.Name, c.relative(decl.Location.Path), decl.Location.Line+1), nil
}

func (c *EclClient) GetCompletion(ctx context.Context, uri string, position types.Position) ([]types.CompletionItem, error) {
	slog.Debug("Getting completion", "uri", uri, "line", position.Line, "character", position.Character)

	doc, err := c.open(ctx, uri)
	if err != nil {
		return nil, err
	}

	line, _ := doc.Line(position.Line)
	runes := []rune(line)
	prefix := string(runes[:max(0, min(position.Character, len(runes)))])

	var items []types.CompletionItem
	for _, item := range language.Completions(prefix) {
		items = append(items, types.CompletionItem{
			Label:      item.Label,
			Kind:       string(item.Kind),
			Detail:     item.Detail,
			InsertText: item.InsertText,
		})
	}
	return items, nil
}

func (c *EclClient) GetDocumentSymbols(ctx context.Context, uri string) ([]types.DocumentSymbol, error) {
	slog.Debug("Getting document symbols", "uri", uri)

	doc, err := c.open(ctx, uri)
	if err != nil {
		return nil, err
	}

	symbols := []types.DocumentSymbol{}
	for _, sym := range resolver.DocumentSymbols(doc) {
		detail := sym.Kind.String()
		if sym.Detail != "" {
			detail = sym.Detail
		}
		line := sym.Selection.Line
		symbols = append(symbols, types.DocumentSymbol{
			Name:   sym.Name,
			Detail: detail,
			Kind:   symbolKind(sym.Kind),
			Range: types.Range{
				Start: types.Position{Line: line, Character: 0},
				End:   types.Position{Line: line, Character: sym.LineEnd},
			},
			SelectionRange: toLocation(sym.Selection).Range,
		})
	}

	slog.Debug("Found document symbols", "count", len(symbols), "uri", uri)
	return symbols, nil
}

func (c *EclClient) FindWorkspaceSymbols(ctx context.Context, name string) ([]types.SymbolInformation, error) {
	slog.Debug("Finding workspace symbols", "name", name, "workspace_root", c.scanner.Root())

	files, err := c.scanner.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find workspace symbols: %w", err)
	}

	symbols := []types.SymbolInformation{}
	for _, path := range files {
		doc, err := c.provider.Open(ctx, path)
		if err != nil {
			slog.Debug("Skipping unreadable workspace file", "path", path, "error", err)
			continue
		}

		if decl, ok := resolver.FindLocalDeclaration(doc, name); ok {
			symbols = append(symbols, types.SymbolInformation{
				Name:     decl.Name,
				Kind:     symbolKind(decl.Kind),
				Location: toLocation(decl.Location),
			})
		}
	}

	slog.Debug("Found workspace symbols", "count", len(symbols), "name", name)
	return symbols, nil
}

func (c *EclClient) open(ctx context.Context, uri string) (*resolver.Document, error) {
	doc, err := c.provider.Open(ctx, pathFromURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to open document %s: %w", uri, err)
	}
	return doc, nil
}

func (c *EclClient) relative(path string) string {
	if rel, err := filepath.Rel(c.workspaceRoot, path); err == nil {
		return rel
	}
	return filepath.Base(path)
}

func wordAt(doc *resolver.Document, position types.Position) (string, bool) {
	line, ok := doc.Line(position.Line)
	if !ok {
		return "", false
	}
	word, _, _, ok := resolver.WordAt(line, position.Character)
	return word, ok
}

func symbolKind(kind resolver.Kind) int {
	if kind == resolver.KindVariable {
		return types.SymbolKindVariable
	}
	return types.SymbolKindFunction
}

func toLocation(loc resolver.Location) types.Location {
	return types.Location{
		URI: fileScheme + loc.Path,
		Range: types.Range{
			Start: types.Position{Line: loc.Line, Character: loc.Start},
			End:   types.Position{Line: loc.Line, Character: loc.End},
		},
	}
}

func pathFromURI(uri string) string {
	return strings.TrimPrefix(uri, fileScheme)
}
