package client

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/averycrespi/ecl-mcp/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkspace(t *testing.T, files map[string]string) (string, *EclClient) {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	client, err := NewEclClient(types.Config{WorkspaceRoot: root, MaxConcurrency: 2})
	require.NoError(t, err)
	return root, client
}

func fileURI(root string, name string) string {
	return "file://" + filepath.Join(root, name)
}

func TestNewEclClient_InvalidPattern(t *testing.T) {
	_, err := NewEclClient(types.Config{WorkspaceRoot: t.TempDir(), Include: []string{"[bad"}})
	assert.Error(t, err)
}

func TestGoToDefinition(t *testing.T) {
	root, client := newTestWorkspace(t, map[string]string{
		"a.ecl": "import \"b\"\nvar local = 1\nprintln(x + local)",
		"b.ecl": "var x = 2",
	})
	ctx := context.Background()

	t.Run("imported declaration", func(t *testing.T) {
		locations, err := client.GoToDefinition(ctx, fileURI(root, "a.ecl"), types.Position{Line: 2, Character: 8})
		require.NoError(t, err)
		assert.Equal(t, []types.Location{{
			URI: fileURI(root, "b.ecl"),
			Range: types.Range{
				Start: types.Position{Line: 0, Character: 4},
				End:   types.Position{Line: 0, Character: 5},
			},
		}}, locations)
	})

	t.Run("local declaration", func(t *testing.T) {
		locations, err := client.GoToDefinition(ctx, fileURI(root, "a.ecl"), types.Position{Line: 2, Character: 13})
		require.NoError(t, err)
		require.Len(t, locations, 1)
		assert.Equal(t, fileURI(root, "a.ecl"), locations[0].URI)
		assert.Equal(t, 1, locations[0].Range.Start.Line)
	})

	t.Run("no identifier at position", func(t *testing.T) {
		locations, err := client.GoToDefinition(ctx, fileURI(root, "a.ecl"), types.Position{Line: 2, Character: 10})
		require.NoError(t, err)
		assert.Empty(t, locations)
	})

	t.Run("line out of range", func(t *testing.T) {
		locations, err := client.GoToDefinition(ctx, fileURI(root, "a.ecl"), types.Position{Line: 40, Character: 0})
		require.NoError(t, err)
		assert.Empty(t, locations)
	})

	t.Run("missing source document", func(t *testing.T) {
		_, err := client.GoToDefinition(ctx, fileURI(root, "nope.ecl"), types.Position{})
		assert.ErrorContains(t, err, "failed to open document")
	})
}

func TestFindDefinition_MissingImport(t *testing.T) {
	root, client := newTestWorkspace(t, map[string]string{
		"a.ecl": "import \"missing\"\nprintln(x)",
	})

	locations, err := client.FindDefinition(context.Background(), fileURI(root, "a.ecl"), "x")
	require.NoError(t, err)
	assert.Empty(t, locations)
}

func TestFindDefinition_ImportFromWorkspaceRoot(t *testing.T) {
	root, client := newTestWorkspace(t, map[string]string{
		"src/main.ecl": "import \"shared\"\nhelper()",
		"shared.ecl":   "func helper() {}",
	})

	locations, err := client.FindDefinition(context.Background(), fileURI(root, "src/main.ecl"), "helper")
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, fileURI(root, "shared.ecl"), locations[0].URI)
}

func TestFindReferences(t *testing.T) {
	root, client := newTestWorkspace(t, map[string]string{
		"a.ecl": "var <int>count = 0\ncount = count + 1",
	})
	ctx := context.Background()

	locations, err := client.FindReferences(ctx, fileURI(root, "a.ecl"), types.Position{Line: 1, Character: 2}, false)
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, 0, locations[0].Range.Start.Character)
	assert.Equal(t, 8, locations[1].Range.Start.Character)

	locations, err = client.FindReferences(ctx, fileURI(root, "a.ecl"), types.Position{Line: 1, Character: 2}, true)
	require.NoError(t, err)
	assert.Len(t, locations, 3)
}

func TestGetHoverInfo(t *testing.T) {
	root, client := newTestWorkspace(t, map[string]string{
		"a.ecl": "import \"b\"\nwhile (go) { shout(x) }",
		"b.ecl": "\n  func shout(s) { return s }",
	})
	ctx := context.Background()

	hover, err := client.GetHoverInfo(ctx, fileURI(root, "a.ecl"), types.Position{Line: 1, Character: 2})
	require.NoError(t, err)
	assert.Contains(t, hover, "Loop statement")

	hover, err = client.GetHoverInfo(ctx, fileURI(root, "a.ecl"), types.Position{Line: 1, Character: 15})
	require.NoError(t, err)
	assert.Equal(t, "```ecl\nfunc shout(s) { return s }\n```\nfunction `shout` declared in b.ecl:2", hover)

	hover, err = client.GetHoverInfo(ctx, fileURI(root, "a.ecl"), types.Position{Line: 1, Character: 19})
	require.NoError(t, err)
	assert.Empty(t, hover)
}

func TestGetCompletion(t *testing.T) {
	root, client := newTestWorkspace(t, map[string]string{
		"a.ecl": "var <",
	})

	items, err := client.GetCompletion(context.Background(), fileURI(root, "a.ecl"), types.Position{Line: 0, Character: 5})
	require.NoError(t, err)
	require.NotEmpty(t, items)
	assert.Equal(t, types.CompletionItem{Label: "int>", Kind: "type", Detail: "Type annotation"}, items[0])
}

func TestGetDocumentSymbols(t *testing.T) {
	root, client := newTestWorkspace(t, map[string]string{
		"a.ecl": "func add(a, b) { return a + b }\nvar <int>total = add(1, 2)",
	})

	symbols, err := client.GetDocumentSymbols(context.Background(), fileURI(root, "a.ecl"))
	require.NoError(t, err)
	assert.Equal(t, []types.DocumentSymbol{
		{
			Name:           "add",
			Detail:         "function",
			Kind:           types.SymbolKindFunction,
			Range:          types.Range{Start: types.Position{Line: 0, Character: 0}, End: types.Position{Line: 0, Character: 31}},
			SelectionRange: types.Range{Start: types.Position{Line: 0, Character: 5}, End: types.Position{Line: 0, Character: 8}},
		},
		{
			Name:           "total",
			Detail:         "int",
			Kind:           types.SymbolKindVariable,
			Range:          types.Range{Start: types.Position{Line: 1, Character: 0}, End: types.Position{Line: 1, Character: 26}},
			SelectionRange: types.Range{Start: types.Position{Line: 1, Character: 9}, End: types.Position{Line: 1, Character: 14}},
		},
	}, symbols)
}

func TestFindWorkspaceSymbols(t *testing.T) {
	root, client := newTestWorkspace(t, map[string]string{
		"main.ecl":      "add(1, 2)",
		"math.ecl":      "func add(a, b) { return a + b }",
		"lib/old.ecl":   "var add = 0",
		"lib/notes.txt": "func add() {}",
	})

	symbols, err := client.FindWorkspaceSymbols(context.Background(), "add")
	require.NoError(t, err)
	require.Len(t, symbols, 2)
	assert.Equal(t, fileURI(root, "lib/old.ecl"), symbols[0].Location.URI)
	assert.Equal(t, types.SymbolKindVariable, symbols[0].Kind)
	assert.Equal(t, fileURI(root, "math.ecl"), symbols[1].Location.URI)
	assert.Equal(t, types.SymbolKindFunction, symbols[1].Kind)
}
