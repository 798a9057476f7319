package workspace

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFileProvider_Open(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "main.ecl")
	writeFile(t, path, "var x = 1\r\nprintln(x)\n")

	doc, err := NewFileProvider().Open(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Path)
	assert.Equal(t, []string{"var x = 1", "println(x)", ""}, doc.Lines)
}

func TestFileProvider_OpenErrors(t *testing.T) {
	root := t.TempDir()
	provider := NewFileProvider()

	_, err := provider.Open(context.Background(), filepath.Join(root, "missing.ecl"))
	assert.Error(t, err)

	_, err = provider.Open(context.Background(), root)
	assert.ErrorContains(t, err, "directory")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = provider.Open(ctx, root)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScanner_Scan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.ecl"), "")
	writeFile(t, filepath.Join(root, "lib", "math.ecl"), "")
	writeFile(t, filepath.Join(root, "lib", "notes.txt"), "")
	writeFile(t, filepath.Join(root, "node_modules", "dep.ecl"), "")
	writeFile(t, filepath.Join(root, ".git", "hook.ecl"), "")

	scanner, err := NewScanner(root, nil, nil)
	require.NoError(t, err)

	files, err := scanner.Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "lib", "math.ecl"),
		filepath.Join(root, "main.ecl"),
	}, files)
}

func TestScanner_CustomPatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.ecl"), "")
	writeFile(t, filepath.Join(root, "lib", "math.ecl"), "")
	writeFile(t, filepath.Join(root, "vendor", "dep.ecl"), "")

	scanner, err := NewScanner(root, []string{"lib/*.ecl", "vendor/**"}, []string{"vend*"})
	require.NoError(t, err)

	files, err := scanner.Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "lib", "math.ecl")}, files)
}

func TestNewScanner_InvalidPattern(t *testing.T) {
	_, err := NewScanner(t.TempDir(), []string{"[unclosed"}, nil)
	assert.ErrorContains(t, err, "invalid include pattern")
}
