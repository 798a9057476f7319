package resolver

import (
	"path/filepath"
	"regexp"
	"strings"
)

var importPattern = regexp.MustCompile(`import\s+["']([^"']+)["']`)

// ExtractImports returns the import paths of every import statement in
// source order, with a trailing source extension removed
func ExtractImports(lines []string) []string {
	var imports []string
	for _, line := range lines {
		for _, match := range importPattern.FindAllStringSubmatch(line, -1) {
			imports = append(imports, strings.TrimSuffix(match[1], SourceExt))
		}
	}
	return imports
}

// CandidatePaths returns the locations tried for importPath, in priority
// order: the importing document's directory first, then root. Each base is
// tried as written and with the source extension appended. An empty root
// falls back to the document's directory.
func CandidatePaths(docPath string, importPath string, root string) []string {
	dir := filepath.Dir(docPath)
	if root == "" {
		root = dir
	}

	return []string{
		filepath.Join(dir, importPath),
		filepath.Join(dir, importPath+SourceExt),
		filepath.Join(root, importPath),
		filepath.Join(root, importPath+SourceExt),
	}
}
