package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/gobwas/glob"
)

var (
	DefaultInclude     = []string{"**.ecl"}
	DefaultExcludeDirs = []string{".git", "node_modules"}
)

// Scanner lists the ECL files of a workspace
type Scanner struct {
	root        string
	include     []glob.Glob
	excludeDirs []glob.Glob
}

// NewScanner compiles include patterns, matched against slash-separated paths
// relative to root, and exclude patterns, matched against directory names
func NewScanner(root string, include []string, excludeDirs []string) (*Scanner, error) {
	if len(include) == 0 {
		include = DefaultInclude
	}
	if excludeDirs == nil {
		excludeDirs = DefaultExcludeDirs
	}

	s := &Scanner{root: root}
	for _, p := range include {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", p, err)
		}
		s.include = append(s.include, g)
	}
	for _, p := range excludeDirs {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude dir pattern %q: %w", p, err)
		}
		s.excludeDirs = append(s.excludeDirs, g)
	}
	return s, nil
}

// Root returns the directory being scanned
func (s *Scanner) Root() string {
	return s.root
}

// Scan returns the absolute paths of matching files in lexical order
func (s *Scanner) Scan(ctx context.Context) ([]string, error) {
	var files []string

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			if path == s.root {
				return nil
			}
			for _, g := range s.excludeDirs {
				if g.Match(d.Name()) {
					return filepath.SkipDir
				}
			}
			return nil
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return nil
		}
		if s.matches(filepath.ToSlash(rel)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan workspace %s: %w", s.root, err)
	}

	slog.Debug("Scanned workspace", "root", s.root, "file_count", len(files))
	return files, nil
}

func (s *Scanner) matches(rel string) bool {
	for _, g := range s.include {
		if g.Match(rel) {
			return true
		}
	}
	return false
}
