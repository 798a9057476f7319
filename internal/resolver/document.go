package resolver

import (
	"context"
	"strings"
)

// SourceExt is the conventional suffix of ECL source files
const SourceExt = ".ecl"

// Document is an immutable snapshot of an ECL source file split into lines
type Document struct {
	Path  string
	Lines []string
}

// NewDocument splits text on newlines, dropping a trailing carriage return from each line
func NewDocument(path string, text string) *Document {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return &Document{Path: path, Lines: lines}
}

// DocumentProvider opens documents by path. It returns an error when the
// document does not exist or cannot be read.
type DocumentProvider interface {
	Open(ctx context.Context, path string) (*Document, error)
}

// Location is a 0-indexed single-line span inside a document.
// Start and End are character (rune) offsets.
type Location struct {
	Path  string `json:"path"`
	Line  int    `json:"line"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Declaration is the site where an identifier is introduced
type Declaration struct {
	Name     string   `json:"name"`
	Kind     Kind     `json:"kind"`
	Location Location `json:"location"`
}

// Line returns the line at index i
func (d *Document) Line(i int) (string, bool) {
	if i < 0 || i >= len(d.Lines) {
		return "", false
	}
	return d.Lines[i], true
}
