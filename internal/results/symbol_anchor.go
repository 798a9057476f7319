package results

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/averycrespi/ecl-mcp/pkg/types"
)

const (
	anchorScheme = "ecl://"
)

// SymbolAnchor encodes the fixed position of a symbol in a file as
// ecl://FILE#LINE:CHAR, using 1-indexed display coordinates
type SymbolAnchor string

// NewSymbolAnchor creates a new SymbolAnchor from a file, display line, and display character
func NewSymbolAnchor(file string, displayLine int, displayChar int) SymbolAnchor {
	return SymbolAnchor(fmt.Sprintf("%s%s#%d:%d", anchorScheme, file, displayLine, displayChar))
}

// String returns the string representation of the anchor
func (a SymbolAnchor) String() string {
	return string(a)
}

// IsValid checks if the anchor has a valid format
func (a SymbolAnchor) IsValid() bool {
	_, err := a.ToSymbolLocation()
	return err == nil
}

// ToFilePosition converts the anchor to a file path and a 0-indexed position
func (a SymbolAnchor) ToFilePosition() (string, types.Position, error) {
	loc, err := a.ToSymbolLocation()
	if err != nil {
		return "", types.Position{}, err
	}
	return loc.File, types.Position{
		Line:      loc.DisplayLine - 1,
		Character: loc.DisplayChar - 1,
	}, nil
}

// ToSymbolLocation parses the anchor into a SymbolLocation.
// The file part may itself contain '#'; the last one separates the coordinates.
func (a SymbolAnchor) ToSymbolLocation() (SymbolLocation, error) {
	rest, ok := strings.CutPrefix(string(a), anchorScheme)
	if !ok {
		return SymbolLocation{}, fmt.Errorf("invalid anchor scheme, expected '%s', got: %s", anchorScheme, a)
	}

	sep := strings.LastIndex(rest, "#")
	if sep < 0 {
		return SymbolLocation{}, fmt.Errorf("invalid anchor format, expected '%sFILE#LINE:CHAR', got: %s", anchorScheme, a)
	}
	file, coords := rest[:sep], rest[sep+1:]
	if file == "" {
		return SymbolLocation{}, fmt.Errorf("empty file in anchor: %s", a)
	}

	lineStr, charStr, ok := strings.Cut(coords, ":")
	if !ok {
		return SymbolLocation{}, fmt.Errorf("invalid coordinate format, expected 'LINE:CHAR', got: %s", coords)
	}

	line, err := parseDisplayCoordinate("line", lineStr)
	if err != nil {
		return SymbolLocation{}, err
	}
	char, err := parseDisplayCoordinate("character", charStr)
	if err != nil {
		return SymbolLocation{}, err
	}

	return SymbolLocation{File: file, DisplayLine: line, DisplayChar: char}, nil
}

func parseDisplayCoordinate(name string, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s number '%s': %w", name, s, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("display %s must be positive (starts at 1): %d", name, n)
	}
	return n, nil
}
