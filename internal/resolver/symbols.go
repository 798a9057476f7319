package resolver

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	functionSymbolPattern = regexp.MustCompile(`^(func|expr)\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`)
	variableSymbolPattern = regexp.MustCompile(`^var\s+(?:<([^>]+)>)?([a-zA-Z_][a-zA-Z0-9_]*)`)
)

// Symbol is a declaration listed in a document outline
type Symbol struct {
	Name string
	Kind Kind
	// Detail holds the type annotation of a variable, if any
	Detail string
	// Selection spans the symbol name
	Selection Location
	// LineEnd is the character length of the declaring line
	LineEnd int
}

// DocumentSymbols lists the functions, expressions, and variables declared
// at the start of a line. A line may contribute both a function and a
// variable symbol.
func DocumentSymbols(doc *Document) []Symbol {
	if doc == nil {
		return nil
	}

	var symbols []Symbol
	for i, line := range doc.Lines {
		trimmed := strings.TrimLeft(line, " \t")
		offset := len(line) - len(trimmed)
		lineEnd := utf8.RuneCountInString(line)

		if m := functionSymbolPattern.FindStringSubmatchIndex(trimmed); m != nil {
			kind := KindFunction
			if trimmed[m[2]:m[3]] == "expr" {
				kind = KindExpression
			}
			symbols = append(symbols, newSymbol(doc.Path, i, line, offset+m[4], offset+m[5], kind, "", lineEnd))
		}

		if m := variableSymbolPattern.FindStringSubmatchIndex(trimmed); m != nil {
			var detail string
			if m[2] >= 0 {
				detail = trimmed[m[2]:m[3]]
			}
			symbols = append(symbols, newSymbol(doc.Path, i, line, offset+m[4], offset+m[5], KindVariable, detail, lineEnd))
		}
	}
	return symbols
}

func newSymbol(path string, lineIndex int, line string, from int, to int, kind Kind, detail string, lineEnd int) Symbol {
	start := utf8.RuneCountInString(line[:from])
	return Symbol{
		Name:   line[from:to],
		Kind:   kind,
		Detail: detail,
		Selection: Location{
			Path:  path,
			Line:  lineIndex,
			Start: start,
			End:   start + utf8.RuneCountInString(line[from:to]),
		},
		LineEnd: lineEnd,
	}
}
