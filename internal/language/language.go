// Package language describes the ECL vocabulary: keywords, types, and builtins.
package language

import "strings"

// Keywords are the reserved words of ECL
var Keywords = []string{
	"var", "func", "expr", "if", "else", "for", "while", "in",
	"return", "print", "println", "input", "import", "true", "false",
}

// Types are the ECL type names usable in a var <type> annotation
var Types = []string{"int", "str", "bool", "float", "double"}

// Builtin is a function provided by the ECL runtime
type Builtin struct {
	Name   string
	Detail string
}

// Builtins are the functions provided by the ECL runtime
var Builtins = []Builtin{
	{Name: "print", Detail: "Print to the console"},
	{Name: "println", Detail: "Print to the console followed by a newline"},
	{Name: "input", Detail: "Read user input"},
}

var docs = map[string]string{
	"var":     "Declare a variable: `var <type>name = value` or `var name = value`",
	"func":    "Declare a function: `func name(parameters) { body }`",
	"expr":    "Declare an expression function: `expr name(parameters) { body }`",
	"if":      "Conditional statement: `if (condition) { body }`",
	"else":    "Else branch of a conditional: `} else { body }`",
	"for":     "Loop statement: `for i in range { body }`",
	"while":   "Loop statement: `while (condition) { body }`",
	"print":   "Print function: `print(message)`",
	"println": "Print function: `println(message)`",
	"input":   "Input function: `input \"prompt\", variable`",
	"import":  "Import a file: `import \"filename.ecl\"`",
	"return":  "Return statement: `return value`",
	"int":     "Integer type",
	"str":     "String type",
	"bool":    "Boolean type",
	"float":   "Floating point type",
	"double":  "Double precision floating point type",
}

// Doc returns the hover documentation for a keyword or type name
func Doc(word string) (string, bool) {
	doc, ok := docs[word]
	return doc, ok
}

// IsKeyword reports whether word is an ECL keyword or type name
func IsKeyword(word string) bool {
	for _, list := range [][]string{Keywords, Types} {
		for _, w := range list {
			if w == word {
				return true
			}
		}
	}
	return false
}

// ItemKind categorizes a completion item
type ItemKind string

const (
	ItemKindKeyword  ItemKind = "keyword"
	ItemKindType     ItemKind = "type"
	ItemKindFunction ItemKind = "function"
	ItemKindOperator ItemKind = "operator"
)

// CompletionItem is a single completion suggestion
type CompletionItem struct {
	Label      string
	Kind       ItemKind
	Detail     string
	InsertText string
}

// Completions returns the suggestions for the text preceding the cursor.
// After "<" only type annotations are offered.
func Completions(linePrefix string) []CompletionItem {
	if strings.HasSuffix(linePrefix, "<") {
		items := make([]CompletionItem, 0, len(Types))
		for _, t := range Types {
			items = append(items, CompletionItem{Label: t + ">", Kind: ItemKindType, Detail: "Type annotation"})
		}
		return items
	}

	items := make([]CompletionItem, 0, len(Keywords)+len(Types)+len(Builtins)+1)
	for _, k := range Keywords {
		items = append(items, CompletionItem{Label: k, Kind: ItemKindKeyword, Detail: "ECL keyword"})
	}
	for _, t := range Types {
		items = append(items, CompletionItem{Label: t, Kind: ItemKindType, Detail: "ECL type"})
	}
	for _, b := range Builtins {
		items = append(items, CompletionItem{Label: b.Name, Kind: ItemKindFunction, Detail: b.Detail})
	}

	if strings.HasSuffix(linePrefix, ".") {
		items = append(items, CompletionItem{
			Label:      ".",
			Kind:       ItemKindOperator,
			Detail:     "Range operator (..)",
			InsertText: ".",
		})
	}

	return items
}
