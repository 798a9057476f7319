package resolver

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Kind identifies the declaration rule that introduced an identifier
type Kind int

const (
	KindFunction Kind = iota + 1
	KindExpression
	KindVariable
)

func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindExpression:
		return "expression"
	case KindVariable:
		return "variable"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

const namePlaceholder = "{name}"

// Rule is a lexical declaration pattern. Pattern contains a {name}
// placeholder that is replaced with the quoted identifier.
type Rule struct {
	Kind    Kind
	Pattern string
}

// Rules lists declaration rules in priority order. The first rule that
// matches a line decides the declaration kind.
var Rules = []Rule{
	{Kind: KindFunction, Pattern: `\bfunc\s+{name}\s*\(`},
	{Kind: KindExpression, Pattern: `\bexpr\s+{name}\s*\(`},
	{Kind: KindVariable, Pattern: `\bvar(?:\s+(?:<[^>]+>)?|\s*<[^>]+>){name}\b`},
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// IsIdentifier reports whether s is a non-empty run of word characters
func IsIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

type compiledRule struct {
	kind Kind
	re   *regexp.Regexp
}

// matcher holds the rules and the whole-word pattern compiled for one identifier
type matcher struct {
	identifier string
	rules      []compiledRule
	word       *regexp.Regexp
}

func newMatcher(identifier string) (*matcher, bool) {
	if !IsIdentifier(identifier) {
		return nil, false
	}

	quoted := regexp.QuoteMeta(identifier)
	m := &matcher{
		identifier: identifier,
		rules:      make([]compiledRule, 0, len(Rules)),
		word:       regexp.MustCompile(`\b` + quoted + `\b`),
	}
	for _, rule := range Rules {
		m.rules = append(m.rules, compiledRule{
			kind: rule.Kind,
			re:   regexp.MustCompile(strings.ReplaceAll(rule.Pattern, namePlaceholder, quoted)),
		})
	}
	return m, true
}

// declaration returns the kind of the first rule declaring the identifier on line
func (m *matcher) declaration(line string) (Kind, bool) {
	for _, rule := range m.rules {
		if rule.re.MatchString(line) {
			return rule.kind, true
		}
	}
	return 0, false
}

// location converts a byte span of line into a rune-based Location
func (m *matcher) location(path string, lineIndex int, line string, span []int) Location {
	start := utf8.RuneCountInString(line[:span[0]])
	return Location{
		Path:  path,
		Line:  lineIndex,
		Start: start,
		End:   start + utf8.RuneCountInString(line[span[0]:span[1]]),
	}
}
