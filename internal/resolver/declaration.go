package resolver

// FindLocalDeclaration scans doc top to bottom and returns the first line
// declaring identifier. The reported span is the first whole-word
// occurrence of the identifier on that line.
func FindLocalDeclaration(doc *Document, identifier string) (Declaration, bool) {
	if doc == nil {
		return Declaration{}, false
	}

	m, ok := newMatcher(identifier)
	if !ok {
		return Declaration{}, false
	}

	for i, line := range doc.Lines {
		kind, ok := m.declaration(line)
		if !ok {
			continue
		}

		span := m.word.FindStringIndex(line)
		if span == nil {
			// unreachable while every rule ends on a word boundary after the name
			continue
		}

		return Declaration{
			Name:     identifier,
			Kind:     kind,
			Location: m.location(doc.Path, i, line, span),
		}, true
	}

	return Declaration{}, false
}
