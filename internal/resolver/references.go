package resolver

import "iter"

// FindAllReferences yields every whole-word occurrence of identifier in doc,
// top to bottom and left to right. Lines that declare the identifier are
// skipped unless includeDeclarationLines is set. The sequence can be
// iterated more than once.
func FindAllReferences(doc *Document, identifier string, includeDeclarationLines bool) iter.Seq[Location] {
	m, ok := newMatcher(identifier)

	return func(yield func(Location) bool) {
		if !ok || doc == nil {
			return
		}

		for i, line := range doc.Lines {
			if !includeDeclarationLines {
				if _, declares := m.declaration(line); declares {
					continue
				}
			}

			for _, span := range m.word.FindAllStringIndex(line, -1) {
				if !yield(m.location(doc.Path, i, line, span)) {
					return
				}
			}
		}
	}
}
