package resolver

// WordAt returns the identifier touching character in line. A position just
// past the end of a word selects that word. Offsets are in characters.
func WordAt(line string, character int) (word string, start int, end int, ok bool) {
	runes := []rune(line)
	if character < 0 || character > len(runes) {
		return "", 0, 0, false
	}

	start = character
	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}
	end = character
	for end < len(runes) && isWordRune(runes[end]) {
		end++
	}

	if start == end {
		return "", 0, 0, false
	}
	return string(runes[start:end]), start, end, true
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
