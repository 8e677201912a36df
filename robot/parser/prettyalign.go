package parser

// SplitPrettyAlign separates the whitespace around a cell from its
// content. An escaped trailing space (`\ `) stays part of the content.
// Whitespace-only text is returned entirely as lead.
func SplitPrettyAlign(text string) (lead, core, trail string) {
	start := 0
	for start < len(text) && isBlank(text[start]) {
		start++
	}
	if start == len(text) {
		return text, "", ""
	}
	end := len(text)
	for end > start && isBlank(text[end-1]) {
		end--
	}
	if end < len(text) && escaped(text, end) {
		end++
	}
	return text[:start], text[start:end], text[end:]
}

// escaped reports whether the byte at i is preceded by an odd number of
// backslashes.
func escaped(line string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && line[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}
