package parser

// VariableRef is a variable usage such as `${name}` found inside a cell.
type VariableRef struct {
	Sigil  byte
	Name   string
	Text   string
	Offset int
}

func isSigil(c byte) bool {
	return c == '$' || c == '@' || c == '&' || c == '%'
}

// ExtractVariables finds the variable usages in text. Only literal runs
// between escape sequences are searched, so `\${x}` is not a usage while
// `\\${x}` is. Nested references such as `${a${b}}` count once, as the
// outermost variable. An unclosed reference ends the scan.
func ExtractVariables(text string) []VariableRef {
	var out []VariableRef
	segments := ExtractEscapes(text)
	next := 0
	for _, seg := range segments {
		if seg.Kind != UnknownText {
			continue
		}
		for j := 0; j < len(seg.Text); j++ {
			i := seg.Offset + j
			if i < next {
				continue
			}
			c := text[i]
			if !isSigil(c) || i+1 >= len(text) || text[i+1] != '{' {
				continue
			}
			end := closingBrace(segments, i+1)
			if end < 0 {
				return out
			}
			out = append(out, VariableRef{
				Sigil:  c,
				Name:   text[i+2 : end],
				Text:   text[i : end+1],
				Offset: i,
			})
			next = end + 1
		}
	}
	return out
}

// closingBrace returns the offset of the brace matching the one at open,
// counting braces in literal segments only.
func closingBrace(segments []Escape, open int) int {
	depth := 0
	for _, seg := range segments {
		if seg.Kind != UnknownText || seg.Offset+len(seg.Text) <= open {
			continue
		}
		for j := max(open-seg.Offset, 0); j < len(seg.Text); j++ {
			switch seg.Text[j] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return seg.Offset + j
				}
			}
		}
	}
	return -1
}

// HasVariables reports whether text uses at least one variable.
func HasVariables(text string) bool {
	return len(ExtractVariables(text)) > 0
}
