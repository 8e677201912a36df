package parser

import "github.com/grafana/regexp"

type EscapeKind int

const (
	UnknownText EscapeKind = iota
	EscapedPipe
	EscapedEquals
	EscapedHash
	EscapedPercent
	EscapedAmpersand
	EscapedAt
	EscapedDollar
	EscapedBackslash
	EscapedSpace
	EscapedNewline
	EscapedTab
	EscapedCarriageReturn
)

var escapeNames = map[EscapeKind]string{
	UnknownText:           "UNKNOWN_TEXT",
	EscapedPipe:           "ESCAPED_PIPE",
	EscapedEquals:         "ESCAPED_EQUALS",
	EscapedHash:           "ESCAPED_HASH",
	EscapedPercent:        "ESCAPED_PERCENT",
	EscapedAmpersand:      "ESCAPED_AMPERSAND",
	EscapedAt:             "ESCAPED_AT",
	EscapedDollar:         "ESCAPED_DOLAR",
	EscapedBackslash:      "ESCAPED_BACKSLASH",
	EscapedSpace:          "ESCAPED_SPACE",
	EscapedNewline:        "ESCAPED_NEWLINE",
	EscapedTab:            "ESCAPED_TAB",
	EscapedCarriageReturn: "ESCAPED_CARRIAGE_RETURN",
}

func (k EscapeKind) String() string {
	if name, ok := escapeNames[k]; ok {
		return name
	}
	return "INVALID"
}

var escapeKinds = map[byte]EscapeKind{
	'|':  EscapedPipe,
	'=':  EscapedEquals,
	'#':  EscapedHash,
	'%':  EscapedPercent,
	'&':  EscapedAmpersand,
	'@':  EscapedAt,
	'$':  EscapedDollar,
	'\\': EscapedBackslash,
	' ':  EscapedSpace,
	'n':  EscapedNewline,
	't':  EscapedTab,
	'r':  EscapedCarriageReturn,
}

var escapePattern = regexp.MustCompile(`\\[|=#%&@$\\ ntr]`)

// Escape is one segment of a cell: either a two character escape
// sequence or a run of literal text.
type Escape struct {
	Kind   EscapeKind
	Text   string
	Offset int
}

// ExtractEscapes segments text into escape sequences and the literal
// runs between them.
func ExtractEscapes(text string) []Escape {
	var out []Escape
	pos := 0
	for _, m := range escapePattern.FindAllStringIndex(text, -1) {
		if m[0] > pos {
			out = append(out, Escape{Kind: UnknownText, Text: text[pos:m[0]], Offset: pos})
		}
		out = append(out, Escape{Kind: escapeKinds[text[m[0]+1]], Text: text[m[0]:m[1]], Offset: m[0]})
		pos = m[1]
	}
	if pos < len(text) {
		out = append(out, Escape{Kind: UnknownText, Text: text[pos:], Offset: pos})
	}
	return out
}
