package robot

import (
	"slices"
	"strings"
)

// Position locates a line element in its source file. Line is 1-based,
// Column is a 0-based byte offset within the line.
type Position struct {
	Offset int
	Line   int
	Column int
}

// SeparatorKind is the cell separator style of a line or file.
type SeparatorKind int

const (
	TabOrDoubleSpace SeparatorKind = iota
	Pipe
	StrictTSVTab
)

func (k SeparatorKind) String() string {
	switch k {
	case TabOrDoubleSpace:
		return "space"
	case Pipe:
		return "pipe"
	case StrictTSVTab:
		return "tsv"
	}
	return "invalid"
}

// LineElement is either a *Separator or a *Token.
type LineElement interface {
	Raw() string
	Start() Position
	isLineElement()
}

type Separator struct {
	Kind SeparatorKind
	Text string
	Pos  Position
}

func (s *Separator) Raw() string     { return s.Text }
func (s *Separator) Start() Position { return s.Pos }
func (s *Separator) isLineElement()  {}

// Token is a cell of a line together with its classification. Types is
// an ordered set of tags; the first tag is the primary one.
type Token struct {
	Text  string
	Pos   Position
	Types []Type
}

// NewToken returns a token that is not yet attached to any source
// position, as produced by model edits.
func NewToken(text string, types ...Type) *Token {
	t := &Token{Text: text}
	for _, typ := range types {
		t.AddType(typ)
	}
	return t
}

func (t *Token) Raw() string     { return t.Text }
func (t *Token) Start() Position { return t.Pos }
func (t *Token) isLineElement()  {}

// End is the offset just past the token.
func (t *Token) End() int { return t.Pos.Offset + len(t.Text) }

// Type returns the primary tag, or Unknown for an untagged token.
func (t *Token) Type() Type {
	if len(t.Types) == 0 {
		return Unknown
	}
	return t.Types[0]
}

func (t *Token) Has(typ Type) bool {
	return slices.Contains(t.Types, typ)
}

// SetType replaces the primary tag, keeping every secondary tag.
func (t *Token) SetType(typ Type) {
	if len(t.Types) == 0 {
		t.Types = []Type{typ}
		return
	}
	t.Types[0] = typ
	for i := len(t.Types) - 1; i > 0; i-- {
		if t.Types[i] == typ {
			t.Types = slices.Delete(t.Types, i, i+1)
		}
	}
}

// AddType appends typ unless the token already carries it.
func (t *Token) AddType(typ Type) {
	if !t.Has(typ) {
		t.Types = append(t.Types, typ)
	}
}

func (t *Token) RemoveType(typ Type) {
	t.Types = slices.DeleteFunc(t.Types, func(x Type) bool { return x == typ })
}

// Normalized returns the text the way Robot Framework compares names:
// lower case with spaces and underscores removed.
func (t *Token) Normalized() string {
	return Normalize(t.Text)
}

func (t *Token) IsPrettyAlign() bool { return t.Has(PrettyAlignSpace) }

func (t *Token) IsComment() bool {
	return t.Has(StartHashComment) || t.Has(CommentContinue)
}

func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if r == ' ' || r == '_' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func tokenTexts(tokens []*Token) []string {
	texts := make([]string, len(tokens))
	for i, t := range tokens {
		texts[i] = t.Text
	}
	return texts
}
