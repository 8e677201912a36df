package codebase

import (
	"strings"

	"github.com/dhamidi/rfparse/robot"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// DocumentSymbols outlines a file: one symbol per table header with the
// settings, variables, test cases, tasks or keywords as children.
func DocumentSymbols(f *robot.RobotFile) []protocol.DocumentSymbol {
	var out []protocol.DocumentSymbol
	for _, table := range f.Tables() {
		if !table.Present() {
			continue
		}
		header := table.Headers()[0].Declaration
		sym := protocol.DocumentSymbol{
			Name:           strings.Trim(header.Text, "* "),
			Kind:           protocol.SymbolKindNamespace,
			Range:          tokenRange(f, header),
			SelectionRange: tokenRange(f, header),
		}
		for _, child := range table.Children() {
			if s, ok := elementSymbol(f, child); ok {
				sym.Children = append(sym.Children, s)
				sym.Range.End = maxPosition(sym.Range.End, s.Range.End)
			}
		}
		out = append(out, sym)
	}
	return out
}

func elementSymbol(f *robot.RobotFile, e robot.Element) (protocol.DocumentSymbol, bool) {
	var (
		name   *robot.Token
		kind   protocol.SymbolKind
		detail string
	)
	switch e := e.(type) {
	case *robot.Setting:
		name, kind, detail = e.Declaration, protocol.SymbolKindProperty, strings.Join(e.ValueTexts(), "  ")
	case *robot.Variable:
		name, kind, detail = e.Declaration, protocol.SymbolKindVariable, e.Render()
	case *robot.Block:
		name, kind = e.Name, protocol.SymbolKindMethod
		if e.Scope == robot.ScopeKeyword {
			kind = protocol.SymbolKindFunction
		}
	default:
		return protocol.DocumentSymbol{}, false
	}
	if name == nil || strings.TrimSpace(name.Text) == "" {
		return protocol.DocumentSymbol{}, false
	}
	sym := protocol.DocumentSymbol{
		Name:           name.Text,
		Kind:           kind,
		Range:          tokenRange(f, name),
		SelectionRange: tokenRange(f, name),
	}
	if detail != "" {
		sym.Detail = &detail
	}
	for _, t := range e.Tokens() {
		sym.Range.End = maxPosition(sym.Range.End, tokenRange(f, t).End)
	}
	return sym, true
}

// tokenRange converts a token position to a protocol range. Tokens built
// by model edits have no line and map to the start of the file.
func tokenRange(f *robot.RobotFile, t *robot.Token) protocol.Range {
	l := f.Line(t.Pos.Line)
	if l == nil {
		return protocol.Range{}
	}
	text := l.Text()
	line := protocol.UInteger(t.Pos.Line - 1)
	return protocol.Range{
		Start: protocol.Position{Line: line, Character: protocol.UInteger(UTF16Column(text, t.Pos.Column))},
		End:   protocol.Position{Line: line, Character: protocol.UInteger(UTF16Column(text, t.Pos.Column+len(t.Text)))},
	}
}

func maxPosition(a, b protocol.Position) protocol.Position {
	if b.Line > a.Line || (b.Line == a.Line && b.Character > a.Character) {
		return b
	}
	return a
}
