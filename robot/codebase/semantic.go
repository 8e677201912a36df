package codebase

import (
	"unicode/utf16"

	"github.com/dhamidi/rfparse/robot"
)

// Semantic token classes, in legend order.
const (
	SemanticNamespace = iota
	SemanticFunction
	SemanticMethod
	SemanticParameter
	SemanticVariable
	SemanticProperty
	SemanticString
	SemanticComment
	SemanticKeyword
)

var SemanticTokenTypes = []string{
	"namespace", "function", "method", "parameter", "variable",
	"property", "string", "comment", "keyword",
}

const ModifierDeclaration = 1 << 0

var SemanticTokenModifiers = []string{"declaration"}

// Classify maps a token to a semantic class and modifier bits. Alignment,
// empty and unknown cells are not highlighted.
func Classify(t *robot.Token) (class, modifiers int, ok bool) {
	typ := t.Type()
	switch {
	case t.Text == "" || typ == robot.PrettyAlignSpace || typ == robot.EmptyCell || typ == robot.Unknown:
		return 0, 0, false
	case typ.IsComment():
		return SemanticComment, 0, true
	case typ.IsTableHeader(), typ == robot.TableHeaderColumn:
		return SemanticNamespace, 0, true
	case typ == robot.PreviousLineContinue,
		t.Has(robot.ForToken), t.Has(robot.ForInToken), t.Has(robot.EndToken), t.Has(robot.ForContinueToken):
		return SemanticKeyword, 0, true
	case typ.IsDeclaration():
		return SemanticFunction, ModifierDeclaration, true
	case typ.IsVariableDeclaration(), typ == robot.Assignment:
		return SemanticVariable, ModifierDeclaration, true
	case typ.IsActionName():
		return SemanticMethod, 0, true
	case t.Has(robot.VariableUsage):
		return SemanticVariable, 0, true
	case typ.IsSettingDeclaration():
		return SemanticProperty, 0, true
	}
	switch typ {
	case robot.TestCaseActionArgument, robot.TaskActionArgument, robot.KeywordActionArgument,
		robot.KeywordSettingArgument:
		return SemanticParameter, 0, true
	}
	return SemanticString, 0, true
}

// EncodeSemanticTokens produces the relative five-integer encoding of
// the language server protocol. Lines are 0-based and columns count
// UTF-16 code units.
func EncodeSemanticTokens(f *robot.RobotFile) []uint32 {
	var data []uint32
	prevLine, prevCol := 0, 0
	for _, l := range f.Lines {
		text := l.Text()
		for _, t := range l.Tokens() {
			class, mods, ok := Classify(t)
			if !ok {
				continue
			}
			line := l.Number - 1
			col := UTF16Column(text, t.Pos.Column)
			length := UTF16Column(t.Text, len(t.Text))
			deltaCol := col
			if line == prevLine {
				deltaCol = col - prevCol
			}
			data = append(data,
				uint32(line-prevLine), uint32(deltaCol), uint32(length), uint32(class), uint32(mods))
			prevLine, prevCol = line, col
		}
	}
	return data
}

// UTF16Column converts a byte column of text to UTF-16 code units.
func UTF16Column(text string, byteCol int) int {
	n := 0
	for i, r := range text {
		if i >= byteCol {
			break
		}
		n += utf16.RuneLen(r)
	}
	return n
}

// ByteColumn converts a UTF-16 column of text back to bytes. Columns past
// the end map to the length of text.
func ByteColumn(text string, utf16Col int) int {
	n := 0
	for i, r := range text {
		if n >= utf16Col {
			return i
		}
		n += utf16.RuneLen(r)
	}
	return len(text)
}
