package codebase

import (
	"fmt"
	"strings"

	"github.com/dhamidi/rfparse/robot"
)

type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Problem is a suspicious token found by Check.
type Problem struct {
	Severity Severity
	Token    *robot.Token
	Message  string
}

func (p Problem) String() string {
	return fmt.Sprintf("%d:%d: %s: %s", p.Token.Pos.Line, p.Token.Pos.Column+1, p.Severity, p.Message)
}

// Check reports the cells the parser could not place: unknown cells
// inside a table, malformed variable declarations and unknown settings.
// Content of comment tables and before the first table is not checked.
func Check(f *robot.RobotFile) []Problem {
	var out []Problem
	trash := true
	for _, l := range f.Lines {
		first := true
		for _, t := range l.Tokens() {
			if t.IsPrettyAlign() {
				continue
			}
			leading := first
			first = false
			switch {
			case t.Type().IsTableHeader():
				trash = t.Type() == robot.CommentsTableHeader
			case leading && t.Type() == robot.Unknown && strings.HasPrefix(t.Text, "*"):
				trash = true
				out = append(out, Problem{SeverityWarning, t, fmt.Sprintf("unknown table %q", t.Text)})
			case trash:
			case t.Type() == robot.Unknown:
				out = append(out, Problem{SeverityWarning, t, fmt.Sprintf("unexpected %q", t.Text)})
			case t.Type() == robot.VariablesWrongDefined:
				out = append(out, Problem{SeverityError, t, fmt.Sprintf("invalid variable declaration %q", t.Text)})
			case isUnknownSetting(t.Type()):
				out = append(out, Problem{SeverityWarning, t, fmt.Sprintf("unknown setting %q", t.Text)})
			}
		}
	}
	return out
}

func isUnknownSetting(typ robot.Type) bool {
	switch typ {
	case robot.SettingUnknownDeclaration,
		robot.TestCaseSettingUnknownDeclaration,
		robot.TaskSettingUnknownDeclaration,
		robot.KeywordSettingUnknownDeclaration:
		return true
	}
	return false
}
