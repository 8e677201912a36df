package parser

import (
	"slices"
	"strings"

	"github.com/dhamidi/rfparse/robot"
)

type StateKind int

const (
	StateUnknown StateKind = iota
	StateTrash
	StateComment
	StateTableHeader
	StateTableInside
	StateDeclaration
	StateSetting
	StateSettingAlias
	StateVariable
	StateAssignment
	StateAction
	StateActionArgument
)

// State is one frame of the parsing context. Table and Setting are only
// meaningful for the kinds that need them.
type State struct {
	Kind    StateKind
	Table   robot.TableType
	Setting robot.SettingKind
}

var tablePrefixes = map[robot.TableType]string{
	robot.TableSettings:  "SETTING",
	robot.TableVariables: "VARIABLE",
	robot.TableTestCases: "TEST_CASE",
	robot.TableTasks:     "TASK",
	robot.TableKeywords:  "KEYWORD",
}

func (s State) String() string {
	prefix := tablePrefixes[s.Table]
	switch s.Kind {
	case StateUnknown:
		return "UNKNOWN"
	case StateTrash:
		return "TRASH"
	case StateComment:
		return "COMMENT"
	case StateTableHeader:
		return prefix + "_TABLE_HEADER"
	case StateTableInside:
		return prefix + "_TABLE_INSIDE"
	case StateDeclaration:
		return prefix + "_DECLARATION"
	case StateSetting, StateSettingAlias:
		name := strings.ToUpper(strings.ReplaceAll(s.Setting.String(), " ", "_"))
		var out string
		if s.Table == robot.TableSettings {
			out = "SETTING_" + name
		} else {
			out = prefix + "_SETTING_" + name
		}
		if s.Kind == StateSettingAlias {
			out += "_ALIAS"
		}
		return out
	case StateVariable:
		return "VARIABLE_DECLARATION"
	case StateAssignment:
		return prefix + "_INSIDE_ASSIGNMENT"
	case StateAction:
		return prefix + "_INSIDE_ACTION"
	case StateActionArgument:
		return prefix + "_INSIDE_ACTION_ARGUMENT"
	}
	return "INVALID"
}

// persistent states survive the end of a line.
func (s State) persistent() bool {
	switch s.Kind {
	case StateTableHeader, StateTableInside, StateDeclaration, StateTrash:
		return true
	}
	return false
}

// Stack is the live parsing context. Iterating from the top replaces the
// previous-state links of a tree of states.
type Stack struct {
	states []State
}

// Current returns the top of the stack, or the unknown state when empty.
func (s *Stack) Current() State {
	if len(s.states) == 0 {
		return State{Kind: StateUnknown}
	}
	return s.states[len(s.states)-1]
}

func (s *Stack) Push(st State) { s.states = append(s.states, st) }

func (s *Stack) Pop() State {
	st := s.Current()
	if len(s.states) > 0 {
		s.states = s.states[:len(s.states)-1]
	}
	return st
}

func (s *Stack) Clear() { s.states = s.states[:0] }

func (s *Stack) Len() int { return len(s.states) }

func (s *Stack) Snapshot() []State { return slices.Clone(s.states) }

func (s *Stack) Restore(states []State) { s.states = slices.Clone(states) }

// PopTo pops until a state of the given kind is on top. It reports false,
// leaving the stack empty, when there is none.
func (s *Stack) PopTo(kind StateKind) bool {
	for len(s.states) > 0 {
		if s.Current().Kind == kind {
			return true
		}
		s.Pop()
	}
	return false
}

// UpdateForNewLine drops the states that belong to the finished line. A
// table header at the top turns into the inside state of its table.
func (s *Stack) UpdateForNewLine() {
	for len(s.states) > 0 {
		top := s.states[len(s.states)-1]
		if top.Kind == StateTableHeader {
			s.states[len(s.states)-1] = State{Kind: StateTableInside, Table: top.Table}
			return
		}
		if top.persistent() {
			return
		}
		s.Pop()
	}
}

// IsTableInsideStateInHierarchy reports whether the parser is past the
// header line of a known table.
func (s *Stack) IsTableInsideStateInHierarchy() bool {
	for i := len(s.states) - 1; i >= 0; i-- {
		if s.states[i].Kind == StateTableInside {
			return true
		}
	}
	return false
}

// FirstTableHeaderState returns the closest header or inside state below
// the top, which tells the table the parser is in.
func (s *Stack) FirstTableHeaderState() (State, bool) {
	for i := len(s.states) - 1; i >= 0; i-- {
		switch s.states[i].Kind {
		case StateTableHeader, StateTableInside:
			return s.states[i], true
		}
	}
	return State{}, false
}

// LastNotCommentState is the top state once trailing comments are
// skipped.
func (s *Stack) LastNotCommentState() State {
	for i := len(s.states) - 1; i >= 0; i-- {
		if s.states[i].Kind != StateComment {
			return s.states[i]
		}
	}
	return State{Kind: StateUnknown}
}

// Table is the table the parser is currently in, TableNone before the
// first header and inside unknown or comment sections.
func (s *Stack) Table() robot.TableType {
	if st, ok := s.FirstTableHeaderState(); ok {
		return st.Table
	}
	return robot.TableNone
}

func (s *Stack) String() string {
	names := make([]string, len(s.states))
	for i, st := range s.states {
		names[i] = st.String()
	}
	return strings.Join(names, " > ")
}
