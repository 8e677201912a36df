package parser

import (
	"testing"

	"github.com/dhamidi/rfparse/robot"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{State{Kind: StateUnknown}, "UNKNOWN"},
		{State{Kind: StateTableHeader, Table: robot.TableSettings}, "SETTING_TABLE_HEADER"},
		{State{Kind: StateTableInside, Table: robot.TableSettings}, "SETTING_TABLE_INSIDE"},
		{State{Kind: StateDeclaration, Table: robot.TableTestCases}, "TEST_CASE_DECLARATION"},
		{State{Kind: StateSetting, Table: robot.TableKeywords, Setting: robot.KindArguments}, "KEYWORD_SETTING_ARGUMENTS"},
		{State{Kind: StateSetting, Table: robot.TableSettings, Setting: robot.KindSuiteSetup}, "SETTING_SUITE_SETUP"},
		{State{Kind: StateSettingAlias, Table: robot.TableSettings, Setting: robot.KindLibrary}, "SETTING_LIBRARY_ALIAS"},
		{State{Kind: StateAction, Table: robot.TableTestCases}, "TEST_CASE_INSIDE_ACTION"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State%+v.String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestStackUpdateForNewLine(t *testing.T) {
	var s Stack
	if got := s.Current().Kind; got != StateUnknown {
		t.Fatalf("empty Current() = %v, want unknown", got)
	}

	s.Push(State{Kind: StateTableHeader, Table: robot.TableKeywords})
	s.UpdateForNewLine()
	if got := s.Current(); got.Kind != StateTableInside || got.Table != robot.TableKeywords {
		t.Fatalf("after header line Current() = %v", got)
	}

	s.Push(State{Kind: StateDeclaration, Table: robot.TableKeywords})
	s.Push(State{Kind: StateAction, Table: robot.TableKeywords})
	s.Push(State{Kind: StateActionArgument, Table: robot.TableKeywords})
	s.Push(State{Kind: StateComment, Table: robot.TableKeywords})
	if got := s.LastNotCommentState().Kind; got != StateActionArgument {
		t.Errorf("LastNotCommentState() = %v", got)
	}
	s.UpdateForNewLine()
	if got := s.Current().Kind; got != StateDeclaration {
		t.Errorf("after row Current() = %v, want declaration", got)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.IsTableInsideStateInHierarchy() {
		t.Error("IsTableInsideStateInHierarchy() = false")
	}
	if s.Table() != robot.TableKeywords {
		t.Errorf("Table() = %v", s.Table())
	}

	snap := s.Snapshot()
	s.Clear()
	if s.Table() != robot.TableNone {
		t.Errorf("cleared Table() = %v", s.Table())
	}
	s.Restore(snap)
	if s.Len() != 2 {
		t.Errorf("restored Len() = %d", s.Len())
	}

	if !s.PopTo(StateTableInside) || s.Len() != 1 {
		t.Errorf("PopTo(inside) left %d states", s.Len())
	}
	if s.PopTo(StateTrash) || s.Len() != 0 {
		t.Errorf("PopTo(trash) = true or left states")
	}
}

func TestStackTrashPersists(t *testing.T) {
	var s Stack
	s.Push(State{Kind: StateTrash})
	s.UpdateForNewLine()
	if s.Current().Kind != StateTrash {
		t.Errorf("Current() = %v, want trash", s.Current())
	}
}
