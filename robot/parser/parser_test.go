package parser

import (
	"strings"
	"testing"

	"github.com/dhamidi/rfparse/robot"
	"github.com/google/go-cmp/cmp"
)

// primaryTypes lists "text=TYPE" for the non-alignment tokens of a line.
func primaryTypes(f *robot.RobotFile, line int) []string {
	var out []string
	for _, t := range f.Line(line).Tokens() {
		if t.IsPrettyAlign() {
			continue
		}
		out = append(out, t.Text+"="+t.Type().String())
	}
	return out
}

func checkLines(t *testing.T, f *robot.RobotFile, want map[int][]string) {
	t.Helper()
	for line, w := range want {
		if diff := cmp.Diff(w, primaryTypes(f, line)); diff != "" {
			t.Errorf("line %d mismatch (-want +got):\n%s", line, diff)
		}
	}
}

func TestParseTestCaseAndKeyword(t *testing.T) {
	src := "*** Test Cases ***\ncase\n  kw1  ${x}\n*** Keywords ***\nkw1\n"
	f := Parse(src)
	checkLines(t, f, map[int][]string{
		1: {"*** Test Cases ***=TEST_CASES_TABLE_HEADER"},
		2: {"case=TEST_CASE_NAME"},
		3: {"kw1=TEST_CASE_ACTION_NAME", "${x}=TEST_CASE_ACTION_ARGUMENT"},
		4: {"*** Keywords ***=KEYWORDS_TABLE_HEADER"},
		5: {"kw1=USER_KEYWORD_NAME"},
	})
	if !f.Line(3).Tokens()[1].Has(robot.VariableUsage) {
		t.Error("${x} is not tagged VARIABLE_USAGE")
	}
	tc := f.TestCases.TestCases
	if len(tc) != 1 || tc[0].Name.Text != "case" {
		t.Fatalf("test cases = %v", tc)
	}
	rows := tc[0].Rows()
	if len(rows) != 1 || rows[0].Action.Text != "kw1" {
		t.Fatalf("rows = %v", rows)
	}
	kw := f.Keywords.Find(rows[0].Action.Text)
	if kw == nil || kw.Name != f.Line(5).Tokens()[0] {
		t.Errorf("Find(kw1) = %v, want the declaration on line 5", kw)
	}
}

func TestParseKeywordBody(t *testing.T) {
	f := Parse("*** Keywords ***\nkw\n  log  10")
	checkLines(t, f, map[int][]string{
		2: {"kw=USER_KEYWORD_NAME"},
		3: {"log=KEYWORD_ACTION_NAME", "10=KEYWORD_ACTION_ARGUMENT"},
	})
}

func TestParseSettings(t *testing.T) {
	src := strings.Join([]string{
		"*** Settings ***",
		"Library    Collections    WITH NAME    C",
		"Suite Setup    Log    hi    # comment here",
		"Meta: Version    1.0",
		"Unknown Thing    x",
		"...    y",
		"Documentation    first",
		"",
		"...    second",
	}, "\n")
	f := Parse(src)
	checkLines(t, f, map[int][]string{
		2: {
			"Library=SETTING_LIBRARY_DECLARATION", "Collections=SETTING_LIBRARY_NAME",
			"WITH NAME=SETTING_LIBRARY_ALIAS", "C=SETTING_LIBRARY_ALIAS_VALUE",
		},
		3: {
			"Suite Setup=SETTING_SUITE_SETUP_DECLARATION", "Log=SETTING_SUITE_SETUP_KEYWORD_NAME",
			"hi=SETTING_SUITE_SETUP_KEYWORD_ARGUMENT", "# comment here=START_HASH_COMMENT",
		},
		4: {"Meta:=SETTING_METADATA_DECLARATION", "Version=SETTING_METADATA_KEY", "1.0=SETTING_METADATA_VALUE"},
		5: {"Unknown Thing=SETTING_UNKNOWN_DECLARATION", "x=SETTING_UNKNOWN_ARGUMENTS"},
		6: {"...=PREVIOUS_LINE_CONTINUE", "y=SETTING_UNKNOWN_ARGUMENTS"},
		9: {"...=PREVIOUS_LINE_CONTINUE", "second=SETTING_DOCUMENTATION_TEXT"},
	})

	settings := f.Settings.Settings
	if len(settings) != 5 {
		t.Fatalf("len(Settings) = %d, want 5", len(settings))
	}
	if a := settings[0].Alias(); a == nil || a.Text != "C" {
		t.Errorf("library alias = %v", a)
	}
	if len(settings[1].Comment) != 1 {
		t.Errorf("suite setup comments = %d, want 1", len(settings[1].Comment))
	}
	if settings[2].Kind != robot.KindMetadata {
		t.Errorf("old metadata kind = %v", settings[2].Kind)
	}
	if diff := cmp.Diff([]string{"x", "y"}, settings[3].ValueTexts()); diff != "" {
		t.Errorf("continued values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"first", "second"}, settings[4].ValueTexts()); diff != "" {
		t.Errorf("documentation values mismatch (-want +got):\n%s", diff)
	}
	if f.String() != src {
		t.Errorf("String() does not reproduce the source")
	}
}

func TestParseVariables(t *testing.T) {
	src := strings.Join([]string{
		"*** Variables ***",
		"${scalar}    value",
		"${as list}    a    b",
		"@{list}    1    2",
		"&{dict}    a=1    b=2",
		"invalid}    x",
	}, "\n")
	f := Parse(src)
	checkLines(t, f, map[int][]string{
		2: {"${scalar}=VARIABLES_SCALAR_DECLARATION", "value=VARIABLES_VARIABLE_VALUE"},
		3: {"${as list}=VARIABLES_SCALAR_AS_LIST_DECLARATION", "a=VARIABLES_VARIABLE_VALUE", "b=VARIABLES_VARIABLE_VALUE"},
		4: {"@{list}=VARIABLES_LIST_DECLARATION", "1=VARIABLES_VARIABLE_VALUE", "2=VARIABLES_VARIABLE_VALUE"},
		5: {"&{dict}=VARIABLES_DICTIONARY_DECLARATION", "a=1=VARIABLES_VARIABLE_VALUE", "b=2=VARIABLES_VARIABLE_VALUE"},
		6: {"invalid}=VARIABLES_WRONG_DEFINED", "x=VARIABLES_VARIABLE_VALUE"},
	})

	scalar := f.Line(2).Tokens()[0]
	if !scalar.Has(robot.VariableUsage) {
		t.Errorf("${scalar} tags = %v, want VARIABLE_USAGE too", scalar.Types)
	}

	vars := f.Variables.Variables
	if len(vars) != 5 {
		t.Fatalf("len(Variables) = %d, want 5", len(vars))
	}
	tests := []struct {
		kind robot.VariableKind
		want string
	}{
		{robot.Scalar, "value"},
		{robot.ScalarAsList, "[a, b]"},
		{robot.List, "[1, 2]"},
		{robot.Dictionary, "{a = 1, b = 2}"},
		{robot.Invalid, "[x]"},
	}
	for i, tt := range tests {
		if vars[i].Kind() != tt.kind {
			t.Errorf("variable %d Kind() = %v, want %v", i, vars[i].Kind(), tt.kind)
		}
		if got := vars[i].Render(); got != tt.want {
			t.Errorf("variable %d Render() = %q, want %q", i, got, tt.want)
		}
	}

	dict := f.Variables.Lookup("dict")
	if err := dict.RemoveValue(0); err != nil {
		t.Fatal(err)
	}
	if got := dict.Render(); got != "{b = 2}" {
		t.Errorf("after removing a=1 Render() = %q, want %q", got, "{b = 2}")
	}
}

func TestParsePipeContinuation(t *testing.T) {
	src := strings.Join([]string{
		"| *** Settings *** |",
		"| Library | OperatingSystem |",
		"| ... | arg |",
		"| | ... | other |",
		"| *** Keywords *** |",
		"| kw |",
		"| | log | 10 |",
		"| ... | 20 |",
		"| | ... | 30 |",
	}, "\n")
	f := Parse(src)
	if f.Mode != robot.Pipe {
		t.Fatalf("Mode = %v, want pipe", f.Mode)
	}
	checkLines(t, f, map[int][]string{
		1: {"*** Settings ***=SETTINGS_TABLE_HEADER"},
		2: {"Library=SETTING_LIBRARY_DECLARATION", "OperatingSystem=SETTING_LIBRARY_NAME"},
		3: {"...=PREVIOUS_LINE_CONTINUE", "arg=SETTING_LIBRARY_ARGUMENT"},
		4: {"...=UNKNOWN", "other=UNKNOWN"},
		6: {"kw=USER_KEYWORD_NAME"},
		7: {"log=KEYWORD_ACTION_NAME", "10=KEYWORD_ACTION_ARGUMENT"},
		8: {"...=PREVIOUS_LINE_CONTINUE", "20=KEYWORD_ACTION_ARGUMENT"},
		9: {"...=KEYWORD_ACTION_NAME", "30=KEYWORD_ACTION_ARGUMENT"},
	})
	lib := f.Settings.Settings[0]
	if diff := cmp.Diff([]string{"OperatingSystem", "arg"}, lib.ValueTexts()); diff != "" {
		t.Errorf("library values mismatch (-want +got):\n%s", diff)
	}
	rows := f.Keywords.Keywords[0].Rows()
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if len(rows[0].Arguments) != 2 {
		t.Errorf("row arguments = %d, want 2", len(rows[0].Arguments))
	}
}

func TestParseHeaderPosition(t *testing.T) {
	src := strings.Join([]string{
		"*** Test Cases ***    Col A    Col B",
		"case",
		"    No Operation    *** Settings ***",
	}, "\n")
	f := Parse(src)
	checkLines(t, f, map[int][]string{
		1: {"*** Test Cases ***=TEST_CASES_TABLE_HEADER", "Col A=TABLE_HEADER_COLUMN", "Col B=TABLE_HEADER_COLUMN"},
		3: {"No Operation=TEST_CASE_ACTION_NAME", "*** Settings ***=TEST_CASE_ACTION_ARGUMENT"},
	})
	if n := len(f.TestCases.Headers()[0].Columns); n != 2 {
		t.Errorf("header columns = %d, want 2", n)
	}
	arg := f.Line(3).Tokens()[1]
	if !arg.Has(robot.SettingsTableHeader) {
		t.Errorf("tags = %v, want SETTINGS_TABLE_HEADER kept as secondary", arg.Types)
	}
	if f.Settings.Present() {
		t.Error("settings table opened by a cell that is not first on its line")
	}
}

func TestParseCommentsAndGarbage(t *testing.T) {
	src := strings.Join([]string{
		"garbage    # c    d",
		"*** Comments ***",
		"anything    here",
		"*** Keywords ***",
		"# standalone",
		"kw    # on declaration",
		"    Log    x    # trailing    more",
		"*** Whatever ***",
		"junk",
	}, "\n")
	f := Parse(src)
	checkLines(t, f, map[int][]string{
		1: {"garbage=UNKNOWN", "# c=UNKNOWN", "d=COMMENT_CONTINUE"},
		2: {"*** Comments ***=COMMENTS_TABLE_HEADER"},
		3: {"anything=UNKNOWN", "here=UNKNOWN"},
		5: {"# standalone=START_HASH_COMMENT"},
		6: {"kw=USER_KEYWORD_NAME", "# on declaration=START_HASH_COMMENT"},
		7: {"Log=KEYWORD_ACTION_NAME", "x=KEYWORD_ACTION_ARGUMENT", "# trailing=START_HASH_COMMENT", "more=COMMENT_CONTINUE"},
		8: {"*** Whatever ***=UNKNOWN"},
		9: {"junk=UNKNOWN"},
	})
	if n := len(f.Keywords.Headers()[0].Comment); n != 1 {
		t.Errorf("header comments = %d, want 1", n)
	}
	kw := f.Keywords.Keywords[0]
	if len(kw.Body) != 2 {
		t.Fatalf("keyword body = %d elements, want 2", len(kw.Body))
	}
	rows := kw.Rows()
	if !rows[0].IsEmpty() || len(rows[0].Comment) != 1 {
		t.Errorf("first row = %+v, want a comment row", rows[0])
	}
	if len(rows[1].Comment) != 2 {
		t.Errorf("trailing comment tokens = %d, want 2", len(rows[1].Comment))
	}
}

func TestParseBlockContents(t *testing.T) {
	src := strings.Join([]string{
		"*** Test Cases ***",
		"Loop Test",
		"    [Documentation]    Does things",
		"    ...    more docs",
		"    [Tags]    a    b",
		"    ${x}    ${y}=    Get Values",
		"    FOR    ${i}    IN RANGE    3",
		"        Log    ${i}",
		"    END",
		"    [Unknown]    z",
		"*** Tasks ***",
		"Do It",
		"    [Setup]    Prepare",
		"    Run",
		"*** Keywords ***",
		"My Keyword    [Arguments]    ${a}",
		"    [Return]    ${a}",
		"Inline    ...    Log    x",
	}, "\n")
	f := Parse(src)
	checkLines(t, f, map[int][]string{
		3:  {"[Documentation]=TEST_CASE_SETTING_DOCUMENTATION", "Does things=TEST_CASE_SETTING_DOCUMENTATION_TEXT"},
		4:  {"...=PREVIOUS_LINE_CONTINUE", "more docs=TEST_CASE_SETTING_DOCUMENTATION_TEXT"},
		5:  {"[Tags]=TEST_CASE_SETTING_TAGS_DECLARATION", "a=TEST_CASE_SETTING_TAGS", "b=TEST_CASE_SETTING_TAGS"},
		6:  {"${x}=ASSIGNMENT", "${y}==ASSIGNMENT", "Get Values=TEST_CASE_ACTION_NAME"},
		7:  {"FOR=TEST_CASE_ACTION_NAME", "${i}=TEST_CASE_ACTION_ARGUMENT", "IN RANGE=TEST_CASE_ACTION_ARGUMENT", "3=TEST_CASE_ACTION_ARGUMENT"},
		8:  {"Log=TEST_CASE_ACTION_NAME", "${i}=TEST_CASE_ACTION_ARGUMENT"},
		9:  {"END=TEST_CASE_ACTION_NAME"},
		10: {"[Unknown]=TEST_CASE_SETTING_UNKNOWN_DECLARATION", "z=TEST_CASE_SETTING_UNKNOWN_ARGUMENTS"},
		12: {"Do It=TASK_NAME"},
		13: {"[Setup]=TASK_SETTING_SETUP", "Prepare=TASK_SETTING_SETUP_KEYWORD_NAME"},
		14: {"Run=TASK_ACTION_NAME"},
		16: {"My Keyword=USER_KEYWORD_NAME", "[Arguments]=KEYWORD_SETTING_ARGUMENTS", "${a}=KEYWORD_SETTING_ARGUMENT"},
		17: {"[Return]=KEYWORD_SETTING_RETURN", "${a}=KEYWORD_SETTING_RETURN_VALUE"},
		18: {"Inline=USER_KEYWORD_NAME", "...=PREVIOUS_LINE_CONTINUE", "Log=KEYWORD_ACTION_NAME", "x=KEYWORD_ACTION_ARGUMENT"},
	})

	forLine := f.Line(7).Tokens()
	if !forLine[0].Has(robot.ForToken) || !forLine[2].Has(robot.ForInToken) {
		t.Errorf("FOR tags = %v / %v", forLine[0].Types, forLine[2].Types)
	}
	if !f.Line(9).Tokens()[0].Has(robot.EndToken) {
		t.Errorf("END tags = %v", f.Line(9).Tokens()[0].Types)
	}

	tc := f.TestCases.TestCases[0]
	doc := tc.Setting(robot.KindDocumentation)
	if doc == nil || len(doc.Values) != 2 {
		t.Fatalf("documentation = %+v", doc)
	}
	rows := tc.Rows()
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(rows))
	}
	if len(rows[0].Assignments) != 2 || rows[0].Action.Text != "Get Values" {
		t.Errorf("assignment row = %+v", rows[0])
	}
	if len(tc.Settings()) != 3 {
		t.Errorf("local settings = %d, want 3", len(tc.Settings()))
	}
	if len(f.Tasks.Tasks) != 1 || len(f.Keywords.Keywords) != 2 {
		t.Errorf("tasks = %d, keywords = %d", len(f.Tasks.Tasks), len(f.Keywords.Keywords))
	}
}

func TestParseOldForLoop(t *testing.T) {
	src := strings.Join([]string{
		"*** Test Cases ***",
		"Old Loop",
		"    :FOR    ${i}    IN RANGE    3",
		"    \\    Log    ${i}",
		"    \\  Log  ${i}",
	}, "\n")
	f := Parse(src)
	checkLines(t, f, map[int][]string{
		3: {":FOR=TEST_CASE_ACTION_NAME", "${i}=TEST_CASE_ACTION_ARGUMENT", "IN RANGE=TEST_CASE_ACTION_ARGUMENT", "3=TEST_CASE_ACTION_ARGUMENT"},
		4: {"\\=FOR_CONTINUE_TOKEN", "Log=TEST_CASE_ACTION_NAME", "${i}=TEST_CASE_ACTION_ARGUMENT"},
		5: {"\\=FOR_CONTINUE_TOKEN", "Log=TEST_CASE_ACTION_NAME", "${i}=TEST_CASE_ACTION_ARGUMENT"},
	})

	rows := f.TestCases.TestCases[0].Rows()
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if !rows[0].IsForLoop() {
		t.Errorf("first row is not a loop: %+v", rows[0])
	}
	for _, row := range rows[1:] {
		if row.LoopBody == nil || row.Action == nil || row.Action.Text != "Log" {
			t.Errorf("loop step = %+v, want marker and Log", row)
			continue
		}
		if len(row.Arguments) != 1 || row.Arguments[0].Text != "${i}" {
			t.Errorf("loop step arguments = %v", row.Arguments)
		}
	}
	if got := f.String(); got != src {
		t.Errorf("String() = %q, want %q", got, src)
	}
}

func TestParseHeaderLineCells(t *testing.T) {
	src := strings.Join([]string{
		"*** Keywords ***    Col    ...    x    # note    more",
		"kw    ...    Log",
	}, "\n")
	f := Parse(src)
	checkLines(t, f, map[int][]string{
		1: {"*** Keywords ***=KEYWORDS_TABLE_HEADER", "Col=TABLE_HEADER_COLUMN", "...=UNKNOWN", "x=TABLE_HEADER_COLUMN", "# note=START_HASH_COMMENT", "more=COMMENT_CONTINUE"},
		2: {"kw=USER_KEYWORD_NAME", "...=PREVIOUS_LINE_CONTINUE", "Log=KEYWORD_ACTION_NAME"},
	})
	h := f.Keywords.Headers()[0]
	if len(h.Columns) != 2 || len(h.Comment) != 2 {
		t.Errorf("header columns = %d, comments = %d, want 2 and 2", len(h.Columns), len(h.Comment))
	}
}

func TestParseIndentedContinuationInVariables(t *testing.T) {
	src := strings.Join([]string{
		"*** Variables ***",
		"@{list}    1",
		"...    2",
		"    ...    3",
	}, "\n")
	f := Parse(src)
	checkLines(t, f, map[int][]string{
		3: {"...=PREVIOUS_LINE_CONTINUE", "2=VARIABLES_VARIABLE_VALUE"},
		4: {"...=UNKNOWN", "3=UNKNOWN"},
	})
	if n := len(f.Variables.Variables[0].Values); n != 2 {
		t.Errorf("values = %d, want 2", n)
	}
}

func TestParseUnknownBeforeBlock(t *testing.T) {
	f := Parse("*** Test Cases ***\n    Log    x\n")
	checkLines(t, f, map[int][]string{
		2: {"Log=UNKNOWN", "x=UNKNOWN"},
	})
}

func TestTokenAt(t *testing.T) {
	f := Parse("*** Keywords ***\nkw\n  Log  x\n")
	tests := []struct {
		offset int
		want   string
	}{
		{0, "*** Keywords ***"},
		{17, "kw"},
		{21, ""},
		{22, "Log"},
		{24, "Log"},
		{25, ""},
		{27, "x"},
		{28, ""},
		{100, ""},
	}
	for _, tt := range tests {
		got := ""
		if tok := f.TokenAt(tt.offset); tok != nil {
			got = tok.Text
		}
		if got != tt.want {
			t.Errorf("TokenAt(%d) = %q, want %q", tt.offset, got, tt.want)
		}
	}
	if tok := f.TokenAtPosition(3, 2); tok == nil || tok.Text != "Log" {
		t.Errorf("TokenAtPosition(3, 2) = %v", tok)
	}
	if tok := f.TokenAtPosition(9, 0); tok != nil {
		t.Errorf("TokenAtPosition(9, 0) = %v, want nil", tok)
	}
}

func TestParseForcedMode(t *testing.T) {
	f := Parse("*** Settings ***\n| Library | X |\n", WithMode(robot.Pipe), WithFile("x.robot"))
	if f.Path != "x.robot" {
		t.Errorf("Path = %q", f.Path)
	}
	checkLines(t, f, map[int][]string{
		2: {"Library=SETTING_LIBRARY_DECLARATION", "X=SETTING_LIBRARY_NAME"},
	})
}

func TestParseTSV(t *testing.T) {
	f := Parse("*** Settings ***\nLibrary\tCollections\n", WithFile("suite.tsv"))
	if f.Mode != robot.StrictTSVTab {
		t.Fatalf("Mode = %v, want tsv", f.Mode)
	}
	checkLines(t, f, map[int][]string{
		2: {"Library=SETTING_LIBRARY_DECLARATION", "Collections=SETTING_LIBRARY_NAME"},
	})
}

func TestParseReader(t *testing.T) {
	f, err := ParseReader(strings.NewReader("*** Variables ***\n${a}  1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Variables.Variables[0].Render(); got != "1" {
		t.Errorf("Render() = %q, want 1", got)
	}
}
