package robot

import (
	"errors"
	"slices"
	"testing"
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Unknown, "UNKNOWN"},
		{TestCaseName, "TEST_CASE_NAME"},
		{UserKeywordName, "USER_KEYWORD_NAME"},
		{VariableUsage, "VARIABLE_USAGE"},
		{TableHeaderColumn, "TABLE_HEADER_COLUMN"},
		{VariablesWrongDefined, "VARIABLES_WRONG_DEFINED"},
		{Type(-1), "INVALID"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestTokenTags(t *testing.T) {
	tok := NewToken("${x}")
	if tok.Type() != Unknown {
		t.Errorf("untagged Type() = %v, want UNKNOWN", tok.Type())
	}
	tok.SetType(VariablesScalarDeclaration)
	tok.AddType(VariableUsage)
	tok.AddType(VariableUsage)
	if len(tok.Types) != 2 {
		t.Fatalf("Types = %v, want two tags", tok.Types)
	}
	tok.SetType(VariableUsage)
	if len(tok.Types) != 1 || tok.Type() != VariableUsage {
		t.Errorf("SetType did not dedupe: %v", tok.Types)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Suite Setup", "suitesetup"},
		{"Test_Template", "testtemplate"},
		{"  Log  ", "log"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestVariableRender(t *testing.T) {
	tests := []struct {
		name   string
		decl   string
		values []string
		kind   VariableKind
		want   string
	}{
		{"scalar", "${x}", []string{"1"}, Scalar, "1"},
		{"empty scalar", "${x}=", nil, Scalar, ""},
		{"scalar as list", "${x}", []string{"a", "b"}, ScalarAsList, "[a, b]"},
		{"list", "@{l}", []string{"a", "b", "c"}, List, "[a, b, c]"},
		{"dict", "&{dict}", []string{"a=1", "b=2"}, Dictionary, "{a = 1, b = 2}"},
		{"dict escaped equals", "&{d}", []string{`a\=b=c`, "plain"}, Dictionary, `{a\=b = c, plain}`},
		{"invalid", "invalid}", []string{"a"}, Invalid, "[a]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVariable(tt.decl, tt.values...)
			if v.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", v.Kind(), tt.kind)
			}
			if got := v.Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVariableEdits(t *testing.T) {
	v := NewVariable("&{dict}", "a=1", "b=2")
	if err := v.RemoveValue(0); err != nil {
		t.Fatal(err)
	}
	if got := v.Render(); got != "{b = 2}" {
		t.Errorf("after remove Render() = %q, want %q", got, "{b = 2}")
	}
	if err := v.InsertValue(1, "c=3"); err != nil {
		t.Fatal(err)
	}
	if err := v.MoveValue(1, 0); err != nil {
		t.Fatal(err)
	}
	if got := v.Render(); got != "{c = 3, b = 2}" {
		t.Errorf("after move Render() = %q", got)
	}
	if err := v.SetValue(5, "x"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("SetValue(5) error = %v, want ErrIndexOutOfRange", err)
	}

	s := NewVariable("${s}", "a")
	if err := s.InsertValue(1, "b"); err != nil {
		t.Fatal(err)
	}
	if s.Declaration.Type() != VariablesScalarAsListDeclaration {
		t.Errorf("declaration = %v, want scalar-as-list", s.Declaration.Type())
	}
	s.SetName("@{s}")
	if s.Kind() != List {
		t.Errorf("after SetName Kind() = %v, want list", s.Kind())
	}
	if name, ok := s.Name(); !ok || name != "s" {
		t.Errorf("Name() = %q, %v", name, ok)
	}
}

func TestLookupSetting(t *testing.T) {
	tests := []struct {
		scope Scope
		text  string
		want  SettingKind
		ok    bool
	}{
		{ScopeSuite, "Library", KindLibrary, true},
		{ScopeSuite, "suite setup", KindSuiteSetup, true},
		{ScopeSuite, "Documentation:", KindDocumentation, true},
		{ScopeSuite, "Document", KindDocumentation, true},
		{ScopeSuite, "Bogus", KindUnknown, false},
		{ScopeTestCase, "[Tags]", KindTags, true},
		{ScopeTestCase, "[Arguments]", KindUnknown, false},
		{ScopeKeyword, "[Arguments]", KindArguments, true},
		{ScopeKeyword, "Arguments", KindUnknown, false},
	}
	for _, tt := range tests {
		got, ok := LookupSetting(tt.scope, tt.text)
		if got != tt.want || ok != tt.ok {
			t.Errorf("LookupSetting(%v, %q) = %v, %v, want %v, %v", tt.scope, tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSettingRetype(t *testing.T) {
	s := NewSetting(ScopeSuite, KindLibrary, "Library", "Collections", "arg", "WITH NAME", "C", "extra")
	want := []Type{SettingLibraryName, SettingLibraryArgument, SettingLibraryAliasDeclaration, SettingLibraryAlias, Unknown}
	for i, v := range s.Values {
		if v.Type() != want[i] {
			t.Errorf("value %d (%q) = %v, want %v", i, v.Text, v.Type(), want[i])
		}
	}
	if s.Alias() == nil || s.Alias().Text != "C" {
		t.Errorf("Alias() = %v", s.Alias())
	}

	setup := NewSetting(ScopeSuite, KindSuiteSetup, "Suite Setup", "Log", "hello")
	if err := setup.MoveValue(1, 0); err != nil {
		t.Fatal(err)
	}
	if setup.Values[0].Type() != SettingSuiteSetupKeywordName || setup.Values[0].Text != "hello" {
		t.Errorf("after move value 0 = %q %v", setup.Values[0].Text, setup.Values[0].Type())
	}
	if setup.Values[1].Type() != SettingSuiteSetupKeywordArgument {
		t.Errorf("after move value 1 = %v", setup.Values[1].Type())
	}
}

func TestExecutableRowForLoop(t *testing.T) {
	b := NewBlock(ScopeKeyword, NewToken("Loop"))
	row := b.AddRow("FOR", "${i}", "IN RANGE", "10")
	if !row.IsForLoop() {
		t.Fatal("IsForLoop() = false")
	}
	if !row.Arguments[1].Has(ForInToken) {
		t.Errorf("IN RANGE tags = %v", row.Arguments[1].Types)
	}
	if row.Action.Type() != KeywordActionName {
		t.Errorf("action = %v, want KEYWORD_ACTION_NAME", row.Action.Type())
	}
	row.SetAction("Log")
	if row.IsForLoop() || row.Arguments[1].Has(ForInToken) {
		t.Errorf("FOR tags survived SetAction: %v %v", row.Action.Types, row.Arguments[1].Types)
	}
	end := b.AddRow("END")
	if !end.Action.Has(EndToken) {
		t.Errorf("END tags = %v", end.Action.Types)
	}
	if err := b.RemoveElement(0); err != nil {
		t.Fatal(err)
	}
	if len(b.Rows()) != 1 {
		t.Errorf("Rows() = %d, want 1", len(b.Rows()))
	}
}

func TestExecutableRowLoopBody(t *testing.T) {
	row := NewExecutableRow(ScopeTestCase)
	if !row.IsEmpty() {
		t.Fatal("new row is not empty")
	}
	marker := NewToken(`\`)
	row.SetLoopBody(marker)
	if row.IsEmpty() {
		t.Error("row with a loop marker is empty")
	}
	row.SetActionToken(NewToken("Log"))
	row.AppendArgument(NewToken("${i}"))
	if marker.Type() != ForContinueToken {
		t.Errorf("marker = %v, want FOR_CONTINUE_TOKEN", marker.Type())
	}
	if row.Action.Type() != TestCaseActionName {
		t.Errorf("action = %v, want TEST_CASE_ACTION_NAME", row.Action.Type())
	}
	var got []string
	for _, tok := range row.Tokens() {
		got = append(got, tok.Text)
	}
	if want := []string{`\`, "Log", "${i}"}; !slices.Equal(got, want) {
		t.Errorf("Tokens() = %q, want %q", got, want)
	}
}

func TestTablesCRUD(t *testing.T) {
	f := NewRobotFile("x.robot")
	f.Settings.AddSetting(KindLibrary, "OperatingSystem")
	f.Settings.AddSetting(KindForceTags, "smoke")
	if err := f.Settings.RemoveSetting(0); err != nil {
		t.Fatal(err)
	}
	if len(f.Settings.Settings) != 1 || f.Settings.Settings[0].Kind != KindForceTags {
		t.Errorf("settings after remove = %v", f.Settings.Settings)
	}
	if err := f.Settings.RemoveSetting(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("RemoveSetting(3) error = %v", err)
	}

	f.Variables.AddVariable("${a}", "1")
	f.Variables.AddVariable("${b}", "2")
	if err := f.Variables.MoveVariable(1, 0); err != nil {
		t.Fatal(err)
	}
	if f.Variables.Lookup("b") != f.Variables.Variables[0] {
		t.Error("Lookup(b) did not return the moved variable")
	}

	kw := f.Keywords.AddBlock("My Keyword")
	kw.AddSetting(KindArguments, "${x}")
	if kw.Name.Type() != UserKeywordName {
		t.Errorf("keyword name = %v", kw.Name.Type())
	}
	if f.Keywords.Find("my_keyword") != kw {
		t.Error("Find(my_keyword) did not match")
	}
	if got := kw.Setting(KindArguments).Declaration.Text; got != "[Arguments]" {
		t.Errorf("declaration = %q", got)
	}
	if err := f.Keywords.RemoveBlock(0); err != nil {
		t.Fatal(err)
	}
	if len(f.Keywords.Keywords) != 0 {
		t.Error("RemoveBlock left the keyword in place")
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		from, to int
		want     string
	}{
		{0, 2, "bca"},
		{2, 0, "cab"},
		{1, 1, "abc"},
	}
	for _, tt := range tests {
		s := []byte("abc")
		if err := move(s, tt.from, tt.to); err != nil {
			t.Fatal(err)
		}
		if string(s) != tt.want {
			t.Errorf("move(abc, %d, %d) = %q, want %q", tt.from, tt.to, s, tt.want)
		}
	}
}
