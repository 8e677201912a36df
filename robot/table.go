package robot

import (
	"errors"
	"fmt"
	"slices"
)

// ErrIndexOutOfRange is returned by index based model edits.
var ErrIndexOutOfRange = errors.New("index out of range")

type TableType int

const (
	TableNone TableType = iota
	TableSettings
	TableVariables
	TableTestCases
	TableTasks
	TableKeywords
)

func (t TableType) String() string {
	switch t {
	case TableSettings:
		return "Settings"
	case TableVariables:
		return "Variables"
	case TableTestCases:
		return "Test Cases"
	case TableTasks:
		return "Tasks"
	case TableKeywords:
		return "Keywords"
	}
	return "None"
}

// Scope says where a setting or executable row lives.
type Scope int

const (
	ScopeSuite Scope = iota
	ScopeTestCase
	ScopeTask
	ScopeKeyword
)

func (s Scope) String() string {
	switch s {
	case ScopeSuite:
		return "suite"
	case ScopeTestCase:
		return "test case"
	case ScopeTask:
		return "task"
	case ScopeKeyword:
		return "keyword"
	}
	return "invalid"
}

// Element is a child of a table or of a block: a setting, a variable, a
// block or an executable row.
type Element interface {
	Tokens() []*Token
	AddComment(t *Token)
}

// TableHeader is one `*** Name ***` line. A table may be declared more
// than once in a file; each declaration gets its own header.
type TableHeader struct {
	Declaration *Token
	Columns     []*Token
	Comment     []*Token
}

func (h *TableHeader) Tokens() []*Token {
	out := []*Token{h.Declaration}
	out = append(out, h.Columns...)
	return append(out, h.Comment...)
}

func (h *TableHeader) AddColumn(t *Token)  { h.Columns = append(h.Columns, t) }
func (h *TableHeader) AddComment(t *Token) { h.Comment = append(h.Comment, t) }

type Table interface {
	Type() TableType
	Headers() []*TableHeader
	AddHeader(h *TableHeader)
	// Present reports whether the file declares the table at all.
	Present() bool
	Children() []Element
}

type tableBase struct {
	headers []*TableHeader
}

func (t *tableBase) Headers() []*TableHeader { return t.headers }

func (t *tableBase) AddHeader(h *TableHeader) { t.headers = append(t.headers, h) }

func (t *tableBase) Present() bool { return len(t.headers) > 0 }

type SettingTable struct {
	tableBase
	Settings []*Setting
}

func (t *SettingTable) Type() TableType { return TableSettings }

func (t *SettingTable) Children() []Element {
	out := make([]Element, len(t.Settings))
	for i, s := range t.Settings {
		out[i] = s
	}
	return out
}

// AddSetting appends a new suite setting with the canonical declaration
// text for kind.
func (t *SettingTable) AddSetting(kind SettingKind, values ...string) *Setting {
	s := NewSetting(ScopeSuite, kind, kind.Declaration(ScopeSuite), values...)
	t.Settings = append(t.Settings, s)
	return s
}

// Append adds an already built setting, as the parser does.
func (t *SettingTable) Append(s *Setting) { t.Settings = append(t.Settings, s) }

func (t *SettingTable) RemoveSetting(i int) error {
	if i < 0 || i >= len(t.Settings) {
		return fmt.Errorf("remove setting %d: %w", i, ErrIndexOutOfRange)
	}
	t.Settings = slices.Delete(t.Settings, i, i+1)
	return nil
}

// Find returns the settings of the given kind in declaration order.
func (t *SettingTable) Find(kind SettingKind) []*Setting {
	var out []*Setting
	for _, s := range t.Settings {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

type VariableTable struct {
	tableBase
	Variables []*Variable
}

func (t *VariableTable) Type() TableType { return TableVariables }

func (t *VariableTable) Children() []Element {
	out := make([]Element, len(t.Variables))
	for i, v := range t.Variables {
		out[i] = v
	}
	return out
}

func (t *VariableTable) AddVariable(name string, values ...string) *Variable {
	v := NewVariable(name, values...)
	t.Variables = append(t.Variables, v)
	return v
}

func (t *VariableTable) Append(v *Variable) { t.Variables = append(t.Variables, v) }

func (t *VariableTable) RemoveVariable(i int) error {
	if i < 0 || i >= len(t.Variables) {
		return fmt.Errorf("remove variable %d: %w", i, ErrIndexOutOfRange)
	}
	t.Variables = slices.Delete(t.Variables, i, i+1)
	return nil
}

func (t *VariableTable) MoveVariable(from, to int) error {
	if err := move(t.Variables, from, to); err != nil {
		return fmt.Errorf("move variable: %w", err)
	}
	return nil
}

// Lookup finds a variable by its name without decoration, e.g. "dict"
// for `&{dict}`.
func (t *VariableTable) Lookup(name string) *Variable {
	for _, v := range t.Variables {
		if n, ok := v.Name(); ok && Normalize(n) == Normalize(name) {
			return v
		}
	}
	return nil
}

type TestCaseTable struct {
	tableBase
	TestCases []*Block
}

func (t *TestCaseTable) Type() TableType     { return TableTestCases }
func (t *TestCaseTable) Children() []Element { return blockElements(t.TestCases) }

func (t *TestCaseTable) AddBlock(name string) *Block {
	return addBlock(&t.TestCases, ScopeTestCase, name)
}

func (t *TestCaseTable) Append(b *Block) { t.TestCases = append(t.TestCases, b) }

func (t *TestCaseTable) RemoveBlock(i int) error { return removeBlock(&t.TestCases, i) }

func (t *TestCaseTable) Blocks() []*Block { return t.TestCases }

type TaskTable struct {
	tableBase
	Tasks []*Block
}

func (t *TaskTable) Type() TableType     { return TableTasks }
func (t *TaskTable) Children() []Element { return blockElements(t.Tasks) }

func (t *TaskTable) AddBlock(name string) *Block {
	return addBlock(&t.Tasks, ScopeTask, name)
}

func (t *TaskTable) Append(b *Block) { t.Tasks = append(t.Tasks, b) }

func (t *TaskTable) RemoveBlock(i int) error { return removeBlock(&t.Tasks, i) }

func (t *TaskTable) Blocks() []*Block { return t.Tasks }

type KeywordTable struct {
	tableBase
	Keywords []*Block
}

func (t *KeywordTable) Type() TableType     { return TableKeywords }
func (t *KeywordTable) Children() []Element { return blockElements(t.Keywords) }

func (t *KeywordTable) AddBlock(name string) *Block {
	return addBlock(&t.Keywords, ScopeKeyword, name)
}

func (t *KeywordTable) Append(b *Block) { t.Keywords = append(t.Keywords, b) }

func (t *KeywordTable) RemoveBlock(i int) error { return removeBlock(&t.Keywords, i) }

func (t *KeywordTable) Blocks() []*Block { return t.Keywords }

// Find returns the first keyword whose normalized name matches.
func (t *KeywordTable) Find(name string) *Block {
	n := Normalize(name)
	for _, b := range t.Keywords {
		if b.Name != nil && b.Name.Normalized() == n {
			return b
		}
	}
	return nil
}

// BlockTable is implemented by the test case, task and keyword tables.
type BlockTable interface {
	Table
	Blocks() []*Block
	Append(b *Block)
	AddBlock(name string) *Block
	RemoveBlock(i int) error
}

func blockElements(blocks []*Block) []Element {
	out := make([]Element, len(blocks))
	for i, b := range blocks {
		out[i] = b
	}
	return out
}

func addBlock(blocks *[]*Block, scope Scope, name string) *Block {
	b := NewBlock(scope, NewToken(name))
	*blocks = append(*blocks, b)
	return b
}

func removeBlock(blocks *[]*Block, i int) error {
	if i < 0 || i >= len(*blocks) {
		return fmt.Errorf("remove block %d: %w", i, ErrIndexOutOfRange)
	}
	*blocks = slices.Delete(*blocks, i, i+1)
	return nil
}

func move[T any](s []T, from, to int) error {
	if from < 0 || from >= len(s) || to < 0 || to >= len(s) {
		return fmt.Errorf("%d -> %d: %w", from, to, ErrIndexOutOfRange)
	}
	item := s[from]
	if from < to {
		copy(s[from:to], s[from+1:to+1])
	} else {
		copy(s[to+1:from+1], s[to:from])
	}
	s[to] = item
	return nil
}

func setAt(tokens []*Token, i int, text string) (*Token, error) {
	if i < 0 || i >= len(tokens) {
		return nil, ErrIndexOutOfRange
	}
	tokens[i].Text = text
	return tokens[i], nil
}

func insertAt(tokens []*Token, i int, t *Token) ([]*Token, error) {
	if i < 0 || i > len(tokens) {
		return tokens, ErrIndexOutOfRange
	}
	return slices.Insert(tokens, i, t), nil
}

func removeAt(tokens []*Token, i int) ([]*Token, error) {
	if i < 0 || i >= len(tokens) {
		return tokens, ErrIndexOutOfRange
	}
	return slices.Delete(tokens, i, i+1), nil
}
