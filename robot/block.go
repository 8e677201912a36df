package robot

import (
	"fmt"
	"slices"
	"strings"
)

// Block is a test case, task or user keyword: a name followed by local
// settings and executable rows.
type Block struct {
	Scope Scope
	Name  *Token
	Body  []Element
}

func NewBlock(scope Scope, name *Token) *Block {
	b := &Block{Scope: scope, Name: name}
	if name != nil {
		name.SetType(blockNameType(scope))
	}
	return b
}

func blockNameType(scope Scope) Type {
	switch scope {
	case ScopeTask:
		return TaskName
	case ScopeKeyword:
		return UserKeywordName
	}
	return TestCaseName
}

func (b *Block) Tokens() []*Token {
	var out []*Token
	if b.Name != nil {
		out = append(out, b.Name)
	}
	for _, e := range b.Body {
		out = append(out, e.Tokens()...)
	}
	return out
}

// AddComment attaches a comment written on the declaration line.
func (b *Block) AddComment(t *Token) {
	b.Body = append(b.Body, &ExecutableRow{Scope: b.Scope, Comment: []*Token{t}})
}

func (b *Block) Append(e Element) { b.Body = append(b.Body, e) }

func (b *Block) Rows() []*ExecutableRow {
	var out []*ExecutableRow
	for _, e := range b.Body {
		if r, ok := e.(*ExecutableRow); ok {
			out = append(out, r)
		}
	}
	return out
}

func (b *Block) Settings() []*Setting {
	var out []*Setting
	for _, e := range b.Body {
		if s, ok := e.(*Setting); ok {
			out = append(out, s)
		}
	}
	return out
}

// Setting returns the first local setting of the given kind, or nil.
func (b *Block) Setting(kind SettingKind) *Setting {
	for _, s := range b.Settings() {
		if s.Kind == kind {
			return s
		}
	}
	return nil
}

// AddRow appends a keyword call.
func (b *Block) AddRow(action string, arguments ...string) *ExecutableRow {
	r := &ExecutableRow{Scope: b.Scope, Action: NewToken(action)}
	for _, a := range arguments {
		r.Arguments = append(r.Arguments, NewToken(a))
	}
	r.retype()
	b.Body = append(b.Body, r)
	return r
}

// AddSetting appends a local setting such as `[Tags]`.
func (b *Block) AddSetting(kind SettingKind, values ...string) *Setting {
	s := NewSetting(b.Scope, kind, kind.Declaration(b.Scope), values...)
	b.Body = append(b.Body, s)
	return s
}

func (b *Block) RemoveElement(i int) error {
	if i < 0 || i >= len(b.Body) {
		return fmt.Errorf("remove element %d of %s: %w", i, b.name(), ErrIndexOutOfRange)
	}
	b.Body = slices.Delete(b.Body, i, i+1)
	return nil
}

func (b *Block) name() string {
	if b.Name == nil {
		return "<unnamed>"
	}
	return b.Name.Text
}

// ExecutableRow is one step of a block: optional assignments, the
// keyword to run and its arguments. A row holding only a comment has a
// nil Action. Rows of an old style `:FOR` body start with a `\` marker
// kept in LoopBody.
type ExecutableRow struct {
	Scope       Scope
	LoopBody    *Token
	Assignments []*Token
	Action      *Token
	Arguments   []*Token
	Comment     []*Token
}

func NewExecutableRow(scope Scope) *ExecutableRow {
	return &ExecutableRow{Scope: scope}
}

func (r *ExecutableRow) Tokens() []*Token {
	var out []*Token
	if r.LoopBody != nil {
		out = append(out, r.LoopBody)
	}
	out = append(out, r.Assignments...)
	if r.Action != nil {
		out = append(out, r.Action)
	}
	out = append(out, r.Arguments...)
	return append(out, r.Comment...)
}

func (r *ExecutableRow) AddComment(t *Token) { r.Comment = append(r.Comment, t) }

// IsEmpty reports whether the row carries no step, only comments.
func (r *ExecutableRow) IsEmpty() bool {
	return r.Action == nil && len(r.Assignments) == 0 && r.LoopBody == nil
}

// SetLoopBody marks the row as a step of an old style `:FOR` loop.
func (r *ExecutableRow) SetLoopBody(t *Token) {
	r.LoopBody = t
	t.SetType(ForContinueToken)
}

func (r *ExecutableRow) AddAssignment(t *Token) {
	r.Assignments = append(r.Assignments, t)
	t.SetType(Assignment)
}

func (r *ExecutableRow) SetActionToken(t *Token) {
	r.Action = t
	r.retype()
}

func (r *ExecutableRow) AppendArgument(t *Token) {
	r.Arguments = append(r.Arguments, t)
	r.retype()
}

func (r *ExecutableRow) SetAction(text string) {
	if r.Action == nil {
		r.Action = NewToken(text)
	} else {
		r.Action.Text = text
	}
	r.retype()
}

func (r *ExecutableRow) SetArgument(i int, text string) error {
	if _, err := setAt(r.Arguments, i, text); err != nil {
		return fmt.Errorf("set argument %d: %w", i, err)
	}
	r.retype()
	return nil
}

func (r *ExecutableRow) InsertArgument(i int, text string) error {
	args, err := insertAt(r.Arguments, i, NewToken(text))
	if err != nil {
		return fmt.Errorf("insert argument %d: %w", i, err)
	}
	r.Arguments = args
	r.retype()
	return nil
}

func (r *ExecutableRow) RemoveArgument(i int) error {
	args, err := removeAt(r.Arguments, i)
	if err != nil {
		return fmt.Errorf("remove argument %d: %w", i, err)
	}
	r.Arguments = args
	r.retype()
	return nil
}

func (r *ExecutableRow) MoveArgument(from, to int) error {
	if err := move(r.Arguments, from, to); err != nil {
		return fmt.Errorf("move argument: %w", err)
	}
	r.retype()
	return nil
}

func actionTypes(scope Scope) (action, argument Type) {
	switch scope {
	case ScopeTask:
		return TaskActionName, TaskActionArgument
	case ScopeKeyword:
		return KeywordActionName, KeywordActionArgument
	}
	return TestCaseActionName, TestCaseActionArgument
}

var forInNames = map[string]bool{
	"IN":           true,
	"IN RANGE":     true,
	"IN ENUMERATE": true,
	"IN ZIP":       true,
}

// IsForLoop reports whether the row opens a FOR loop.
func (r *ExecutableRow) IsForLoop() bool {
	return r.Action != nil && r.Action.Has(ForToken)
}

func (r *ExecutableRow) retype() {
	action, argument := actionTypes(r.Scope)
	isFor := false
	if r.Action != nil {
		r.Action.SetType(action)
		for _, t := range []Type{ForToken, EndToken} {
			r.Action.RemoveType(t)
		}
		switch strings.TrimSpace(r.Action.Text) {
		case "FOR", ":FOR":
			r.Action.AddType(ForToken)
			isFor = true
		case "END":
			r.Action.AddType(EndToken)
		}
		if n := r.Action.Normalized(); n == ":for" && !isFor {
			r.Action.AddType(ForToken)
			isFor = true
		}
	}
	for _, a := range r.Arguments {
		a.SetType(argument)
		a.RemoveType(ForInToken)
		if isFor && forInNames[strings.ToUpper(strings.TrimSpace(a.Text))] {
			a.AddType(ForInToken)
		}
	}
}
