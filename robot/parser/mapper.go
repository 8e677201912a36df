package parser

import (
	"strings"

	"github.com/dhamidi/rfparse/robot"
	"github.com/tliron/commonlog"
)

// Mapper classifies one cell. The pipeline asks each mapper in order and
// the first whose CanApply holds produces the token. Apply may push or
// pop states and attach the token to the document.
type Mapper interface {
	CanApply(ctx *Context, text string) bool
	Apply(ctx *Context, text string) *robot.Token
}

type commentHolder interface {
	AddComment(t *robot.Token)
}

// Context is the mutable state of one parse, handed to every mapper.
type Context struct {
	File     *robot.RobotFile
	Line     *robot.RobotLine
	Token    *robot.Token
	States   *Stack
	Position PositionInfo

	// Element is the setting, variable or row the current logical row
	// builds. It is reset on every line unless the line continues the
	// previous one.
	Element robot.Element
	// Block is the test case, task or keyword being parsed.
	Block *robot.Block
	// Header is the last opened table header.
	Header *robot.TableHeader

	candidates []robot.Type
	comment    commentHolder
	extra      []*robot.Token
	log        commonlog.Logger
}

// Emit appends a token to the line after the one being mapped. Mappers
// that split a cell use it for the remaining pieces.
func (ctx *Context) Emit(t *robot.Token) { ctx.extra = append(ctx.extra, t) }

// tokenAt builds a token for the part of the current cell starting at
// byte delta.
func (ctx *Context) tokenAt(text string, delta int, types ...robot.Type) *robot.Token {
	pos := ctx.Token.Pos
	pos.Offset += delta
	pos.Column += delta
	t := robot.NewToken(text, types...)
	t.Pos = pos
	return t
}

func (ctx *Context) inState(kinds ...StateKind) bool {
	cur := ctx.States.Current().Kind
	for _, k := range kinds {
		if cur == k {
			return true
		}
	}
	return false
}

// lineHasComment reports whether an earlier cell of the line started a
// comment.
func (ctx *Context) lineHasComment() bool {
	for _, t := range ctx.Line.Tokens() {
		if t.IsComment() || strings.HasPrefix(t.Text, "#") {
			return true
		}
	}
	return false
}

type tableHeaderMapper struct{}

func (tableHeaderMapper) CanApply(ctx *Context, text string) bool {
	return looksLikeHeader(text) && ctx.Position.IsReallyFirstElement()
}

func (tableHeaderMapper) Apply(ctx *Context, text string) *robot.Token {
	tok := ctx.Token
	table, typ, known := RecognizeHeader(text)
	tok.SetType(typ)
	header := &robot.TableHeader{Declaration: tok}
	ctx.States.Clear()
	ctx.Block = nil
	ctx.Element = nil
	ctx.Header = header
	if !known || table == robot.TableNone {
		ctx.States.Push(State{Kind: StateTrash})
		return tok
	}
	ctx.File.Table(table).AddHeader(header)
	ctx.States.Push(State{Kind: StateTableHeader, Table: table})
	return tok
}

// tableHeaderColumnMapper takes the cells after a table name on its
// header line. A stray `...` there is left unknown.
type tableHeaderColumnMapper struct{}

func (tableHeaderColumnMapper) CanApply(ctx *Context, text string) bool {
	return ctx.States.LastNotCommentState().Kind == StateTableHeader && text != ContinueMarker
}

func (tableHeaderColumnMapper) Apply(ctx *Context, text string) *robot.Token {
	ctx.Token.SetType(robot.TableHeaderColumn)
	ctx.Header.AddColumn(ctx.Token)
	return ctx.Token
}

// garbageMapper handles everything before the first table and inside
// unknown or comment tables.
type garbageMapper struct{}

func (garbageMapper) CanApply(ctx *Context, text string) bool {
	return ctx.inState(StateUnknown, StateTrash)
}

func (garbageMapper) Apply(ctx *Context, text string) *robot.Token {
	if ctx.lineHasComment() {
		ctx.Token.SetType(robot.CommentContinue)
	} else {
		ctx.Token.SetType(robot.Unknown)
	}
	return ctx.Token
}

type commentMapper struct{}

func (commentMapper) CanApply(ctx *Context, text string) bool {
	return ctx.inState(StateComment) || strings.HasPrefix(text, "#")
}

func (commentMapper) Apply(ctx *Context, text string) *robot.Token {
	tok := ctx.Token
	if ctx.inState(StateComment) {
		tok.SetType(robot.CommentContinue)
	} else {
		ctx.comment = ctx.commentHolder()
		ctx.States.Push(State{Kind: StateComment, Table: ctx.States.Table()})
		tok.SetType(robot.StartHashComment)
	}
	if ctx.comment != nil {
		ctx.comment.AddComment(tok)
	}
	return tok
}

// commentHolder picks what a comment starting now belongs to: the header
// of a header line, the element of the row, a comment row of the current
// block, or else the table header.
func (ctx *Context) commentHolder() commentHolder {
	switch {
	case ctx.inState(StateTableHeader):
		return ctx.Header
	case ctx.Element != nil:
		return ctx.Element
	case ctx.Block != nil && ctx.inState(StateDeclaration):
		row := robot.NewExecutableRow(ctx.Block.Scope)
		ctx.Block.Append(row)
		return row
	case ctx.Header != nil:
		return ctx.Header
	}
	return nil
}

type unknownMapper struct{}

func (unknownMapper) CanApply(ctx *Context, text string) bool { return true }

func (unknownMapper) Apply(ctx *Context, text string) *robot.Token {
	ctx.log.Debugf("%s:%d:%d: unclassified %q in state %s",
		ctx.File.Path, ctx.Token.Pos.Line, ctx.Token.Pos.Column, text, ctx.States.Current())
	ctx.Token.SetType(robot.Unknown)
	return ctx.Token
}
