package parser

import (
	"fmt"
	"io"

	"github.com/dhamidi/rfparse/robot"
	"github.com/tliron/commonlog"
)

type Option func(*Parser)

func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithMode forces the separator mode instead of detecting it.
func WithMode(mode robot.SeparatorKind) Option {
	return func(p *Parser) {
		p.mode = mode
		p.forceMode = true
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

func WithPipeline(pipeline *Pipeline) Option {
	return func(p *Parser) {
		p.pipeline = pipeline
	}
}

type Parser struct {
	file      string
	mode      robot.SeparatorKind
	forceMode bool
	log       commonlog.Logger
	pipeline  *Pipeline
}

func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = commonlog.GetLogger("rfparse.parser")
	}
	if p.pipeline == nil {
		p.pipeline = DefaultPipeline()
	}
	return p
}

// Parse parses the full text of one file. It never fails: cells that fit
// nowhere are kept as unknown tokens.
func Parse(text string, opts ...Option) *robot.RobotFile {
	return New(opts...).Parse(text)
}

func ParseReader(r io.Reader, opts ...Option) (*robot.RobotFile, error) {
	p := New(opts...)
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p.file, err)
	}
	return p.Parse(string(data)), nil
}

// continuation remembers the end of the last line with content, which a
// following `...` line picks up again.
type continuation struct {
	states  []State
	element robot.Element
}

func (p *Parser) Parse(text string) *robot.RobotFile {
	f := robot.NewRobotFile(p.file)
	f.Mode = p.mode
	if !p.forceMode {
		f.Mode = DetectMode(p.file, text)
	}
	ctx := &Context{
		File:   f,
		States: &Stack{},
		log:    p.log,
	}
	var cont *continuation
	offset := 0
	for i, raw := range splitLines(text) {
		line := &robot.RobotLine{Number: i + 1, Offset: offset, EOL: raw.eol}
		f.Lines = append(f.Lines, line)
		offset += len(raw.text) + len(raw.eol)

		ctx.Line = line
		ctx.Element = nil
		ctx.comment = nil
		content, header := p.parseLine(ctx, raw.text, f.Mode, cont)
		switch {
		case header:
			cont = nil
		case content:
			cont = &continuation{states: trimComments(ctx.States.Snapshot()), element: ctx.Element}
		}
		ctx.States.UpdateForNewLine()
	}
	return f
}

// parseLine maps the cells of one line. It reports whether the line held
// anything besides comments and whether it opened a table.
func (p *Parser) parseLine(ctx *Context, text string, mode robot.SeparatorKind, cont *continuation) (content, header bool) {
	line := ctx.Line
	for _, c := range SplitLine(text, mode) {
		pos := robot.Position{Offset: line.Offset + c.Column, Line: line.Number, Column: c.Column}
		switch c.Kind {
		case CellSeparator:
			line.Append(&robot.Separator{Kind: c.SepKind, Text: c.Text, Pos: pos})
			continue
		case CellPrettyAlign:
			line.Append(&robot.Token{Text: c.Text, Pos: pos, Types: []robot.Type{robot.PrettyAlignSpace}})
			continue
		}
		tok := &robot.Token{Text: c.Text, Pos: pos}
		ctx.Token = tok
		ctx.Position = Describe(line, tok)
		if tok.Text == ContinueMarker && p.continues(ctx, cont) {
			line.Append(tok)
			continue
		}
		ctx.candidates = recognize(tok.Text)
		ctx.extra = nil
		mapped := p.pipeline.Map(ctx, tok.Text)
		for _, typ := range ctx.candidates {
			mapped.AddType(typ)
		}
		if c.Kind == CellEmpty {
			mapped.AddType(robot.EmptyCell)
		}
		tagVariableUsage(mapped)
		line.Append(mapped)
		for _, e := range ctx.extra {
			tagVariableUsage(e)
			line.Append(e)
		}
		switch {
		case ctx.Header != nil && ctx.Header.Declaration == mapped:
			header = true
		case !mapped.IsComment():
			content = true
		}
	}
	return content, header
}

// continues handles a `...` cell that continues the previous row or
// follows a name inline. The marker itself is not mapped. Header lines
// have no inline continuation.
func (p *Parser) continues(ctx *Context, cont *continuation) bool {
	table := ctx.States.Table()
	if cont != nil && ctx.Position.IsContinuePreviousLineTheFirstToken(table) {
		ctx.States.Restore(cont.states)
		ctx.Element = cont.element
		ctx.Token.SetType(robot.PreviousLineContinue)
		p.log.Debugf("%s:%d: continues %s", ctx.File.Path, ctx.Line.Number, ctx.States.Current())
		return true
	}
	switch table {
	case robot.TableTestCases, robot.TableTasks, robot.TableKeywords:
		if ctx.States.IsTableInsideStateInHierarchy() && ctx.Position.IsInlined() {
			ctx.Token.SetType(robot.PreviousLineContinue)
			return true
		}
	}
	return false
}

func trimComments(states []State) []State {
	for len(states) > 0 && states[len(states)-1].Kind == StateComment {
		states = states[:len(states)-1]
	}
	return states
}

// tagVariableUsage adds VARIABLE_USAGE to tokens that reference a
// variable. Comments, alignment and table headers never do.
func tagVariableUsage(t *robot.Token) {
	if t.IsComment() || t.IsPrettyAlign() || t.Type().IsTableHeader() {
		return
	}
	if HasVariables(t.Text) {
		t.AddType(robot.VariableUsage)
	}
}

type rawLine struct {
	text string
	eol  string
}

// splitLines cuts text into lines, keeping each line terminator (`\n`,
// `\r\n` or `\r`) so the file can be written back unchanged.
func splitLines(text string) []rawLine {
	var lines []rawLine
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, rawLine{text[start:i], "\n"})
			start = i + 1
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				lines = append(lines, rawLine{text[start:i], "\r\n"})
				i++
			} else {
				lines = append(lines, rawLine{text[start:i], "\r"})
			}
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, rawLine{text: text[start:]})
	}
	return lines
}
