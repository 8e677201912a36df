package parser

import "github.com/dhamidi/rfparse/robot"

// The test case, task and keyword tables share their mappers; scope
// decides the tags and the table the blocks are added to.

func scopeOf(table robot.TableType) robot.Scope {
	switch table {
	case robot.TableTasks:
		return robot.ScopeTask
	case robot.TableKeywords:
		return robot.ScopeKeyword
	}
	return robot.ScopeTestCase
}

type blockDeclarationMapper struct {
	table robot.TableType
}

func (m blockDeclarationMapper) CanApply(ctx *Context, text string) bool {
	return ctx.Position.IsReallyFirstElement()
}

func (m blockDeclarationMapper) Apply(ctx *Context, text string) *robot.Token {
	ctx.States.PopTo(StateTableInside)
	ctx.States.Push(State{Kind: StateDeclaration, Table: m.table})
	b := robot.NewBlock(scopeOf(m.table), ctx.Token)
	ctx.File.Table(m.table).(robot.BlockTable).Append(b)
	ctx.Block = b
	ctx.Element = nil
	return ctx.Token
}

// localSettingMapper opens a `[Setting]` of one kind inside a block.
type localSettingMapper struct {
	table robot.TableType
	kind  robot.SettingKind
}

func (m localSettingMapper) CanApply(ctx *Context, text string) bool {
	if ctx.Block == nil || !ctx.inState(StateDeclaration) {
		return false
	}
	kind, ok := robot.LookupSetting(scopeOf(m.table), text)
	return ok && kind == m.kind
}

func (m localSettingMapper) Apply(ctx *Context, text string) *robot.Token {
	openLocalSetting(ctx, m.table, m.kind)
	return ctx.Token
}

func openLocalSetting(ctx *Context, table robot.TableType, kind robot.SettingKind) {
	s := robot.NewSettingFromToken(scopeOf(table), kind, ctx.Token)
	ctx.Block.Append(s)
	ctx.States.Push(State{Kind: StateSetting, Table: table, Setting: kind})
	ctx.Element = s
}

// loopBodyMapper takes the `\` that starts a step of an old style
// `:FOR` loop. The cells after it form an ordinary step.
type loopBodyMapper struct {
	table robot.TableType
}

func (m loopBodyMapper) CanApply(ctx *Context, text string) bool {
	return ctx.Block != nil && ctx.inState(StateDeclaration) && text == LoopBodyMarker
}

func (m loopBodyMapper) Apply(ctx *Context, text string) *robot.Token {
	row := currentRow(ctx, m.table, StateAssignment)
	row.SetLoopBody(ctx.Token)
	return ctx.Token
}

// assignmentMapper takes the `${x}=` cells in front of a keyword call.
type assignmentMapper struct {
	table robot.TableType
}

func (m assignmentMapper) CanApply(ctx *Context, text string) bool {
	return ctx.Block != nil && ctx.inState(StateDeclaration, StateAssignment) && robot.IsAssignment(text)
}

func (m assignmentMapper) Apply(ctx *Context, text string) *robot.Token {
	row := currentRow(ctx, m.table, StateAssignment)
	row.AddAssignment(ctx.Token)
	return ctx.Token
}

// currentRow returns the row of the current line, opening one when the
// parser is at the start of a step.
func currentRow(ctx *Context, table robot.TableType, next StateKind) *robot.ExecutableRow {
	if row, ok := ctx.Element.(*robot.ExecutableRow); ok && !ctx.inState(StateDeclaration) {
		if !ctx.inState(next) {
			ctx.States.Push(State{Kind: next, Table: table})
		}
		return row
	}
	row := robot.NewExecutableRow(ctx.Block.Scope)
	ctx.Block.Append(row)
	ctx.Element = row
	ctx.States.Push(State{Kind: next, Table: table})
	return row
}

type actionMapper struct {
	table robot.TableType
}

func (m actionMapper) CanApply(ctx *Context, text string) bool {
	return ctx.Block != nil && ctx.inState(StateDeclaration, StateAssignment) && !bracketed.MatchString(text)
}

func (m actionMapper) Apply(ctx *Context, text string) *robot.Token {
	row := currentRow(ctx, m.table, StateAction)
	row.SetActionToken(ctx.Token)
	return ctx.Token
}

type argumentMapper struct {
	table robot.TableType
}

func (m argumentMapper) CanApply(ctx *Context, text string) bool {
	if !ctx.inState(StateAction, StateActionArgument) {
		return false
	}
	_, ok := ctx.Element.(*robot.ExecutableRow)
	return ok
}

func (m argumentMapper) Apply(ctx *Context, text string) *robot.Token {
	row := ctx.Element.(*robot.ExecutableRow)
	if ctx.inState(StateAction) {
		ctx.States.Push(State{Kind: StateActionArgument, Table: m.table})
	}
	row.AppendArgument(ctx.Token)
	return ctx.Token
}

// unknownLocalSettingMapper keeps `[Anything]` at the start of a step as
// an unknown local setting.
type unknownLocalSettingMapper struct {
	table robot.TableType
}

func (m unknownLocalSettingMapper) CanApply(ctx *Context, text string) bool {
	return ctx.Block != nil && ctx.inState(StateDeclaration) && bracketed.MatchString(text)
}

func (m unknownLocalSettingMapper) Apply(ctx *Context, text string) *robot.Token {
	openLocalSetting(ctx, m.table, robot.KindUnknown)
	return ctx.Token
}

var localSettingKinds = map[robot.TableType][]robot.SettingKind{
	robot.TableTestCases: {robot.KindDocumentation, robot.KindTags, robot.KindSetup, robot.KindTeardown, robot.KindTemplate, robot.KindTimeout},
	robot.TableTasks:     {robot.KindDocumentation, robot.KindTags, robot.KindSetup, robot.KindTeardown, robot.KindTemplate, robot.KindTimeout},
	robot.TableKeywords:  {robot.KindDocumentation, robot.KindTags, robot.KindArguments, robot.KindReturn, robot.KindTeardown, robot.KindTimeout},
}

func blockTableMappers(table robot.TableType) []Mapper {
	mappers := []Mapper{blockDeclarationMapper{table: table}}
	for _, kind := range localSettingKinds[table] {
		mappers = append(mappers, localSettingMapper{table: table, kind: kind})
	}
	return append(mappers,
		settingValueMapper{},
		loopBodyMapper{table: table},
		assignmentMapper{table: table},
		actionMapper{table: table},
		argumentMapper{table: table},
	)
}
