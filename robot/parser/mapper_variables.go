package parser

import "github.com/dhamidi/rfparse/robot"

type variableDeclarationMapper struct{}

func (variableDeclarationMapper) CanApply(ctx *Context, text string) bool {
	return ctx.Position.IsReallyFirstElement() && robot.DeclarationKind(text) != robot.Invalid
}

func (variableDeclarationMapper) Apply(ctx *Context, text string) *robot.Token {
	openVariable(ctx)
	return ctx.Token
}

func openVariable(ctx *Context) {
	ctx.States.PopTo(StateTableInside)
	ctx.States.Push(State{Kind: StateVariable, Table: robot.TableVariables})
	v := robot.NewVariableFromToken(ctx.Token)
	ctx.File.Variables.Append(v)
	ctx.Element = v
}

type variableValueMapper struct{}

func (variableValueMapper) CanApply(ctx *Context, text string) bool {
	if !ctx.inState(StateVariable) {
		return false
	}
	_, ok := ctx.Element.(*robot.Variable)
	return ok
}

func (variableValueMapper) Apply(ctx *Context, text string) *robot.Token {
	ctx.Element.(*robot.Variable).AppendValue(ctx.Token)
	return ctx.Token
}

// wrongVariableMapper keeps a malformed declaration such as `invalid}`
// as a variable whose declaration is tagged wrongly defined.
type wrongVariableMapper struct{}

func (wrongVariableMapper) CanApply(ctx *Context, text string) bool {
	return ctx.Position.IsReallyFirstElement()
}

func (wrongVariableMapper) Apply(ctx *Context, text string) *robot.Token {
	openVariable(ctx)
	return ctx.Token
}

func variableTableMappers() []Mapper {
	return []Mapper{variableDeclarationMapper{}, variableValueMapper{}}
}
