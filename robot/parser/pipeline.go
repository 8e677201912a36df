package parser

import (
	"sync"

	"github.com/dhamidi/rfparse/robot"
)

// Pipeline holds the ordered mapper chains. It is built once and only
// read afterwards, so one pipeline can serve any number of parsers.
type Pipeline struct {
	structural []Mapper
	tables     map[robot.TableType][]Mapper
	unknown    map[robot.TableType][]Mapper
	fallback   Mapper
}

// NewPipeline builds the mapper chains: table headers, garbage, comments
// and header columns first, then the chain of the current table, then the
// mappers that keep unrecognized rows of that table together.
func NewPipeline() *Pipeline {
	p := &Pipeline{
		structural: []Mapper{
			tableHeaderMapper{},
			garbageMapper{},
			commentMapper{},
			tableHeaderColumnMapper{},
		},
		tables: map[robot.TableType][]Mapper{
			robot.TableSettings:  settingTableMappers(),
			robot.TableVariables: variableTableMappers(),
		},
		unknown: map[robot.TableType][]Mapper{
			robot.TableSettings:  {unknownSettingMapper{}},
			robot.TableVariables: {wrongVariableMapper{}},
		},
		fallback: unknownMapper{},
	}
	for _, table := range []robot.TableType{robot.TableTestCases, robot.TableTasks, robot.TableKeywords} {
		p.tables[table] = blockTableMappers(table)
		p.unknown[table] = []Mapper{unknownLocalSettingMapper{table: table}}
	}
	return p
}

// DefaultPipeline is shared by parsers created without WithPipeline.
var DefaultPipeline = sync.OnceValue(NewPipeline)

// Find returns the first mapper that accepts the cell, or nil. Table
// chains only apply below a table header line.
func (p *Pipeline) Find(ctx *Context, text string) Mapper {
	for _, m := range p.structural {
		if m.CanApply(ctx, text) {
			return m
		}
	}
	if !ctx.States.IsTableInsideStateInHierarchy() {
		return nil
	}
	table := ctx.States.Table()
	for _, m := range p.tables[table] {
		if m.CanApply(ctx, text) {
			return m
		}
	}
	for _, m := range p.unknown[table] {
		if m.CanApply(ctx, text) {
			return m
		}
	}
	return nil
}

// Map classifies one cell, falling back to an unknown token.
func (p *Pipeline) Map(ctx *Context, text string) *robot.Token {
	if m := p.Find(ctx, text); m != nil {
		return m.Apply(ctx, text)
	}
	return p.fallback.Apply(ctx, text)
}
