package parser

import (
	"github.com/dhamidi/rfparse/robot"
)

// settingDeclarationMapper opens a suite setting of one kind.
type settingDeclarationMapper struct {
	kind robot.SettingKind
}

func (m settingDeclarationMapper) CanApply(ctx *Context, text string) bool {
	if !ctx.Position.IsReallyFirstElement() {
		return false
	}
	kind, ok := robot.LookupSetting(robot.ScopeSuite, text)
	return ok && kind == m.kind
}

func (m settingDeclarationMapper) Apply(ctx *Context, text string) *robot.Token {
	openSuiteSetting(ctx, m.kind, ctx.Token)
	return ctx.Token
}

func openSuiteSetting(ctx *Context, kind robot.SettingKind, decl *robot.Token) *robot.Setting {
	ctx.States.PopTo(StateTableInside)
	ctx.States.Push(State{Kind: StateSetting, Table: robot.TableSettings, Setting: kind})
	s := robot.NewSettingFromToken(robot.ScopeSuite, kind, decl)
	ctx.File.Settings.Append(s)
	ctx.Element = s
	return s
}

// metadataOldSyntaxMapper splits the legacy `Meta: Name` cell into the
// declaration, the alignment whitespace and the metadata key.
type metadataOldSyntaxMapper struct{}

func (metadataOldSyntaxMapper) CanApply(ctx *Context, text string) bool {
	if !ctx.Position.IsReallyFirstElement() {
		return false
	}
	m := oldMetadataSyntax.FindStringSubmatch(text)
	return m != nil && m[3] != ""
}

func (metadataOldSyntaxMapper) Apply(ctx *Context, text string) *robot.Token {
	m := oldMetadataSyntax.FindStringSubmatch(text)
	decl, space, key := m[1], m[2], m[3]
	tok := ctx.Token
	tok.Text = decl
	s := openSuiteSetting(ctx, robot.KindMetadata, tok)
	if space != "" {
		ctx.Emit(ctx.tokenAt(space, len(decl), robot.PrettyAlignSpace))
	}
	keyTok := ctx.tokenAt(key, len(decl)+len(space))
	s.AppendValue(keyTok)
	ctx.Emit(keyTok)
	return tok
}

// settingValueMapper appends cells to the open setting, which assigns
// their tags from their index.
type settingValueMapper struct{}

func (m settingValueMapper) CanApply(ctx *Context, text string) bool {
	if !ctx.inState(StateSetting, StateSettingAlias) {
		return false
	}
	_, ok := ctx.Element.(*robot.Setting)
	return ok
}

func (m settingValueMapper) Apply(ctx *Context, text string) *robot.Token {
	s := ctx.Element.(*robot.Setting)
	typ := s.AppendValue(ctx.Token)
	if typ == robot.SettingLibraryAliasDeclaration {
		cur := ctx.States.Current()
		ctx.States.Push(State{Kind: StateSettingAlias, Table: cur.Table, Setting: cur.Setting})
	}
	return ctx.Token
}

// unknownSettingMapper keeps an unrecognized first cell of the settings
// table as an unknown setting, so that its values stay grouped.
type unknownSettingMapper struct{}

func (unknownSettingMapper) CanApply(ctx *Context, text string) bool {
	return ctx.Position.IsReallyFirstElement()
}

func (unknownSettingMapper) Apply(ctx *Context, text string) *robot.Token {
	openSuiteSetting(ctx, robot.KindUnknown, ctx.Token)
	return ctx.Token
}

var suiteSettingKinds = []robot.SettingKind{
	robot.KindLibrary,
	robot.KindResource,
	robot.KindVariables,
	robot.KindDocumentation,
	robot.KindMetadata,
	robot.KindSuiteSetup,
	robot.KindSuiteTeardown,
	robot.KindTestSetup,
	robot.KindTestTeardown,
	robot.KindTestTemplate,
	robot.KindTestTimeout,
	robot.KindTaskSetup,
	robot.KindTaskTeardown,
	robot.KindTaskTemplate,
	robot.KindTaskTimeout,
	robot.KindForceTags,
	robot.KindDefaultTags,
}

func settingTableMappers() []Mapper {
	mappers := []Mapper{metadataOldSyntaxMapper{}}
	for _, kind := range suiteSettingKinds {
		mappers = append(mappers, settingDeclarationMapper{kind: kind})
	}
	return append(mappers, settingValueMapper{})
}
