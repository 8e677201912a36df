package robot

import (
	"fmt"
	"strings"
)

type SettingKind int

const (
	KindUnknown SettingKind = iota
	KindLibrary
	KindResource
	KindVariables
	KindDocumentation
	KindMetadata
	KindSuiteSetup
	KindSuiteTeardown
	KindTestSetup
	KindTestTeardown
	KindTestTemplate
	KindTestTimeout
	KindTaskSetup
	KindTaskTeardown
	KindTaskTemplate
	KindTaskTimeout
	KindForceTags
	KindDefaultTags

	// Local settings of test cases, tasks and keywords.
	KindTags
	KindSetup
	KindTeardown
	KindTemplate
	KindTimeout
	KindArguments
	KindReturn
)

var settingKindNames = map[SettingKind]string{
	KindUnknown:       "Unknown",
	KindLibrary:       "Library",
	KindResource:      "Resource",
	KindVariables:     "Variables",
	KindDocumentation: "Documentation",
	KindMetadata:      "Metadata",
	KindSuiteSetup:    "Suite Setup",
	KindSuiteTeardown: "Suite Teardown",
	KindTestSetup:     "Test Setup",
	KindTestTeardown:  "Test Teardown",
	KindTestTemplate:  "Test Template",
	KindTestTimeout:   "Test Timeout",
	KindTaskSetup:     "Task Setup",
	KindTaskTeardown:  "Task Teardown",
	KindTaskTemplate:  "Task Template",
	KindTaskTimeout:   "Task Timeout",
	KindForceTags:     "Force Tags",
	KindDefaultTags:   "Default Tags",
	KindTags:          "Tags",
	KindSetup:         "Setup",
	KindTeardown:      "Teardown",
	KindTemplate:      "Template",
	KindTimeout:       "Timeout",
	KindArguments:     "Arguments",
	KindReturn:        "Return",
}

func (k SettingKind) String() string {
	if name, ok := settingKindNames[k]; ok {
		return name
	}
	return "Invalid"
}

// Declaration is the canonical source text declaring a setting of this
// kind in the given scope: bare in the settings table, bracketed inside
// test cases, tasks and keywords.
func (k SettingKind) Declaration(scope Scope) string {
	if scope == ScopeSuite {
		return k.String()
	}
	return "[" + k.String() + "]"
}

var suiteSettingNames = map[string]SettingKind{
	"library":            KindLibrary,
	"resource":           KindResource,
	"variables":          KindVariables,
	"documentation":      KindDocumentation,
	"document":           KindDocumentation,
	"metadata":           KindMetadata,
	"suitesetup":         KindSuiteSetup,
	"suiteprecondition":  KindSuiteSetup,
	"suiteteardown":      KindSuiteTeardown,
	"suitepostcondition": KindSuiteTeardown,
	"testsetup":          KindTestSetup,
	"testprecondition":   KindTestSetup,
	"testteardown":       KindTestTeardown,
	"testpostcondition":  KindTestTeardown,
	"testtemplate":       KindTestTemplate,
	"testtimeout":        KindTestTimeout,
	"tasksetup":          KindTaskSetup,
	"taskteardown":       KindTaskTeardown,
	"tasktemplate":       KindTaskTemplate,
	"tasktimeout":        KindTaskTimeout,
	"forcetags":          KindForceTags,
	"defaulttags":        KindDefaultTags,
}

var testSettingNames = map[string]SettingKind{
	"documentation": KindDocumentation,
	"tags":          KindTags,
	"setup":         KindSetup,
	"precondition":  KindSetup,
	"teardown":      KindTeardown,
	"postcondition": KindTeardown,
	"template":      KindTemplate,
	"timeout":       KindTimeout,
}

var keywordSettingNames = map[string]SettingKind{
	"documentation": KindDocumentation,
	"tags":          KindTags,
	"arguments":     KindArguments,
	"return":        KindReturn,
	"teardown":      KindTeardown,
	"timeout":       KindTimeout,
}

// LookupSetting resolves a declaration cell to a setting kind. Local
// settings must be written in brackets; a trailing colon is accepted on
// suite settings. The second result is false for anything that is not a
// setting declaration of that scope at all.
func LookupSetting(scope Scope, text string) (SettingKind, bool) {
	names := suiteSettingNames
	if scope != ScopeSuite {
		trimmed := strings.TrimSpace(text)
		if !strings.HasPrefix(trimmed, "[") || !strings.HasSuffix(trimmed, "]") {
			return KindUnknown, false
		}
		text = trimmed[1 : len(trimmed)-1]
		names = testSettingNames
		if scope == ScopeKeyword {
			names = keywordSettingNames
		}
	}
	n := strings.TrimSuffix(Normalize(text), ":")
	kind, ok := names[n]
	return kind, ok
}

type valueShape int

const (
	// every value gets the head type
	shapeList valueShape = iota
	// the first value gets head, the rest get rest
	shapeHeadRest
	// name, arguments, then an optional WITH NAME alias
	shapeLibrary
)

type settingSpec struct {
	decl  Type
	shape valueShape
	head  Type
	rest  Type
}

type settingKey struct {
	scope Scope
	kind  SettingKind
}

var settingSpecs = map[settingKey]settingSpec{
	{ScopeSuite, KindLibrary}:       {SettingLibraryDeclaration, shapeLibrary, SettingLibraryName, SettingLibraryArgument},
	{ScopeSuite, KindResource}:      {SettingResourceDeclaration, shapeHeadRest, SettingResourceFileName, SettingResourceUnwantedArgument},
	{ScopeSuite, KindVariables}:     {SettingVariablesDeclaration, shapeHeadRest, SettingVariablesFileName, SettingVariablesArgument},
	{ScopeSuite, KindDocumentation}: {SettingDocumentationDeclaration, shapeList, SettingDocumentationText, SettingDocumentationText},
	{ScopeSuite, KindMetadata}:      {SettingMetadataDeclaration, shapeHeadRest, SettingMetadataKey, SettingMetadataValue},
	{ScopeSuite, KindSuiteSetup}:    {SettingSuiteSetupDeclaration, shapeHeadRest, SettingSuiteSetupKeywordName, SettingSuiteSetupKeywordArgument},
	{ScopeSuite, KindSuiteTeardown}: {SettingSuiteTeardownDeclaration, shapeHeadRest, SettingSuiteTeardownKeywordName, SettingSuiteTeardownKeywordArgument},
	{ScopeSuite, KindTestSetup}:     {SettingTestSetupDeclaration, shapeHeadRest, SettingTestSetupKeywordName, SettingTestSetupKeywordArgument},
	{ScopeSuite, KindTestTeardown}:  {SettingTestTeardownDeclaration, shapeHeadRest, SettingTestTeardownKeywordName, SettingTestTeardownKeywordArgument},
	{ScopeSuite, KindTestTemplate}:  {SettingTestTemplateDeclaration, shapeHeadRest, SettingTestTemplateKeywordName, SettingTestTemplateUnwantedArgument},
	{ScopeSuite, KindTestTimeout}:   {SettingTestTimeoutDeclaration, shapeHeadRest, SettingTestTimeoutValue, SettingTestTimeoutMessage},
	{ScopeSuite, KindTaskSetup}:     {SettingTaskSetupDeclaration, shapeHeadRest, SettingTaskSetupKeywordName, SettingTaskSetupKeywordArgument},
	{ScopeSuite, KindTaskTeardown}:  {SettingTaskTeardownDeclaration, shapeHeadRest, SettingTaskTeardownKeywordName, SettingTaskTeardownKeywordArgument},
	{ScopeSuite, KindTaskTemplate}:  {SettingTaskTemplateDeclaration, shapeHeadRest, SettingTaskTemplateKeywordName, SettingTaskTemplateUnwantedArgument},
	{ScopeSuite, KindTaskTimeout}:   {SettingTaskTimeoutDeclaration, shapeHeadRest, SettingTaskTimeoutValue, SettingTaskTimeoutMessage},
	{ScopeSuite, KindForceTags}:     {SettingForceTagsDeclaration, shapeList, SettingForceTag, SettingForceTag},
	{ScopeSuite, KindDefaultTags}:   {SettingDefaultTagsDeclaration, shapeList, SettingDefaultTag, SettingDefaultTag},
	{ScopeSuite, KindUnknown}:       {SettingUnknownDeclaration, shapeList, SettingUnknownArgument, SettingUnknownArgument},

	{ScopeTestCase, KindDocumentation}: {TestCaseSettingDocumentation, shapeList, TestCaseSettingDocumentationText, TestCaseSettingDocumentationText},
	{ScopeTestCase, KindTags}:          {TestCaseSettingTagsDeclaration, shapeList, TestCaseSettingTag, TestCaseSettingTag},
	{ScopeTestCase, KindSetup}:         {TestCaseSettingSetup, shapeHeadRest, TestCaseSettingSetupKeywordName, TestCaseSettingSetupKeywordArgument},
	{ScopeTestCase, KindTeardown}:      {TestCaseSettingTeardown, shapeHeadRest, TestCaseSettingTeardownKeywordName, TestCaseSettingTeardownKeywordArgument},
	{ScopeTestCase, KindTemplate}:      {TestCaseSettingTemplate, shapeHeadRest, TestCaseSettingTemplateKeywordName, TestCaseSettingTemplateUnwantedArgument},
	{ScopeTestCase, KindTimeout}:       {TestCaseSettingTimeout, shapeHeadRest, TestCaseSettingTimeoutValue, TestCaseSettingTimeoutMessage},
	{ScopeTestCase, KindUnknown}:       {TestCaseSettingUnknownDeclaration, shapeList, TestCaseSettingUnknownArgument, TestCaseSettingUnknownArgument},

	{ScopeTask, KindDocumentation}: {TaskSettingDocumentation, shapeList, TaskSettingDocumentationText, TaskSettingDocumentationText},
	{ScopeTask, KindTags}:          {TaskSettingTagsDeclaration, shapeList, TaskSettingTag, TaskSettingTag},
	{ScopeTask, KindSetup}:         {TaskSettingSetup, shapeHeadRest, TaskSettingSetupKeywordName, TaskSettingSetupKeywordArgument},
	{ScopeTask, KindTeardown}:      {TaskSettingTeardown, shapeHeadRest, TaskSettingTeardownKeywordName, TaskSettingTeardownKeywordArgument},
	{ScopeTask, KindTemplate}:      {TaskSettingTemplate, shapeHeadRest, TaskSettingTemplateKeywordName, TaskSettingTemplateUnwantedArgument},
	{ScopeTask, KindTimeout}:       {TaskSettingTimeout, shapeHeadRest, TaskSettingTimeoutValue, TaskSettingTimeoutMessage},
	{ScopeTask, KindUnknown}:       {TaskSettingUnknownDeclaration, shapeList, TaskSettingUnknownArgument, TaskSettingUnknownArgument},

	{ScopeKeyword, KindDocumentation}: {KeywordSettingDocumentation, shapeList, KeywordSettingDocumentationText, KeywordSettingDocumentationText},
	{ScopeKeyword, KindTags}:          {KeywordSettingTagsDeclaration, shapeList, KeywordSettingTag, KeywordSettingTag},
	{ScopeKeyword, KindArguments}:     {KeywordSettingArguments, shapeList, KeywordSettingArgument, KeywordSettingArgument},
	{ScopeKeyword, KindReturn}:        {KeywordSettingReturn, shapeList, KeywordSettingReturnValue, KeywordSettingReturnValue},
	{ScopeKeyword, KindTeardown}:      {KeywordSettingTeardown, shapeHeadRest, KeywordSettingTeardownKeywordName, KeywordSettingTeardownKeywordArgument},
	{ScopeKeyword, KindTimeout}:       {KeywordSettingTimeout, shapeHeadRest, KeywordSettingTimeoutValue, KeywordSettingTimeoutMessage},
	{ScopeKeyword, KindUnknown}:       {KeywordSettingUnknownDeclaration, shapeList, KeywordSettingUnknownArgument, KeywordSettingUnknownArgument},
}

func specFor(scope Scope, kind SettingKind) settingSpec {
	if s, ok := settingSpecs[settingKey{scope, kind}]; ok {
		return s
	}
	return settingSpecs[settingKey{scope, KindUnknown}]
}

// DeclarationType returns the tag of the declaration cell of a setting.
func DeclarationType(scope Scope, kind SettingKind) Type {
	return specFor(scope, kind).decl
}

// IsLibraryAlias reports whether text introduces a library alias.
func IsLibraryAlias(text string) bool {
	return Normalize(text) == "withname" || text == "AS"
}

// Setting is a suite setting row or a local `[Setting]` of a test case,
// task or keyword. Value tokens are retyped from their index on every
// change.
type Setting struct {
	Scope       Scope
	Kind        SettingKind
	Declaration *Token
	Values      []*Token
	Comment     []*Token
}

// NewSetting builds a setting from plain texts.
func NewSetting(scope Scope, kind SettingKind, declaration string, values ...string) *Setting {
	s := &Setting{Scope: scope, Kind: kind, Declaration: NewToken(declaration)}
	for _, v := range values {
		s.Values = append(s.Values, NewToken(v))
	}
	s.retype()
	return s
}

// NewSettingFromToken starts a setting from an already positioned
// declaration token.
func NewSettingFromToken(scope Scope, kind SettingKind, declaration *Token) *Setting {
	s := &Setting{Scope: scope, Kind: kind, Declaration: declaration}
	s.retype()
	return s
}

func (s *Setting) Tokens() []*Token {
	out := []*Token{s.Declaration}
	out = append(out, s.Values...)
	return append(out, s.Comment...)
}

func (s *Setting) AddComment(t *Token) { s.Comment = append(s.Comment, t) }

// AppendValue adds a value cell and returns the tag it was given.
func (s *Setting) AppendValue(t *Token) Type {
	s.Values = append(s.Values, t)
	s.retype()
	return t.Type()
}

func (s *Setting) ValueTexts() []string { return tokenTexts(s.Values) }

func (s *Setting) SetValue(i int, text string) error {
	if _, err := setAt(s.Values, i, text); err != nil {
		return fmt.Errorf("set %s value %d: %w", s.Kind, i, err)
	}
	s.retype()
	return nil
}

func (s *Setting) InsertValue(i int, text string) error {
	values, err := insertAt(s.Values, i, NewToken(text))
	if err != nil {
		return fmt.Errorf("insert %s value %d: %w", s.Kind, i, err)
	}
	s.Values = values
	s.retype()
	return nil
}

func (s *Setting) RemoveValue(i int) error {
	values, err := removeAt(s.Values, i)
	if err != nil {
		return fmt.Errorf("remove %s value %d: %w", s.Kind, i, err)
	}
	s.Values = values
	s.retype()
	return nil
}

func (s *Setting) MoveValue(from, to int) error {
	if err := move(s.Values, from, to); err != nil {
		return fmt.Errorf("move %s value: %w", s.Kind, err)
	}
	s.retype()
	return nil
}

// Alias returns the library alias, if the setting declares one.
func (s *Setting) Alias() *Token {
	for _, v := range s.Values {
		if v.Type() == SettingLibraryAlias {
			return v
		}
	}
	return nil
}

func (s *Setting) retype() {
	spec := specFor(s.Scope, s.Kind)
	if s.Declaration != nil {
		s.Declaration.SetType(spec.decl)
	}
	aliasAt := -1
	for i, v := range s.Values {
		switch {
		case spec.shape == shapeLibrary && aliasAt < 0 && i > 0 && IsLibraryAlias(v.Text):
			aliasAt = i
			v.SetType(SettingLibraryAliasDeclaration)
		case aliasAt >= 0 && i == aliasAt+1:
			v.SetType(SettingLibraryAlias)
		case aliasAt >= 0:
			v.SetType(Unknown)
		default:
			v.SetType(spec.valueType(i))
		}
	}
}

func (spec settingSpec) valueType(i int) Type {
	if i > 0 && spec.shape != shapeList {
		return spec.rest
	}
	return spec.head
}

var settingDeclarations = func() map[Type]bool {
	m := make(map[Type]bool, len(settingSpecs))
	for _, spec := range settingSpecs {
		m[spec.decl] = true
	}
	return m
}()

// IsSettingDeclaration reports whether t tags the declaration cell of a
// suite or local setting.
func (t Type) IsSettingDeclaration() bool {
	return settingDeclarations[t]
}
