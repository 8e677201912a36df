package robot

// Type is a semantic tag attached to a token. A token carries an ordered
// set of tags; the first one is its primary classification.
type Type int

const (
	Unknown Type = iota
	VariableUsage
	Assignment
	PrettyAlignSpace
	PreviousLineContinue
	StartHashComment
	CommentContinue
	EmptyCell

	// Table headers
	TableHeaderColumn
	SettingsTableHeader
	VariablesTableHeader
	TestCasesTableHeader
	TasksTableHeader
	KeywordsTableHeader
	CommentsTableHeader

	// Settings table
	SettingLibraryDeclaration
	SettingLibraryName
	SettingLibraryArgument
	SettingLibraryAliasDeclaration
	SettingLibraryAlias
	SettingResourceDeclaration
	SettingResourceFileName
	SettingResourceUnwantedArgument
	SettingVariablesDeclaration
	SettingVariablesFileName
	SettingVariablesArgument
	SettingDocumentationDeclaration
	SettingDocumentationText
	SettingMetadataDeclaration
	SettingMetadataKey
	SettingMetadataValue
	SettingSuiteSetupDeclaration
	SettingSuiteSetupKeywordName
	SettingSuiteSetupKeywordArgument
	SettingSuiteTeardownDeclaration
	SettingSuiteTeardownKeywordName
	SettingSuiteTeardownKeywordArgument
	SettingTestSetupDeclaration
	SettingTestSetupKeywordName
	SettingTestSetupKeywordArgument
	SettingTestTeardownDeclaration
	SettingTestTeardownKeywordName
	SettingTestTeardownKeywordArgument
	SettingTestTemplateDeclaration
	SettingTestTemplateKeywordName
	SettingTestTemplateUnwantedArgument
	SettingTestTimeoutDeclaration
	SettingTestTimeoutValue
	SettingTestTimeoutMessage
	SettingTaskSetupDeclaration
	SettingTaskSetupKeywordName
	SettingTaskSetupKeywordArgument
	SettingTaskTeardownDeclaration
	SettingTaskTeardownKeywordName
	SettingTaskTeardownKeywordArgument
	SettingTaskTemplateDeclaration
	SettingTaskTemplateKeywordName
	SettingTaskTemplateUnwantedArgument
	SettingTaskTimeoutDeclaration
	SettingTaskTimeoutValue
	SettingTaskTimeoutMessage
	SettingForceTagsDeclaration
	SettingForceTag
	SettingDefaultTagsDeclaration
	SettingDefaultTag
	SettingUnknownDeclaration
	SettingUnknownArgument

	// Variables table
	VariablesScalarDeclaration
	VariablesScalarAsListDeclaration
	VariablesListDeclaration
	VariablesDictionaryDeclaration
	VariablesWrongDefined
	VariablesVariableValue

	// Test cases table
	TestCaseName
	TestCaseActionName
	TestCaseActionArgument
	TestCaseSettingDocumentation
	TestCaseSettingDocumentationText
	TestCaseSettingTagsDeclaration
	TestCaseSettingTag
	TestCaseSettingSetup
	TestCaseSettingSetupKeywordName
	TestCaseSettingSetupKeywordArgument
	TestCaseSettingTeardown
	TestCaseSettingTeardownKeywordName
	TestCaseSettingTeardownKeywordArgument
	TestCaseSettingTemplate
	TestCaseSettingTemplateKeywordName
	TestCaseSettingTemplateUnwantedArgument
	TestCaseSettingTimeout
	TestCaseSettingTimeoutValue
	TestCaseSettingTimeoutMessage
	TestCaseSettingUnknownDeclaration
	TestCaseSettingUnknownArgument

	// Tasks table
	TaskName
	TaskActionName
	TaskActionArgument
	TaskSettingDocumentation
	TaskSettingDocumentationText
	TaskSettingTagsDeclaration
	TaskSettingTag
	TaskSettingSetup
	TaskSettingSetupKeywordName
	TaskSettingSetupKeywordArgument
	TaskSettingTeardown
	TaskSettingTeardownKeywordName
	TaskSettingTeardownKeywordArgument
	TaskSettingTemplate
	TaskSettingTemplateKeywordName
	TaskSettingTemplateUnwantedArgument
	TaskSettingTimeout
	TaskSettingTimeoutValue
	TaskSettingTimeoutMessage
	TaskSettingUnknownDeclaration
	TaskSettingUnknownArgument

	// Keywords table
	UserKeywordName
	KeywordActionName
	KeywordActionArgument
	KeywordSettingDocumentation
	KeywordSettingDocumentationText
	KeywordSettingTagsDeclaration
	KeywordSettingTag
	KeywordSettingArguments
	KeywordSettingArgument
	KeywordSettingReturn
	KeywordSettingReturnValue
	KeywordSettingTeardown
	KeywordSettingTeardownKeywordName
	KeywordSettingTeardownKeywordArgument
	KeywordSettingTimeout
	KeywordSettingTimeoutValue
	KeywordSettingTimeoutMessage
	KeywordSettingUnknownDeclaration
	KeywordSettingUnknownArgument

	// Control structures inside executable rows
	ForToken
	ForInToken
	ForContinueToken
	EndToken
)

var typeNames = map[Type]string{
	Unknown:              "UNKNOWN",
	VariableUsage:        "VARIABLE_USAGE",
	Assignment:           "ASSIGNMENT",
	PrettyAlignSpace:     "PRETTY_ALIGN_SPACE",
	PreviousLineContinue: "PREVIOUS_LINE_CONTINUE",
	StartHashComment:     "START_HASH_COMMENT",
	CommentContinue:      "COMMENT_CONTINUE",
	EmptyCell:            "EMPTY_CELL",

	TableHeaderColumn:    "TABLE_HEADER_COLUMN",
	SettingsTableHeader:  "SETTINGS_TABLE_HEADER",
	VariablesTableHeader: "VARIABLES_TABLE_HEADER",
	TestCasesTableHeader: "TEST_CASES_TABLE_HEADER",
	TasksTableHeader:     "TASKS_TABLE_HEADER",
	KeywordsTableHeader:  "KEYWORDS_TABLE_HEADER",
	CommentsTableHeader:  "COMMENTS_TABLE_HEADER",

	SettingLibraryDeclaration:           "SETTING_LIBRARY_DECLARATION",
	SettingLibraryName:                  "SETTING_LIBRARY_NAME",
	SettingLibraryArgument:              "SETTING_LIBRARY_ARGUMENT",
	SettingLibraryAliasDeclaration:      "SETTING_LIBRARY_ALIAS",
	SettingLibraryAlias:                 "SETTING_LIBRARY_ALIAS_VALUE",
	SettingResourceDeclaration:          "SETTING_RESOURCE_DECLARATION",
	SettingResourceFileName:             "SETTING_RESOURCE_FILE_NAME",
	SettingResourceUnwantedArgument:     "SETTING_RESOURCE_UNWANTED_ARGUMENT",
	SettingVariablesDeclaration:         "SETTING_VARIABLES_DECLARATION",
	SettingVariablesFileName:            "SETTING_VARIABLES_FILE_NAME",
	SettingVariablesArgument:            "SETTING_VARIABLES_ARGUMENT",
	SettingDocumentationDeclaration:     "SETTING_DOCUMENTATION_DECLARATION",
	SettingDocumentationText:            "SETTING_DOCUMENTATION_TEXT",
	SettingMetadataDeclaration:          "SETTING_METADATA_DECLARATION",
	SettingMetadataKey:                  "SETTING_METADATA_KEY",
	SettingMetadataValue:                "SETTING_METADATA_VALUE",
	SettingSuiteSetupDeclaration:        "SETTING_SUITE_SETUP_DECLARATION",
	SettingSuiteSetupKeywordName:        "SETTING_SUITE_SETUP_KEYWORD_NAME",
	SettingSuiteSetupKeywordArgument:    "SETTING_SUITE_SETUP_KEYWORD_ARGUMENT",
	SettingSuiteTeardownDeclaration:     "SETTING_SUITE_TEARDOWN_DECLARATION",
	SettingSuiteTeardownKeywordName:     "SETTING_SUITE_TEARDOWN_KEYWORD_NAME",
	SettingSuiteTeardownKeywordArgument: "SETTING_SUITE_TEARDOWN_KEYWORD_ARGUMENT",
	SettingTestSetupDeclaration:         "SETTING_TEST_SETUP_DECLARATION",
	SettingTestSetupKeywordName:         "SETTING_TEST_SETUP_KEYWORD_NAME",
	SettingTestSetupKeywordArgument:     "SETTING_TEST_SETUP_KEYWORD_ARGUMENT",
	SettingTestTeardownDeclaration:      "SETTING_TEST_TEARDOWN_DECLARATION",
	SettingTestTeardownKeywordName:      "SETTING_TEST_TEARDOWN_KEYWORD_NAME",
	SettingTestTeardownKeywordArgument:  "SETTING_TEST_TEARDOWN_KEYWORD_ARGUMENT",
	SettingTestTemplateDeclaration:      "SETTING_TEST_TEMPLATE_DECLARATION",
	SettingTestTemplateKeywordName:      "SETTING_TEST_TEMPLATE_KEYWORD_NAME",
	SettingTestTemplateUnwantedArgument: "SETTING_TEST_TEMPLATE_KEYWORD_UNWANTED_ARGUMENT",
	SettingTestTimeoutDeclaration:       "SETTING_TEST_TIMEOUT_DECLARATION",
	SettingTestTimeoutValue:             "SETTING_TEST_TIMEOUT_VALUE",
	SettingTestTimeoutMessage:           "SETTING_TEST_TIMEOUT_MESSAGE",
	SettingTaskSetupDeclaration:         "SETTING_TASK_SETUP_DECLARATION",
	SettingTaskSetupKeywordName:         "SETTING_TASK_SETUP_KEYWORD_NAME",
	SettingTaskSetupKeywordArgument:     "SETTING_TASK_SETUP_KEYWORD_ARGUMENT",
	SettingTaskTeardownDeclaration:      "SETTING_TASK_TEARDOWN_DECLARATION",
	SettingTaskTeardownKeywordName:      "SETTING_TASK_TEARDOWN_KEYWORD_NAME",
	SettingTaskTeardownKeywordArgument:  "SETTING_TASK_TEARDOWN_KEYWORD_ARGUMENT",
	SettingTaskTemplateDeclaration:      "SETTING_TASK_TEMPLATE_DECLARATION",
	SettingTaskTemplateKeywordName:      "SETTING_TASK_TEMPLATE_KEYWORD_NAME",
	SettingTaskTemplateUnwantedArgument: "SETTING_TASK_TEMPLATE_KEYWORD_UNWANTED_ARGUMENT",
	SettingTaskTimeoutDeclaration:       "SETTING_TASK_TIMEOUT_DECLARATION",
	SettingTaskTimeoutValue:             "SETTING_TASK_TIMEOUT_VALUE",
	SettingTaskTimeoutMessage:           "SETTING_TASK_TIMEOUT_MESSAGE",
	SettingForceTagsDeclaration:         "SETTING_FORCE_TAGS_DECLARATION",
	SettingForceTag:                     "SETTING_FORCE_TAG",
	SettingDefaultTagsDeclaration:       "SETTING_DEFAULT_TAGS_DECLARATION",
	SettingDefaultTag:                   "SETTING_DEFAULT_TAG",
	SettingUnknownDeclaration:           "SETTING_UNKNOWN_DECLARATION",
	SettingUnknownArgument:              "SETTING_UNKNOWN_ARGUMENTS",

	VariablesScalarDeclaration:       "VARIABLES_SCALAR_DECLARATION",
	VariablesScalarAsListDeclaration: "VARIABLES_SCALAR_AS_LIST_DECLARATION",
	VariablesListDeclaration:         "VARIABLES_LIST_DECLARATION",
	VariablesDictionaryDeclaration:   "VARIABLES_DICTIONARY_DECLARATION",
	VariablesWrongDefined:            "VARIABLES_WRONG_DEFINED",
	VariablesVariableValue:           "VARIABLES_VARIABLE_VALUE",

	TestCaseName:                            "TEST_CASE_NAME",
	TestCaseActionName:                      "TEST_CASE_ACTION_NAME",
	TestCaseActionArgument:                  "TEST_CASE_ACTION_ARGUMENT",
	TestCaseSettingDocumentation:            "TEST_CASE_SETTING_DOCUMENTATION",
	TestCaseSettingDocumentationText:        "TEST_CASE_SETTING_DOCUMENTATION_TEXT",
	TestCaseSettingTagsDeclaration:          "TEST_CASE_SETTING_TAGS_DECLARATION",
	TestCaseSettingTag:                      "TEST_CASE_SETTING_TAGS",
	TestCaseSettingSetup:                    "TEST_CASE_SETTING_SETUP",
	TestCaseSettingSetupKeywordName:         "TEST_CASE_SETTING_SETUP_KEYWORD_NAME",
	TestCaseSettingSetupKeywordArgument:     "TEST_CASE_SETTING_SETUP_KEYWORD_ARGUMENT",
	TestCaseSettingTeardown:                 "TEST_CASE_SETTING_TEARDOWN",
	TestCaseSettingTeardownKeywordName:      "TEST_CASE_SETTING_TEARDOWN_KEYWORD_NAME",
	TestCaseSettingTeardownKeywordArgument:  "TEST_CASE_SETTING_TEARDOWN_KEYWORD_ARGUMENT",
	TestCaseSettingTemplate:                 "TEST_CASE_SETTING_TEMPLATE",
	TestCaseSettingTemplateKeywordName:      "TEST_CASE_SETTING_TEMPLATE_KEYWORD_NAME",
	TestCaseSettingTemplateUnwantedArgument: "TEST_CASE_SETTING_TEMPLATE_KEYWORD_UNWANTED_ARGUMENT",
	TestCaseSettingTimeout:                  "TEST_CASE_SETTING_TIMEOUT",
	TestCaseSettingTimeoutValue:             "TEST_CASE_SETTING_TIMEOUT_VALUE",
	TestCaseSettingTimeoutMessage:           "TEST_CASE_SETTING_TIMEOUT_MESSAGE",
	TestCaseSettingUnknownDeclaration:       "TEST_CASE_SETTING_UNKNOWN_DECLARATION",
	TestCaseSettingUnknownArgument:          "TEST_CASE_SETTING_UNKNOWN_ARGUMENTS",

	TaskName:                            "TASK_NAME",
	TaskActionName:                      "TASK_ACTION_NAME",
	TaskActionArgument:                  "TASK_ACTION_ARGUMENT",
	TaskSettingDocumentation:            "TASK_SETTING_DOCUMENTATION",
	TaskSettingDocumentationText:        "TASK_SETTING_DOCUMENTATION_TEXT",
	TaskSettingTagsDeclaration:          "TASK_SETTING_TAGS_DECLARATION",
	TaskSettingTag:                      "TASK_SETTING_TAGS",
	TaskSettingSetup:                    "TASK_SETTING_SETUP",
	TaskSettingSetupKeywordName:         "TASK_SETTING_SETUP_KEYWORD_NAME",
	TaskSettingSetupKeywordArgument:     "TASK_SETTING_SETUP_KEYWORD_ARGUMENT",
	TaskSettingTeardown:                 "TASK_SETTING_TEARDOWN",
	TaskSettingTeardownKeywordName:      "TASK_SETTING_TEARDOWN_KEYWORD_NAME",
	TaskSettingTeardownKeywordArgument:  "TASK_SETTING_TEARDOWN_KEYWORD_ARGUMENT",
	TaskSettingTemplate:                 "TASK_SETTING_TEMPLATE",
	TaskSettingTemplateKeywordName:      "TASK_SETTING_TEMPLATE_KEYWORD_NAME",
	TaskSettingTemplateUnwantedArgument: "TASK_SETTING_TEMPLATE_KEYWORD_UNWANTED_ARGUMENT",
	TaskSettingTimeout:                  "TASK_SETTING_TIMEOUT",
	TaskSettingTimeoutValue:             "TASK_SETTING_TIMEOUT_VALUE",
	TaskSettingTimeoutMessage:           "TASK_SETTING_TIMEOUT_MESSAGE",
	TaskSettingUnknownDeclaration:       "TASK_SETTING_UNKNOWN_DECLARATION",
	TaskSettingUnknownArgument:          "TASK_SETTING_UNKNOWN_ARGUMENTS",

	UserKeywordName:                       "USER_KEYWORD_NAME",
	KeywordActionName:                     "KEYWORD_ACTION_NAME",
	KeywordActionArgument:                 "KEYWORD_ACTION_ARGUMENT",
	KeywordSettingDocumentation:           "KEYWORD_SETTING_DOCUMENTATION",
	KeywordSettingDocumentationText:       "KEYWORD_SETTING_DOCUMENTATION_TEXT",
	KeywordSettingTagsDeclaration:         "KEYWORD_SETTING_TAGS",
	KeywordSettingTag:                     "KEYWORD_SETTING_TAGS_TAG_NAME",
	KeywordSettingArguments:               "KEYWORD_SETTING_ARGUMENTS",
	KeywordSettingArgument:                "KEYWORD_SETTING_ARGUMENT",
	KeywordSettingReturn:                  "KEYWORD_SETTING_RETURN",
	KeywordSettingReturnValue:             "KEYWORD_SETTING_RETURN_VALUE",
	KeywordSettingTeardown:                "KEYWORD_SETTING_TEARDOWN",
	KeywordSettingTeardownKeywordName:     "KEYWORD_SETTING_TEARDOWN_KEYWORD_NAME",
	KeywordSettingTeardownKeywordArgument: "KEYWORD_SETTING_TEARDOWN_KEYWORD_ARGUMENT",
	KeywordSettingTimeout:                 "KEYWORD_SETTING_TIMEOUT",
	KeywordSettingTimeoutValue:            "KEYWORD_SETTING_TIMEOUT_VALUE",
	KeywordSettingTimeoutMessage:          "KEYWORD_SETTING_TIMEOUT_MESSAGE",
	KeywordSettingUnknownDeclaration:      "KEYWORD_SETTING_UNKNOWN_DECLARATION",
	KeywordSettingUnknownArgument:         "KEYWORD_SETTING_UNKNOWN_ARGUMENTS",

	ForToken:         "FOR_TOKEN",
	ForInToken:       "FOR_IN_TOKEN",
	ForContinueToken: "FOR_CONTINUE_TOKEN",
	EndToken:         "END_TOKEN",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "INVALID"
}

// IsTableHeader reports whether t tags a table header declaration.
func (t Type) IsTableHeader() bool {
	switch t {
	case SettingsTableHeader, VariablesTableHeader, TestCasesTableHeader,
		TasksTableHeader, KeywordsTableHeader, CommentsTableHeader:
		return true
	}
	return false
}

// IsComment reports whether t tags part of a comment.
func (t Type) IsComment() bool {
	return t == StartHashComment || t == CommentContinue
}

// IsDeclaration reports whether t names a test case, task or keyword.
func (t Type) IsDeclaration() bool {
	return t == TestCaseName || t == TaskName || t == UserKeywordName
}

// IsVariableDeclaration reports whether t tags the first cell of a
// variable table row.
func (t Type) IsVariableDeclaration() bool {
	switch t {
	case VariablesScalarDeclaration, VariablesScalarAsListDeclaration, VariablesListDeclaration,
		VariablesDictionaryDeclaration, VariablesWrongDefined:
		return true
	}
	return false
}

// IsActionName reports whether t tags a keyword call inside a test case,
// task or keyword body.
func (t Type) IsActionName() bool {
	return t == TestCaseActionName || t == TaskActionName || t == KeywordActionName
}
