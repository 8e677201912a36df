package parser

import (
	"github.com/dhamidi/rfparse/robot"
	"github.com/grafana/regexp"
)

// headerRecognizer matches the text of one kind of table header.
type headerRecognizer struct {
	pattern *regexp.Regexp
	table   robot.TableType
	typ     robot.Type
}

var headerRecognizers = []headerRecognizer{
	{regexp.MustCompile(`(?i)^\*+\s*(settings?|metadata)\s*\**$`), robot.TableSettings, robot.SettingsTableHeader},
	{regexp.MustCompile(`(?i)^\*+\s*variables?\s*\**$`), robot.TableVariables, robot.VariablesTableHeader},
	{regexp.MustCompile(`(?i)^\*+\s*test\s*cases?\s*\**$`), robot.TableTestCases, robot.TestCasesTableHeader},
	{regexp.MustCompile(`(?i)^\*+\s*tasks?\s*\**$`), robot.TableTasks, robot.TasksTableHeader},
	{regexp.MustCompile(`(?i)^\*+\s*(user\s*)?keywords?\s*\**$`), robot.TableKeywords, robot.KeywordsTableHeader},
	{regexp.MustCompile(`(?i)^\*+\s*comments?\s*\**$`), robot.TableNone, robot.CommentsTableHeader},
}

// RecognizeHeader returns the table and tag a header text declares.
func RecognizeHeader(text string) (robot.TableType, robot.Type, bool) {
	for _, r := range headerRecognizers {
		if r.pattern.MatchString(text) {
			return r.table, r.typ, true
		}
	}
	return robot.TableNone, robot.Unknown, false
}

// looksLikeHeader matches any `*`-prefixed cell, known table or not.
func looksLikeHeader(text string) bool {
	return len(text) > 0 && text[0] == '*'
}

// recognize returns the tags a cell could carry from its text alone.
// Mappers decide which of them hold in context.
func recognize(text string) []robot.Type {
	var out []robot.Type
	if _, typ, ok := RecognizeHeader(text); ok {
		out = append(out, typ)
	}
	return out
}

var oldMetadataSyntax = regexp.MustCompile(`(?i)^(meta:)(\s*)(.*)$`)

var bracketed = regexp.MustCompile(`^\[.*\]$`)
