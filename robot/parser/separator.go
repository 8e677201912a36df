package parser

import (
	"strings"

	"github.com/dhamidi/rfparse/robot"
)

type CellKind int

const (
	CellToken CellKind = iota
	CellSeparator
	CellPrettyAlign
	// CellEmpty is a zero-width cell between two pipe or tab separators.
	CellEmpty
)

func (k CellKind) String() string {
	switch k {
	case CellToken:
		return "token"
	case CellSeparator:
		return "separator"
	case CellPrettyAlign:
		return "pretty-align"
	case CellEmpty:
		return "empty"
	}
	return "invalid"
}

// Cell is one piece of a split line. Column is the byte offset of the
// cell inside the line.
type Cell struct {
	Kind    CellKind
	Text    string
	Column  int
	SepKind robot.SeparatorKind
}

// IsPipeLine reports whether a line uses pipe separated columns.
func IsPipeLine(line string) bool {
	return line == "|" || strings.HasPrefix(line, "| ") || strings.HasPrefix(line, "|\t")
}

// DetectMode picks the separator mode of a file. Files ending in .tsv are
// strictly tab separated; otherwise the first line that is neither blank
// nor a comment decides between pipe and space separation.
func DetectMode(path, text string) robot.SeparatorKind {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return robot.StrictTSVTab
	}
	for line := range strings.Lines(text) {
		line = strings.TrimRight(line, "\r\n")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if IsPipeLine(line) {
			return robot.Pipe
		}
		return robot.TabOrDoubleSpace
	}
	return robot.TabOrDoubleSpace
}

// SplitLine splits one line, without its terminator, into cells and
// separators. The texts of the returned cells concatenate to the line.
func SplitLine(line string, mode robot.SeparatorKind) []Cell {
	if line == "" {
		return nil
	}
	if strings.TrimSpace(line) == "" {
		return []Cell{{Kind: CellPrettyAlign, Text: line}}
	}
	var seps []span
	kind := robot.TabOrDoubleSpace
	switch {
	case mode == robot.StrictTSVTab:
		seps = tabSeparators(line)
		kind = robot.StrictTSVTab
	case mode == robot.Pipe && IsPipeLine(line):
		seps = pipeSeparators(line)
		kind = robot.Pipe
	default:
		seps = spaceSeparators(line)
	}
	return assemble(line, seps, kind)
}

type span struct{ start, end int }

func isBlank(c byte) bool { return c == ' ' || c == '\t' }

func spaceSeparators(line string) []span {
	var seps []span
	for i := 0; i < len(line); {
		if !isBlank(line[i]) {
			i++
			continue
		}
		j := i
		hasTab := false
		for j < len(line) && isBlank(line[j]) {
			hasTab = hasTab || line[j] == '\t'
			j++
		}
		if j-i >= 2 || hasTab {
			seps = append(seps, span{i, j})
		}
		i = j
	}
	return seps
}

func tabSeparators(line string) []span {
	var seps []span
	i := 0
	// indentation made of tabs and spaces counts as one separator
	for i < len(line) && isBlank(line[i]) {
		i++
	}
	if i > 0 && strings.Contains(line[:i], "\t") {
		seps = append(seps, span{0, i})
	} else {
		i = 0
	}
	for ; i < len(line); i++ {
		if line[i] == '\t' {
			seps = append(seps, span{i, i + 1})
		}
	}
	return seps
}

func pipeSeparators(line string) []span {
	var seps []span
	prevEnd := 0
	for i := 0; i < len(line); i++ {
		if line[i] != '|' {
			continue
		}
		if i > 0 && !isBlank(line[i-1]) && i != prevEnd {
			continue
		}
		if i+1 < len(line) && !isBlank(line[i+1]) {
			continue
		}
		start := i
		for start > prevEnd && isBlank(line[start-1]) {
			start--
		}
		end := i + 1
		for end < len(line) && isBlank(line[end]) {
			end++
		}
		seps = append(seps, span{start, end})
		prevEnd = end
		i = end - 1
	}
	return seps
}

// assemble turns separator spans into cells. Empty cells between two
// separators become zero-width cells unless no content precedes or
// follows them on the line.
func assemble(line string, seps []span, kind robot.SeparatorKind) []Cell {
	var cells []Cell
	pos := 0
	firstContent, lastContent := -1, -1
	for _, s := range seps {
		if s.start > pos {
			cells = appendContent(cells, line, pos, s.start)
		} else if len(cells) > 0 {
			cells = append(cells, Cell{Kind: CellEmpty, Column: pos})
		}
		cells = append(cells, Cell{Kind: CellSeparator, Text: line[s.start:s.end], Column: s.start, SepKind: kind})
		pos = s.end
	}
	if pos < len(line) {
		cells = appendContent(cells, line, pos, len(line))
	}
	for i, c := range cells {
		if c.Kind == CellToken {
			if firstContent < 0 {
				firstContent = i
			}
			lastContent = i
		}
	}
	out := cells[:0]
	for i, c := range cells {
		if c.Kind == CellEmpty && (firstContent < 0 || i < firstContent || i > lastContent) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// appendContent adds the text between two separators, splitting off
// unescaped leading and trailing whitespace as pretty-align cells.
func appendContent(cells []Cell, line string, start, end int) []Cell {
	lead, core, trail := SplitPrettyAlign(line[start:end])
	if lead != "" {
		cells = append(cells, Cell{Kind: CellPrettyAlign, Text: lead, Column: start})
	}
	if core != "" {
		cells = append(cells, Cell{Kind: CellToken, Text: core, Column: start + len(lead)})
	}
	if trail != "" {
		cells = append(cells, Cell{Kind: CellPrettyAlign, Text: trail, Column: end - len(trail)})
	}
	return cells
}
