package robot

import (
	"io"
	"sort"
	"strings"
)

// RobotLine is one physical line of a file. The raw text of its
// elements followed by EOL reproduces the source line exactly.
type RobotLine struct {
	Number   int
	Offset   int
	Elements []LineElement
	EOL      string
}

func (l *RobotLine) Append(e LineElement) {
	l.Elements = append(l.Elements, e)
}

// Tokens returns the tokens of the line, skipping separators.
func (l *RobotLine) Tokens() []*Token {
	var out []*Token
	for _, e := range l.Elements {
		if t, ok := e.(*Token); ok {
			out = append(out, t)
		}
	}
	return out
}

func (l *RobotLine) Text() string {
	var b strings.Builder
	for _, e := range l.Elements {
		b.WriteString(e.Raw())
	}
	return b.String()
}

// Len is the length of the line including its line terminator.
func (l *RobotLine) Len() int {
	n := len(l.EOL)
	for _, e := range l.Elements {
		n += len(e.Raw())
	}
	return n
}

// RobotFile is the parsed form of one Robot Framework source file.
type RobotFile struct {
	Path      string
	Mode      SeparatorKind
	Lines     []*RobotLine
	Settings  *SettingTable
	Variables *VariableTable
	TestCases *TestCaseTable
	Tasks     *TaskTable
	Keywords  *KeywordTable
}

func NewRobotFile(path string) *RobotFile {
	return &RobotFile{
		Path:      path,
		Settings:  &SettingTable{},
		Variables: &VariableTable{},
		TestCases: &TestCaseTable{},
		Tasks:     &TaskTable{},
		Keywords:  &KeywordTable{},
	}
}

// Tables returns the tables in fixed order, present or not.
func (f *RobotFile) Tables() []Table {
	return []Table{f.Settings, f.Variables, f.TestCases, f.Tasks, f.Keywords}
}

// Table returns the table of the given type, or nil for TableNone.
func (f *RobotFile) Table(tt TableType) Table {
	switch tt {
	case TableSettings:
		return f.Settings
	case TableVariables:
		return f.Variables
	case TableTestCases:
		return f.TestCases
	case TableTasks:
		return f.Tasks
	case TableKeywords:
		return f.Keywords
	}
	return nil
}

// String re-serializes the file from its lines.
func (f *RobotFile) String() string {
	var b strings.Builder
	for _, l := range f.Lines {
		for _, e := range l.Elements {
			b.WriteString(e.Raw())
		}
		b.WriteString(l.EOL)
	}
	return b.String()
}

func (f *RobotFile) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, f.String())
	return int64(n), err
}

// Tokens returns every token of the file in source order.
func (f *RobotFile) Tokens() []*Token {
	var out []*Token
	for _, l := range f.Lines {
		out = append(out, l.Tokens()...)
	}
	return out
}

// TokenAt returns the token covering offset, or nil when offset falls on
// a separator, a line terminator or outside the file.
func (f *RobotFile) TokenAt(offset int) *Token {
	i := sort.Search(len(f.Lines), func(i int) bool {
		return f.Lines[i].Offset > offset
	}) - 1
	if i < 0 {
		return nil
	}
	for _, e := range f.Lines[i].Elements {
		t, ok := e.(*Token)
		if !ok {
			continue
		}
		if t.Pos.Offset <= offset && offset < t.End() {
			return t
		}
	}
	return nil
}

// TokenAtPosition looks a token up by 1-based line and 0-based byte column.
func (f *RobotFile) TokenAtPosition(line, column int) *Token {
	if line < 1 || line > len(f.Lines) {
		return nil
	}
	l := f.Lines[line-1]
	if column < 0 || column >= l.Len()-len(l.EOL) {
		return nil
	}
	return f.TokenAt(l.Offset + column)
}

// Line returns the 1-based line, or nil.
func (f *RobotFile) Line(n int) *RobotLine {
	if n < 1 || n > len(f.Lines) {
		return nil
	}
	return f.Lines[n-1]
}
