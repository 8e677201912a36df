package format

import (
	"io"

	"github.com/dhamidi/rfparse/robot"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONEncoder writes the table model of a file. Token listings are only
// included when requested with WithTokens.
type JSONEncoder struct {
	w      io.Writer
	file   *robot.RobotFile
	tokens bool
}

type JSONOption func(*JSONEncoder)

// WithTokens adds every token of the file with its tags and position.
func WithTokens() JSONOption {
	return func(e *JSONEncoder) {
		e.tokens = true
	}
}

func NewJSONEncoder(w io.Writer, opts ...JSONOption) *JSONEncoder {
	e := &JSONEncoder{w: w}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *JSONEncoder) Encode(f *robot.RobotFile) error {
	e.file = f
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.fileToJSON(e.file), "", "  ")
}

type jsonFile struct {
	Path   string       `json:"path,omitempty"`
	Mode   string       `json:"mode"`
	Tables []*jsonTable `json:"tables"`
	Tokens []*jsonToken `json:"tokens,omitempty"`
}

type jsonTable struct {
	Type     string         `json:"type"`
	Headers  []int          `json:"headers"`
	Columns  []string       `json:"columns,omitempty"`
	Elements []*jsonElement `json:"elements"`
}

type jsonElement struct {
	Kind      string         `json:"kind"`
	Line      int            `json:"line,omitempty"`
	Name      string         `json:"name,omitempty"`
	Setting   string         `json:"setting,omitempty"`
	Variable  string         `json:"variable,omitempty"`
	Value     string         `json:"value,omitempty"`
	Assign    []string       `json:"assign,omitempty"`
	Values    []string       `json:"values,omitempty"`
	Comment   []string       `json:"comment,omitempty"`
	Body      []*jsonElement `json:"body,omitempty"`
	Arguments []string       `json:"arguments,omitempty"`
}

type jsonToken struct {
	Text   string   `json:"text"`
	Line   int      `json:"line"`
	Column int      `json:"column"`
	Offset int      `json:"offset"`
	Types  []string `json:"types"`
}

func (e *JSONEncoder) fileToJSON(f *robot.RobotFile) *jsonFile {
	jf := &jsonFile{Path: f.Path, Mode: f.Mode.String(), Tables: []*jsonTable{}}
	for _, table := range f.Tables() {
		if !table.Present() {
			continue
		}
		jt := &jsonTable{Type: table.Type().String(), Elements: []*jsonElement{}}
		for _, h := range table.Headers() {
			jt.Headers = append(jt.Headers, h.Declaration.Pos.Line)
			jt.Columns = append(jt.Columns, texts(h.Columns)...)
		}
		for _, child := range table.Children() {
			jt.Elements = append(jt.Elements, elementToJSON(child))
		}
		jf.Tables = append(jf.Tables, jt)
	}
	if e.tokens {
		for _, t := range f.Tokens() {
			jf.Tokens = append(jf.Tokens, tokenToJSON(t))
		}
	}
	return jf
}

func elementToJSON(el robot.Element) *jsonElement {
	switch el := el.(type) {
	case *robot.Setting:
		return &jsonElement{
			Kind:    "setting",
			Line:    el.Declaration.Pos.Line,
			Name:    el.Declaration.Text,
			Setting: el.Kind.String(),
			Values:  el.ValueTexts(),
			Comment: texts(el.Comment),
		}
	case *robot.Variable:
		return &jsonElement{
			Kind:     "variable",
			Line:     el.Declaration.Pos.Line,
			Name:     el.Declaration.Text,
			Variable: el.Kind().String(),
			Value:    el.Render(),
			Values:   texts(el.Values),
			Comment:  texts(el.Comment),
		}
	case *robot.Block:
		je := &jsonElement{Kind: el.Scope.String()}
		if el.Name != nil {
			je.Line = el.Name.Pos.Line
			je.Name = el.Name.Text
		}
		for _, child := range el.Body {
			je.Body = append(je.Body, elementToJSON(child))
		}
		return je
	case *robot.ExecutableRow:
		je := &jsonElement{
			Kind:      "row",
			Assign:    texts(el.Assignments),
			Arguments: texts(el.Arguments),
			Comment:   texts(el.Comment),
		}
		if el.Action != nil {
			je.Line = el.Action.Pos.Line
			je.Name = el.Action.Text
		} else if toks := el.Tokens(); len(toks) > 0 {
			je.Line = toks[0].Pos.Line
		}
		return je
	}
	return &jsonElement{Kind: "unknown"}
}

func tokenToJSON(t *robot.Token) *jsonToken {
	jt := &jsonToken{
		Text:   t.Text,
		Line:   t.Pos.Line,
		Column: t.Pos.Column,
		Offset: t.Pos.Offset,
		Types:  make([]string, len(t.Types)),
	}
	for i, typ := range t.Types {
		jt.Types[i] = typ.String()
	}
	return jt
}

func texts(tokens []*robot.Token) []string {
	var out []string
	for _, t := range tokens {
		out = append(out, t.Text)
	}
	return out
}
