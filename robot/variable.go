package robot

import (
	"fmt"
	"strings"

	"github.com/grafana/regexp"
)

type VariableKind int

const (
	Scalar VariableKind = iota
	ScalarAsList
	List
	Dictionary
	Invalid
)

func (k VariableKind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case ScalarAsList:
		return "scalar-as-list"
	case List:
		return "list"
	case Dictionary:
		return "dictionary"
	}
	return "invalid"
}

var (
	scalarDeclaration     = regexp.MustCompile(`^\$\{.+\}\s*=?\s*$`)
	listDeclaration       = regexp.MustCompile(`^@\{.+\}\s*=?\s*$`)
	dictionaryDeclaration = regexp.MustCompile(`^&\{.+\}\s*=?\s*$`)
	declarationName       = regexp.MustCompile(`^[$@&%]\{(.+)\}\s*=?\s*$`)
)

// DeclarationKind classifies the first cell of a variables table row.
func DeclarationKind(text string) VariableKind {
	switch {
	case scalarDeclaration.MatchString(text):
		return Scalar
	case listDeclaration.MatchString(text):
		return List
	case dictionaryDeclaration.MatchString(text):
		return Dictionary
	}
	return Invalid
}

// IsAssignment reports whether text declares a variable, as the left
// side of `${x}=  Keyword` does.
func IsAssignment(text string) bool {
	return DeclarationKind(text) != Invalid
}

// Variable is one row of the variables table.
type Variable struct {
	Declaration *Token
	Values      []*Token
	Comment     []*Token
}

func NewVariable(name string, values ...string) *Variable {
	v := &Variable{Declaration: NewToken(name)}
	for _, text := range values {
		v.Values = append(v.Values, NewToken(text))
	}
	v.retype()
	return v
}

// NewVariableFromToken starts a variable from a positioned declaration.
func NewVariableFromToken(declaration *Token) *Variable {
	v := &Variable{Declaration: declaration}
	v.retype()
	return v
}

func (v *Variable) Tokens() []*Token {
	out := []*Token{v.Declaration}
	out = append(out, v.Values...)
	return append(out, v.Comment...)
}

func (v *Variable) AddComment(t *Token) { v.Comment = append(v.Comment, t) }

func (v *Variable) Kind() VariableKind {
	switch v.Declaration.Type() {
	case VariablesScalarDeclaration:
		return Scalar
	case VariablesScalarAsListDeclaration:
		return ScalarAsList
	case VariablesListDeclaration:
		return List
	case VariablesDictionaryDeclaration:
		return Dictionary
	}
	return Invalid
}

// Name returns the variable name without its decoration.
func (v *Variable) Name() (string, bool) {
	m := declarationName.FindStringSubmatch(v.Declaration.Text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func (v *Variable) AppendValue(t *Token) {
	v.Values = append(v.Values, t)
	v.retype()
}

func (v *Variable) SetName(text string) {
	v.Declaration.Text = text
	v.retype()
}

func (v *Variable) SetValue(i int, text string) error {
	if _, err := setAt(v.Values, i, text); err != nil {
		return fmt.Errorf("set value %d of %s: %w", i, v.Declaration.Text, err)
	}
	v.retype()
	return nil
}

func (v *Variable) InsertValue(i int, text string) error {
	values, err := insertAt(v.Values, i, NewToken(text))
	if err != nil {
		return fmt.Errorf("insert value %d of %s: %w", i, v.Declaration.Text, err)
	}
	v.Values = values
	v.retype()
	return nil
}

func (v *Variable) RemoveValue(i int) error {
	values, err := removeAt(v.Values, i)
	if err != nil {
		return fmt.Errorf("remove value %d of %s: %w", i, v.Declaration.Text, err)
	}
	v.Values = values
	v.retype()
	return nil
}

func (v *Variable) MoveValue(from, to int) error {
	if err := move(v.Values, from, to); err != nil {
		return fmt.Errorf("move value of %s: %w", v.Declaration.Text, err)
	}
	v.retype()
	return nil
}

// retype derives the declaration tag from the declaration text and the
// number of values; a scalar with more than one value is a list in
// disguise.
func (v *Variable) retype() {
	var decl Type
	switch DeclarationKind(v.Declaration.Text) {
	case Scalar:
		decl = VariablesScalarDeclaration
		if len(v.Values) > 1 {
			decl = VariablesScalarAsListDeclaration
		}
	case List:
		decl = VariablesListDeclaration
	case Dictionary:
		decl = VariablesDictionaryDeclaration
	default:
		decl = VariablesWrongDefined
	}
	v.Declaration.SetType(decl)
	for _, t := range v.Values {
		t.SetType(VariablesVariableValue)
	}
}

// DictItem is one `key=value` entry of a dictionary variable.
type DictItem struct {
	Key      string
	Value    string
	HasValue bool
}

// Items splits every value at its first unescaped `=`.
func (v *Variable) Items() []DictItem {
	items := make([]DictItem, len(v.Values))
	for i, t := range v.Values {
		items[i] = SplitDictItem(t.Text)
	}
	return items
}

func SplitDictItem(text string) DictItem {
	backslashes := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\\':
			backslashes++
			continue
		case '=':
			if backslashes%2 == 0 {
				return DictItem{Key: text[:i], Value: text[i+1:], HasValue: true}
			}
		}
		backslashes = 0
	}
	return DictItem{Key: text}
}

// Render returns the display form of the value: the plain value of a
// scalar, `[a, b]` for lists and `{k = v, ...}` for dictionaries.
func (v *Variable) Render() string {
	switch v.Kind() {
	case Scalar:
		if len(v.Values) == 0 {
			return ""
		}
		return v.Values[0].Text
	case Dictionary:
		parts := make([]string, len(v.Values))
		for i, item := range v.Items() {
			if item.HasValue {
				parts[i] = item.Key + " = " + item.Value
			} else {
				parts[i] = item.Key
			}
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return "[" + strings.Join(tokenTexts(v.Values), ", ") + "]"
}
