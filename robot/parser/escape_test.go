package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractEscapes(t *testing.T) {
	tests := []struct {
		in   string
		want []Escape
	}{
		{`a\$b`, []Escape{{UnknownText, "a", 0}, {EscapedDollar, `\$`, 1}, {UnknownText, "b", 3}}},
		{`\|\=`, []Escape{{EscapedPipe, `\|`, 0}, {EscapedEquals, `\=`, 2}}},
		{`x\\y\ `, []Escape{{UnknownText, "x", 0}, {EscapedBackslash, `\\`, 1}, {UnknownText, "y", 3}, {EscapedSpace, `\ `, 4}}},
		{"plain", []Escape{{UnknownText, "plain", 0}}},
		{"", nil},
	}
	for _, tt := range tests {
		got := ExtractEscapes(tt.in)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ExtractEscapes(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestEscapeKindString(t *testing.T) {
	if got := EscapedDollar.String(); got != "ESCAPED_DOLAR" {
		t.Errorf("EscapedDollar.String() = %q", got)
	}
	if got := UnknownText.String(); got != "UNKNOWN_TEXT" {
		t.Errorf("UnknownText.String() = %q", got)
	}
}

func TestExtractVariables(t *testing.T) {
	in := `Log ${x} \${y} @{l}[0] &{d} %{HOME} ${a${b}} ${open`
	var got []string
	for _, v := range ExtractVariables(in) {
		got = append(got, v.Text)
	}
	want := []string{"${x}", "@{l}", "&{d}", "%{HOME}", "${a${b}}"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExtractVariables mismatch (-want +got):\n%s", diff)
	}

	tests := []struct {
		in   string
		want bool
	}{
		{`\${escaped}`, false},
		{`\@{list}`, false},
		{`\&{dict} \%{ENV}`, false},
		{`\\${x}`, true},
		{`a\ ${x}`, true},
		{`${a\}b}`, true},
		{`$\{x}`, false},
	}
	for _, tt := range tests {
		if got := HasVariables(tt.in); got != tt.want {
			t.Errorf("HasVariables(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestExtractVariablesEscapes(t *testing.T) {
	tests := []struct {
		in   string
		want []VariableRef
	}{
		{`\\${x}`, []VariableRef{{Sigil: '$', Name: "x", Text: "${x}", Offset: 2}}},
		{`${a\}b}`, []VariableRef{{Sigil: '$', Name: `a\`, Text: `${a\}`, Offset: 0}}},
		{`${a\$b}`, []VariableRef{{Sigil: '$', Name: `a\$b`, Text: `${a\$b}`, Offset: 0}}},
		{`\${a} ${b}`, []VariableRef{{Sigil: '$', Name: "b", Text: "${b}", Offset: 6}}},
	}
	for _, tt := range tests {
		got := ExtractVariables(tt.in)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ExtractVariables(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}
