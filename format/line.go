package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/rfparse/robot"
)

// LineEncoder lists one token per line:
//
//	line:column	TYPE[,TYPE...]	"text"
//
// Columns are 1-based. Alignment tokens are left out unless WithAlignment
// is given.
type LineEncoder struct {
	w         io.Writer
	file      *robot.RobotFile
	alignment bool
}

type LineOption func(*LineEncoder)

func WithAlignment() LineOption {
	return func(e *LineEncoder) {
		e.alignment = true
	}
}

func NewLineEncoder(w io.Writer, opts ...LineOption) *LineEncoder {
	e := &LineEncoder{w: w}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *LineEncoder) Encode(f *robot.RobotFile) error {
	e.file = f
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, t := range e.file.Tokens() {
		if t.IsPrettyAlign() && !e.alignment {
			continue
		}
		types := make([]string, len(t.Types))
		for i, typ := range t.Types {
			types[i] = typ.String()
		}
		fmt.Fprintf(&sb, "%d:%d\t%s\t%q\n", t.Pos.Line, t.Pos.Column+1, strings.Join(types, ","), t.Text)
	}
	return []byte(sb.String()), nil
}

// SourceEncoder writes the file back in its original text.
type SourceEncoder struct {
	w    io.Writer
	file *robot.RobotFile
}

func NewSourceEncoder(w io.Writer) *SourceEncoder {
	return &SourceEncoder{w: w}
}

func (e *SourceEncoder) Encode(f *robot.RobotFile) error {
	e.file = f
	_, err := f.WriteTo(e.w)
	return err
}

func (e *SourceEncoder) MarshalText() ([]byte, error) {
	return []byte(e.file.String()), nil
}

// New returns the encoder for the named format.
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case FormatJSON:
		return NewJSONEncoder(w), nil
	case FormatLine:
		return NewLineEncoder(w), nil
	case FormatSource:
		return NewSourceEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s (expected json, line or source)", name)
}
