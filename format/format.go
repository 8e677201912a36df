package format

import (
	"github.com/dhamidi/rfparse/robot"
)

// Encoder writes a parsed file in one output format.
type Encoder interface {
	Encode(f *robot.RobotFile) error
	MarshalText() ([]byte, error)
}

// Output formats accepted by New.
const (
	FormatJSON   = "json"
	FormatLine   = "line"
	FormatSource = "source"
)
