package parser

import "github.com/dhamidi/rfparse/robot"

// ContinueMarker starts a line that continues the previous logical row.
const ContinueMarker = "..."

// LoopBodyMarker starts a step inside an old style `:FOR` loop.
const LoopBodyMarker = `\`

// PositionInfo describes where a candidate token sits in its line. The
// index slices point into the line elements with the candidate appended
// at the end.
type PositionInfo struct {
	Kind         robot.SeparatorKind
	Separators   []int
	Tokens       []int
	PrettyAligns []int
	Continues    []int
}

// Describe summarizes the line parsed so far plus the candidate.
func Describe(line *robot.RobotLine, candidate *robot.Token) PositionInfo {
	info := PositionInfo{Kind: robot.TabOrDoubleSpace}
	firstSep := true
	add := func(i int, e robot.LineElement, isCandidate bool) {
		switch e := e.(type) {
		case *robot.Separator:
			if firstSep {
				info.Kind = e.Kind
				firstSep = false
			}
			info.Separators = append(info.Separators, i)
		case *robot.Token:
			switch {
			case e.IsPrettyAlign():
				info.PrettyAligns = append(info.PrettyAligns, i)
			case e.Has(robot.PreviousLineContinue), isCandidate && e.Text == ContinueMarker:
				info.Continues = append(info.Continues, i)
			default:
				info.Tokens = append(info.Tokens, i)
			}
		}
	}
	for i, e := range line.Elements {
		add(i, e, false)
	}
	if candidate != nil {
		add(len(line.Elements), candidate, true)
	}
	return info
}

// IsReallyFirstElement reports whether the candidate is the first real
// token of the line: at column zero in space mode, right after the
// single leading pipe in pipe mode.
func (p PositionInfo) IsReallyFirstElement() bool {
	if p.Kind == robot.Pipe {
		return len(p.Separators) == 1 && len(p.Tokens) == 1 && p.Separators[0] < p.Tokens[0]
	}
	return len(p.Separators) == 0 && len(p.Tokens) == 1
}

// IsContinuePreviousLineTheFirstToken reports whether a `...` marker is
// the first real cell of the line under the separator rules of table.
func (p PositionInfo) IsContinuePreviousLineTheFirstToken(table robot.TableType) bool {
	if len(p.Continues) != 1 || len(p.Tokens) != 0 {
		return false
	}
	marker := p.Continues[0]
	seps := 0
	for _, s := range p.Separators {
		if s < marker {
			seps++
		}
	}
	switch table {
	case robot.TableSettings, robot.TableVariables:
		if p.Kind == robot.Pipe {
			return seps == 1
		}
		return seps == 0
	case robot.TableTestCases, robot.TableTasks, robot.TableKeywords:
		// an inlined marker follows a real token and never gets here
		if p.Kind == robot.Pipe {
			return seps == 1
		}
		return seps <= 1
	}
	return false
}

// IsInlined reports whether exactly one real token precedes exactly one
// `...` marker, as in `Name  ...  Keyword`.
func (p PositionInfo) IsInlined() bool {
	if len(p.Tokens) != 1 || len(p.Continues) != 1 {
		return false
	}
	tok, marker := p.Tokens[0], p.Continues[0]
	if tok > marker {
		return false
	}
	if p.Kind == robot.Pipe {
		return len(p.Separators) == 2 &&
			p.Separators[0] < tok && tok < p.Separators[1] && p.Separators[1] < marker
	}
	return len(p.Separators) == 1 && tok < p.Separators[0] && p.Separators[0] < marker
}
