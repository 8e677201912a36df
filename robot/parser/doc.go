// Package parser turns the plain-text Robot Framework format into the
// position-preserving model of package robot.
//
// # Overview
//
// A file is processed one physical line at a time:
//
//	┌──────────┐     ┌─────────────┐     ┌──────────┐     ┌──────────┐
//	│  Line    │────▶│  SplitLine  │────▶│ Describe │────▶│ Pipeline │
//	│ (+ EOL)  │     │ (cells)     │     │ (where?) │     │ (what?)  │
//	└──────────┘     └─────────────┘     └──────────┘     └──────────┘
//	                                                            │
//	                                                            ▼
//	                                                      ┌──────────┐
//	                                                      │  Stack   │
//	                                                      │ (state)  │
//	                                                      └──────────┘
//
// SplitLine cuts a line into cells and separators. The separator mode of
// a file is decided once by DetectMode: pipe separated files use `| `
// columns, everything else splits on two or more spaces or a tab, and
// .tsv files split on every tab.
//
// For every cell, Describe counts the separators, real tokens and `...`
// markers of the line so far. Those counts decide whether a cell is the
// first of its line (a table header, a setting, a test name) or whether a
// `...` continues the previous row.
//
// The Pipeline then asks its mappers in order; the first one that
// accepts the cell tags it and attaches it to the document. Mappers push
// and pop states on the Stack, which carries the table and row context
// from cell to cell. At the end of every line the Stack drops the states
// that belong to the finished row.
//
// # Error Recovery
//
// Parsing never fails. A cell no mapper accepts becomes an UNKNOWN token
// that still sits in its line, a malformed variable declaration becomes a
// VARIABLES_WRONG_DEFINED variable, and text before the first table or
// inside unknown tables is kept as garbage.
//
// # Round Trip
//
// Every byte of the input ends up in exactly one line element or line
// terminator, so
//
//	parser.Parse(text).String() == text
//
// holds for any input.
//
// # Thread Safety
//
// A Parser instance is not safe for concurrent use. A Pipeline is never
// written after NewPipeline returns and may be shared.
package parser
