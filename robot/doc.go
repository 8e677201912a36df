// Package robot is the document model of a parsed Robot Framework file:
// lines of separators and tagged tokens, plus the settings, variables,
// test cases, tasks and keywords tables built from them.
//
// Model edits (SetValue, InsertArgument, RemoveBlock, ...) retag the
// tokens they touch but do not lay out the lines again; re-parse the
// edited text to get a consistent file.
package robot
