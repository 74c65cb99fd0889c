// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transpile

import "fmt"

// ErrorKind classifies a conversion failure.
type ErrorKind int

const (
	// UnrecognizedLine means a non-empty, non-comment line matched no keyword.
	UnrecognizedLine ErrorKind = iota + 1

	// UnexpectedClose means a close keyword pushed the block depth below zero.
	UnexpectedClose

	// IndentationMismatch means the input ended with unclosed blocks.
	IndentationMismatch
)

// Error is a conversion failure. Line is the 1-based source line that
// triggered the failure; it is zero for IndentationMismatch, which has no
// single offending line. When Convert returns an Error, no generated code
// is returned alongside it.
type Error struct {
	Kind ErrorKind
	Line int
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnrecognizedLine:
		return fmt.Sprintf("failed to process line %d", e.Line)
	case UnexpectedClose:
		return fmt.Sprintf("unexpected close at line %d", e.Line)
	case IndentationMismatch:
		return "indentation mismatch"
	}
	return fmt.Sprintf("conversion failed at line %d", e.Line)
}
