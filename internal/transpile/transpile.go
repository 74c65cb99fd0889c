// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transpile converts Pseudopseudocode source lines into Python.
// The language is line-oriented: each input line maps to exactly one output
// line through keyword dispatch, and block keywords (FUNC/IF/WHILE and their
// END counterparts) drive a single numeric indentation depth. Blocks are not
// typed; an ENDIF closing a WHILE is accepted as long as the net depth stays
// balanced.
package transpile

import "strings"

// indentUnit is one level of output indentation.
const indentUnit = "    "

// Convert transforms ordered Pseudopseudocode lines into a single string of
// Python source, one output line per input line, each newline-terminated.
//
// The scan is a single pass with no lookahead. A line's indentation prefix
// reflects the depth before the line's own open or close takes effect.
// On the first failure the whole conversion is abandoned: Convert returns
// an empty string and a *Error identifying the failure. An unrecognized
// line or a close below depth zero aborts the scan at that line; a clean
// scan that ends with unclosed blocks reports IndentationMismatch.
//
// Convert keeps no state between calls and is safe for concurrent use.
func Convert(lines []string) (string, error) {
	var b strings.Builder
	depth := 0
	for i, raw := range lines {
		lineNum := i + 1
		stripped := strings.TrimLeft(raw, " \t")

		body, delta, ok := classify(stripped)
		if !ok {
			return "", &Error{Kind: UnrecognizedLine, Line: lineNum}
		}

		b.WriteString(strings.Repeat(indentUnit, depth))
		depth += delta
		if depth < 0 {
			return "", &Error{Kind: UnexpectedClose, Line: lineNum}
		}

		b.WriteString(body)
		b.WriteByte('\n')
	}
	if depth != 0 {
		return "", &Error{Kind: IndentationMismatch}
	}
	return b.String(), nil
}
