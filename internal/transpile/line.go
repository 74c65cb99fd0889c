// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transpile

import "strings"

// rule maps one Pseudopseudocode keyword to its Python rendering.
// Exact rules match the whole stripped line and emit an empty body;
// prefix rules render the text that follows the keyword.
type rule struct {
	keyword string
	exact   bool
	delta   int // block depth change caused by the line
	render  func(rest string) string
}

// rules is the dispatch table, tried in order. First match wins; the
// keywords are mutually prefix-exclusive, so order only matters for clarity.
//
// RETURN deliberately has no trailing space: the language definition treats
// a bare "RETURN" (and anything glued to it, like "RETURNx") as a return
// statement, rendering "return " plus whatever follows the keyword.
var rules = []rule{
	{keyword: "FUNC ", delta: 1, render: func(rest string) string { return "def " + rest + ":" }},
	{keyword: "ENDFUNC", exact: true, delta: -1},
	{keyword: "RETURN", render: func(rest string) string { return "return " + rest }},
	{keyword: "IF ", delta: 1, render: func(rest string) string { return "if (" + rest + "):" }},
	{keyword: "ENDIF", exact: true, delta: -1},
	{keyword: "WHILE ", delta: 1, render: func(rest string) string { return "while (" + rest + "):" }},
	{keyword: "ENDWHILE", exact: true, delta: -1},
	{keyword: "SET ", render: func(rest string) string { return rest }},
	{keyword: "PRINT ", render: func(rest string) string { return `print(` + rest + `, end="")` }},
	{keyword: "GETSTRING ", render: func(rest string) string { return rest + " = input()" }},
	{keyword: "CASTASNUM ", render: func(rest string) string { return rest + " = float(" + rest + ")" }},
}

// classify renders one stripped line into its Python body and depth delta.
// Comments and blank lines pass through unchanged. ok is false when the
// line matches nothing.
func classify(stripped string) (body string, delta int, ok bool) {
	for _, r := range rules {
		if r.exact {
			if stripped == r.keyword {
				return "", r.delta, true
			}
			continue
		}
		if strings.HasPrefix(stripped, r.keyword) {
			return r.render(stripped[len(r.keyword):]), r.delta, true
		}
	}
	if stripped == "" || strings.HasPrefix(stripped, "#") {
		return stripped, 0, true
	}
	return "", 0, false
}
