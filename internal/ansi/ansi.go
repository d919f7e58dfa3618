// Package ansi materializes the placeholder tokens used by terminal code
// blocks into real ANSI control sequences.
package ansi

import "strings"

// Replacement pairs one placeholder token with its control sequence.
type Replacement struct {
	Token    string
	Sequence string
}

// replacements is the fixed, ordered placeholder table. The literal \x1b
// token lets authors hand-write arbitrary sequences; the named tokens cover
// the standard color palette plus reset.
var replacements = []Replacement{
	{`\x1b`, "\x1b"},
	{"{red}", "\x1b[0;31m"},
	{"{green}", "\x1b[0;32m"},
	{"{yellow}", "\x1b[0;33m"},
	{"{blue}", "\x1b[0;34m"},
	{"{mag}", "\x1b[0;35m"},
	{"{cyan}", "\x1b[0;36m"},
	{"{gray}", "\x1b[0;90m"},
	{"{reset}", "\x1b[0;0m"},
}

// Materialize expands placeholder tokens in body as two independent folds
// over the same table: render carries the real control sequences for the
// renderer, accessible has every token folded to the empty string so the
// screen-reader fallback stays free of control codes. All non-placeholder
// content, including whitespace and line breaks, is preserved exactly.
func Materialize(body string) (render, accessible string) {
	render = body
	accessible = body
	for _, r := range replacements {
		render = strings.ReplaceAll(render, r.Token, r.Sequence)
		accessible = strings.ReplaceAll(accessible, r.Token, "")
	}
	return render, accessible
}

// Palette returns a copy of the placeholder table, in replacement order,
// for help output and documentation.
func Palette() []Replacement {
	out := make([]Replacement, len(replacements))
	copy(out, replacements)
	return out
}
