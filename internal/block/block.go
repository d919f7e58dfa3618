// Package block defines the typed option model for renderable fenced blocks
// and the validation that turns raw fence attributes into it.
package block

import (
	"git.home.luguber.info/inful/docfence/internal/foundation"
)

// Kind identifies which rendering family a fenced block belongs to.
type Kind int

const (
	// KindCodeImage renders source code into a styled terminal-window image.
	KindCodeImage Kind = iota
	// KindDiagram renders diagram markup into a vector drawing.
	KindDiagram
)

// String returns the kind name used in logs and metrics labels.
func (k Kind) String() string {
	switch k {
	case KindCodeImage:
		return "code_image"
	case KindDiagram:
		return "diagram"
	default:
		return "unknown"
	}
}

// Attr is one raw key/value attribute as written on the fence line.
// Attributes keep their source order so unrecognized ones can be passed
// through untouched.
type Attr struct {
	Key   string
	Value string
}

// Request is the immutable input for rendering one fenced block.
type Request struct {
	Kind  Kind
	Fence string // fence name as written in the source, for diagnostics
	Attrs []Attr
	Body  string
}

// Side is the float side of a block.
type Side string

const (
	SideNone  Side = ""
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Options is the validated, resolved option set for one block. It is
// constructed exactly once by Validate and never modified afterwards;
// downstream stages never re-inspect raw attributes.
type Options struct {
	// Width is the explicit CSS width if one was supplied. For diagram
	// blocks a missing width resolves to "100%" during validation.
	Width foundation.Option[string]

	// Center reports whether the block is horizontally centered. Defaults
	// to true, flipped to false when a float side is supplied without an
	// explicit center override.
	Center bool

	// Float is the resolved float side. Mutually exclusive with Center:
	// an effective center=true clears any float.
	Float Side

	// Language is the renderer language identifier for code image blocks.
	// The pseudo-language "terminal" is rewritten to the renderer's raw
	// ANSI identifier during validation.
	Language string

	// Terminal reports that the block was declared with the "terminal"
	// pseudo-language and its body needs escape materialization.
	Terminal bool
}
