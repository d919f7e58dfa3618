// Package mdtransform locates renderable fenced blocks in Markdown sources
// and substitutes their rendered fragments in place.
package mdtransform

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/docfence/internal/block"
)

// Fence is one located fenced block: its name and attributes from the info
// string, its literal body, and the byte range of the whole block in the
// source (opening fence line through closing fence line).
type Fence struct {
	Name  string
	Attrs []block.Attr
	Body  string
	Start int
	Stop  int
}

// Locate parses source as Markdown and returns the fenced code blocks whose
// fence name satisfies registered, in source order. Blocks inside other
// constructs (list items, quotes) are found too; indented fences are left
// alone since their byte range cannot be rewritten without breaking the
// surrounding structure.
func Locate(source []byte, registered func(name string) bool) []Fence {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(source))

	var fences []Fence
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		fcb, ok := n.(*gmast.FencedCodeBlock)
		if !ok || fcb.Info == nil {
			return gmast.WalkContinue, nil
		}

		info := string(fcb.Info.Segment.Value(source))
		name, attrText, _ := strings.Cut(info, " ")
		if name == "" || !registered(name) {
			return gmast.WalkContinue, nil
		}

		start := lineStart(source, fcb.Info.Segment.Start)
		if start > 0 && !fenceAtLineStart(source, start) {
			return gmast.WalkContinue, nil
		}
		stop := blockStop(source, fcb)

		var body bytes.Buffer
		lines := fcb.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			body.Write(seg.Value(source))
		}

		fences = append(fences, Fence{
			Name:  name,
			Attrs: block.ParseAttrs(attrText),
			Body:  body.String(),
			Start: start,
			Stop:  stop,
		})
		return gmast.WalkContinue, nil
	})
	return fences
}

// lineStart returns the offset of the first byte of the line containing pos.
func lineStart(source []byte, pos int) int {
	if idx := bytes.LastIndexByte(source[:pos], '\n'); idx >= 0 {
		return idx + 1
	}
	return 0
}

// lineEnd returns the offset just past the newline ending the line that
// begins at or contains pos.
func lineEnd(source []byte, pos int) int {
	if idx := bytes.IndexByte(source[pos:], '\n'); idx >= 0 {
		return pos + idx + 1
	}
	return len(source)
}

// blockStop returns the offset just past the closing fence line. The last
// body line ends where the closing fence line begins; an empty body means
// the closing fence follows the info line directly.
func blockStop(source []byte, fcb *gmast.FencedCodeBlock) int {
	lines := fcb.Lines()
	var afterBody int
	if lines.Len() > 0 {
		afterBody = lines.At(lines.Len() - 1).Stop
	} else {
		afterBody = lineEnd(source, fcb.Info.Segment.Stop)
	}
	if afterBody >= len(source) {
		return len(source)
	}
	return lineEnd(source, afterBody)
}

// fenceAtLineStart reports whether the fence marker opens its line without
// indentation. Goldmark permits up to three leading spaces; rewriting those
// is fine, deeper indentation means a nested context we must not touch.
func fenceAtLineStart(source []byte, start int) bool {
	rest := source[start:]
	trimmed := bytes.TrimLeft(rest, " ")
	if len(rest)-len(trimmed) > 3 {
		return false
	}
	return bytes.HasPrefix(trimmed, []byte("```")) || bytes.HasPrefix(trimmed, []byte("~~~"))
}
