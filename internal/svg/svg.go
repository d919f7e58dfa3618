// Package svg rewrites renderer-produced vector documents into embeddable,
// responsive form. The operations are deliberately textual: the documents
// are consumed as opaque markup, so targeted search and rewrite on the
// attribute level is all that is needed. Each step is isolated so it can be
// tested on its own.
package svg

import (
	"fmt"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/docfence/internal/foundation/errors"
)

// Document is a vector image plus its extracted intrinsic size. Width and
// Height keep the exact attribute text from the source markup so the
// rewritten document and the CSS sizing never drift from what the renderer
// declared.
type Document struct {
	Markup string
	Width  string
	Height string
}

var (
	widthRe  = regexp.MustCompile(`width="([0-9.]+)"`)
	heightRe = regexp.MustCompile(`height="([0-9.]+)"`)

	// Diagram renderers declare their own viewBox; its last two fields are
	// the intrinsic size.
	viewBoxRe = regexp.MustCompile(`viewBox="\d+ +\d+ +([0-9.]+) +([0-9.]+)"`)
)

// StripPreamble drops a leading byte-order mark, whitespace, XML declaration
// and doctype. Renderers differ in whether they emit any of these; absence
// is not an error.
func StripPreamble(markup string) string {
	out := strings.TrimPrefix(markup, "\uFEFF")
	out = strings.TrimLeft(out, " \t\r\n")
	if strings.HasPrefix(out, "<?xml") {
		if end := strings.Index(out, "?>"); end >= 0 {
			out = strings.TrimLeft(out[end+2:], " \t\r\n")
		}
	}
	if strings.HasPrefix(out, "<!DOCTYPE") || strings.HasPrefix(out, "<!doctype") {
		if end := strings.Index(out, ">"); end >= 0 {
			out = strings.TrimLeft(out[end+1:], " \t\r\n")
		}
	}
	return out
}

// ExtractDimensions locates the document's declared width and height through
// their literal attribute occurrences. If either is missing the document has
// no usable intrinsic size and normalization fails; no size is ever guessed.
func ExtractDimensions(markup string) (Document, error) {
	width := widthRe.FindStringSubmatch(markup)
	height := heightRe.FindStringSubmatch(markup)
	if width == nil || height == nil {
		return Document{}, errors.NormalizationError("could not find width and height in svg").Build()
	}
	return Document{
		Markup: markup,
		Width:  width[1],
		Height: height[1],
	}, nil
}

// InsertViewBox rewrites the document to scale through a viewBox: it inserts
// viewBox="0 0 <width> <height>" into the first <svg occurrence and removes
// the first literal width and height attributes. The root element is assumed
// to declare each attribute exactly once.
func InsertViewBox(doc Document) string {
	markup := strings.Replace(doc.Markup,
		"<svg", fmt.Sprintf(`<svg viewBox="0 0 %s %s"`, doc.Width, doc.Height), 1)
	markup = strings.Replace(markup, fmt.Sprintf(` width="%s"`, doc.Width), "", 1)
	markup = strings.Replace(markup, fmt.Sprintf(` height="%s"`, doc.Height), "", 1)
	return markup
}

// MarkDecorative marks the root element as presentation-only so assistive
// technology announces the hidden fallback text instead of the drawing.
// Only call this when an accessible fallback accompanies the image.
func MarkDecorative(markup string) string {
	return strings.Replace(markup, "<svg", `<svg aria-hidden="true"`, 1)
}

// ViewBoxSize reads the intrinsic pixel size from an existing viewBox
// declaration. Absence is not an error: blocks without one fall back to
// option-driven sizing.
func ViewBoxSize(markup string) (width, height string, ok bool) {
	m := viewBoxRe.FindStringSubmatch(markup)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
