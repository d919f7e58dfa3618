// Package fragment composes the HTML fragments that replace renderable
// fenced blocks: styled image wrappers on success, inline code diagnostics
// on failure. Composition is pure formatting and cannot fail.
package fragment

import (
	"fmt"
	"html"
	"strings"

	"git.home.luguber.info/inful/docfence/internal/block"
)

// Sizing is the resolved CSS size for a rendered block.
type Sizing struct {
	Width  string
	Height string
}

// Intrinsic builds pixel sizing from extracted intrinsic dimensions.
func Intrinsic(width, height string) Sizing {
	return Sizing{Width: width + "px", Height: height + "px"}
}

// Explicit builds sizing for an author-supplied width with automatic height.
func Explicit(width string) Sizing {
	return Sizing{Width: width, Height: "auto"}
}

// hiddenTextStyle keeps the accessible fallback text out of the visual flow
// while leaving it readable for assistive technology.
const hiddenTextStyle = "position:absolute;width:1px;height:1px;padding:0;margin:-1px;overflow:hidden;clip:rect(0,0,0,0);white-space:nowrap;border:0"

// Compose wraps normalized vector markup in a styled container reflecting
// the validated options. Float and centering are mutually exclusive by the
// time options reach this point; both conditions are still checked
// independently so the style mirrors exactly what was resolved. When
// accessible text is present it is appended in a visually-hidden container
// inside the same wrapper.
func Compose(markup string, sizing Sizing, opts block.Options, accessible string) string {
	var style strings.Builder
	fmt.Fprintf(&style, "width:%s;height:%s;max-width:100%%;", sizing.Width, sizing.Height)
	if opts.Float != block.SideNone {
		fmt.Fprintf(&style, "float:%s;", opts.Float)
	}
	if opts.Center {
		style.WriteString("margin:0 auto;")
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div style="%s">%s`, style.String(), markup)
	if accessible != "" {
		fmt.Fprintf(&b, `<span style="%s">%s</span>`, hiddenTextStyle, html.EscapeString(accessible))
	}
	b.WriteString("</div>")
	return b.String()
}

// DiagnosticClass marks diagnostic fragments in built output so the check
// command can find them without guessing at message text.
const DiagnosticClass = "docfence-error"

// Diagnostic renders a failure as a visible inline code fragment. The
// surrounding build substitutes it exactly like a successful fragment, so
// one broken block never aborts a document.
func Diagnostic(message string) string {
	return fmt.Sprintf(`<code class="%s">%s</code>`, DiagnosticClass, html.EscapeString(message))
}
