package mdtransform

import (
	"bytes"
	"fmt"
	"html"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// pageShell is the minimal standalone page wrapper for html build output.
// Rendered fragments carry their own inline styles, so the shell only
// constrains line length.
const pageShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<style>body{max-width:56rem;margin:0 auto;padding:0 1rem;font-family:sans-serif}</style>
</head>
<body>
%s</body>
</html>
`

// Page converts transformed Markdown into a standalone HTML page. The raw
// HTML passthrough is required: rendered fragments are already HTML and must
// reach the page verbatim.
func Page(source []byte, title string) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)

	var body bytes.Buffer
	if err := md.Convert(source, &body); err != nil {
		return nil, fmt.Errorf("failed to convert markdown: %w", err)
	}
	return fmt.Appendf(nil, pageShell, html.EscapeString(title), body.String()), nil
}

var titleCaser = cases.Title(language.English)

// TitleFromPath derives a page title from a document path:
// "guides/getting-started.md" becomes "Getting Started".
func TitleFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return titleCaser.String(base)
}
