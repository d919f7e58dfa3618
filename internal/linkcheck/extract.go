// Package linkcheck inspects built output for leftover diagnostic fragments
// and broken local references.
package linkcheck

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/docfence/internal/foundation/errors"
	"git.home.luguber.info/inful/docfence/internal/fragment"
)

// Ref is one local reference extracted from a built HTML document.
type Ref struct {
	Target    string // the raw href/src value
	Tag       string // a, img, link, script
	Attribute string // href or src
}

// Diagnostic is one render diagnostic fragment left in built output.
type Diagnostic struct {
	Text string
}

// ExtractFile parses one HTML file and returns its local references and any
// diagnostic fragments.
func ExtractFile(path string) ([]Ref, []Diagnostic, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to open HTML file").
			WithContext("path", path).
			Build()
	}
	defer func() { _ = file.Close() }()
	return Extract(file)
}

// Extract parses HTML and walks the node tree collecting local references
// (external URLs and pure fragments are skipped) plus <code> diagnostics.
func Extract(r io.Reader) ([]Ref, []Diagnostic, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, nil, errors.WrapError(err, errors.CategoryCheck, "failed to parse HTML").Build()
	}

	var refs []Ref
	var diags []Diagnostic

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "a", "link":
				if target := attr(n, "href"); isLocal(target) {
					refs = append(refs, Ref{Target: target, Tag: n.Data, Attribute: "href"})
				}
			case "img", "script":
				if target := attr(n, "src"); isLocal(target) {
					refs = append(refs, Ref{Target: target, Tag: n.Data, Attribute: "src"})
				}
			case "code":
				if strings.Contains(attr(n, "class"), fragment.DiagnosticClass) {
					diags = append(diags, Diagnostic{Text: nodeText(n)})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return refs, diags, nil
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// isLocal reports whether a reference points into the built tree: relative
// or root-relative, not a scheme URL, not a bare fragment.
func isLocal(target string) bool {
	if target == "" || strings.HasPrefix(target, "#") {
		return false
	}
	if strings.Contains(target, "://") || strings.HasPrefix(target, "//") {
		return false
	}
	if strings.HasPrefix(target, "mailto:") || strings.HasPrefix(target, "tel:") || strings.HasPrefix(target, "data:") {
		return false
	}
	return true
}

