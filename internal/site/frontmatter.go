package site

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// splitFrontmatter separates a leading `---` delimited YAML frontmatter
// block from the document body. The frontmatter bytes are returned verbatim,
// delimiters included, so the build can stitch the document back together
// without reformatting author metadata. Documents without frontmatter return
// the full input as body.
func splitFrontmatter(content []byte) (frontmatter, body []byte) {
	open := []byte("---\n")
	if !bytes.HasPrefix(content, open) {
		return nil, content
	}

	closeSeq := []byte("\n---\n")
	idx := bytes.Index(content[len(open):], closeSeq)
	if idx < 0 {
		// Unterminated frontmatter: treat the whole document as body
		// rather than guessing where metadata ends.
		return nil, content
	}

	end := len(open) + idx + len(closeSeq)
	return content[:end], content[end:]
}

// frontmatterTitle extracts the title field from raw frontmatter bytes.
// Returns "" when there is no frontmatter, no title, or the YAML does not
// parse; the caller then derives a title from the file name.
func frontmatterTitle(frontmatter []byte) string {
	if len(frontmatter) == 0 {
		return ""
	}
	var meta struct {
		Title string `yaml:"title"`
	}
	trimmed := bytes.TrimSuffix(bytes.TrimPrefix(frontmatter, []byte("---\n")), []byte("---\n"))
	if err := yaml.Unmarshal(trimmed, &meta); err != nil {
		return ""
	}
	return meta.Title
}
