package site

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docfence/internal/block"
	"git.home.luguber.info/inful/docfence/internal/config"
	"git.home.luguber.info/inful/docfence/internal/foundation/errors"
	"git.home.luguber.info/inful/docfence/internal/pipeline"
	"git.home.luguber.info/inful/docfence/internal/renderer"
)

const buildTestSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50"></svg>`

func testConfig(t *testing.T, format string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Source = filepath.Join(t.TempDir(), "docs")
	cfg.Output = filepath.Join(t.TempDir(), "site")
	cfg.Build.Format = format
	require.NoError(t, os.MkdirAll(cfg.Source, 0o755))
	return cfg
}

func writeSource(t *testing.T, cfg *config.Config, rel, content string) {
	t.Helper()
	path := filepath.Join(cfg.Source, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func stubBuilder(cfg *config.Config, stub *renderer.Stub) *Builder {
	p := pipeline.New()
	p.Register("freeze", block.KindCodeImage, stub)
	p.Register("pikchr", block.KindDiagram, stub)
	return NewBuilder(cfg, p)
}

func TestBuildRendersDocumentsAndCopiesAssets(t *testing.T) {
	cfg := testConfig(t, config.FormatMarkdown)
	writeSource(t, cfg, "guide.md",
		"---\ntitle: Guide\nweight: 3\n---\nintro\n\n```freeze language=go\nx\n```\n")
	writeSource(t, cfg, "img/logo.png", "not-actually-a-png")

	stub := &renderer.Stub{Output: []byte(buildTestSVG)}
	report, err := stubBuilder(cfg, stub).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Documents)
	assert.Equal(t, 1, report.Copied)
	assert.Equal(t, 1, report.Blocks)
	assert.Zero(t, report.Failures)
	assert.True(t, report.OK())
	assert.NotEmpty(t, report.BuildID)

	out, err := os.ReadFile(filepath.Join(cfg.Output, "guide.md"))
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, "---\ntitle: Guide\nweight: 3\n---\n", "frontmatter must survive byte-for-byte")
	assert.Contains(t, text, "<div style=")
	assert.NotContains(t, text, "```freeze")

	copied, err := os.ReadFile(filepath.Join(cfg.Output, "img", "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, "not-actually-a-png", string(copied))
}

func TestBuildHTMLFormatUsesFrontmatterTitle(t *testing.T) {
	cfg := testConfig(t, config.FormatHTML)
	writeSource(t, cfg, "getting-started.md", "---\ntitle: Quick Start\n---\n# Hello\n")

	stub := &renderer.Stub{Output: []byte(buildTestSVG)}
	report, err := stubBuilder(cfg, stub).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Documents)

	out, err := os.ReadFile(filepath.Join(cfg.Output, "getting-started.html"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "<title>Quick Start</title>")
}

func TestBuildHTMLFormatDerivesTitleFromPath(t *testing.T) {
	cfg := testConfig(t, config.FormatHTML)
	writeSource(t, cfg, "api-reference.md", "# API\n")

	report, err := stubBuilder(cfg, &renderer.Stub{Output: []byte(buildTestSVG)}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Documents)

	out, err := os.ReadFile(filepath.Join(cfg.Output, "api-reference.html"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "<title>Api Reference</title>")
}

func TestBuildBlockFailureDoesNotFailBuild(t *testing.T) {
	cfg := testConfig(t, config.FormatMarkdown)
	writeSource(t, cfg, "broken.md", "```pikchr\nbad\n```\n")

	stub := &renderer.Stub{Err: errors.ProcessError("parse error").Build()}
	report, err := stubBuilder(cfg, stub).Run(context.Background())
	require.NoError(t, err)

	assert.True(t, report.OK())
	assert.Equal(t, 1, report.Failures)
	assert.Equal(t, []string{"broken.md"}, report.Failed)

	out, err := os.ReadFile(filepath.Join(cfg.Output, "broken.md"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "parse error")
}

func TestBuildSkipsHiddenDirectories(t *testing.T) {
	cfg := testConfig(t, config.FormatMarkdown)
	writeSource(t, cfg, ".git/config", "ref: main")
	writeSource(t, cfg, "doc.md", "hello\n")

	report, err := stubBuilder(cfg, &renderer.Stub{Output: []byte(buildTestSVG)}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Documents)
	assert.Zero(t, report.Copied)
}

func TestReportWrite(t *testing.T) {
	report := &Report{BuildID: "b-1", Documents: 2}
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, report.Write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"build_id": "b-1"`)
}

func TestSplitFrontmatter(t *testing.T) {
	tests := []struct {
		name    string
		content string
		front   string
		body    string
	}{
		{
			name:    "with frontmatter",
			content: "---\ntitle: X\n---\nbody\n",
			front:   "---\ntitle: X\n---\n",
			body:    "body\n",
		},
		{
			name:    "no frontmatter",
			content: "just body\n",
			front:   "",
			body:    "just body\n",
		},
		{
			name:    "unterminated",
			content: "---\ntitle: X\nbody\n",
			front:   "",
			body:    "---\ntitle: X\nbody\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			front, body := splitFrontmatter([]byte(tt.content))
			assert.Equal(t, tt.front, string(front))
			assert.Equal(t, tt.body, string(body))
		})
	}
}
