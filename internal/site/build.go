// Package site mirrors a source tree of Markdown into a build output tree,
// rendering registered fenced blocks in every document. It is deliberately
// not a site generator: no navigation, no index synthesis, no cross-page
// links — documents go out the way they came in, with fences replaced by
// rendered fragments.
package site

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docfence/internal/config"
	"git.home.luguber.info/inful/docfence/internal/logfields"
	"git.home.luguber.info/inful/docfence/internal/mdtransform"
	"git.home.luguber.info/inful/docfence/internal/metrics"
	"git.home.luguber.info/inful/docfence/internal/pipeline"
)

// Builder runs directory builds.
type Builder struct {
	cfg      *config.Config
	pipeline *pipeline.Pipeline
	recorder metrics.Recorder
}

// NewBuilder creates a build driver over a configured pipeline.
func NewBuilder(cfg *config.Config, p *pipeline.Pipeline) *Builder {
	return &Builder{cfg: cfg, pipeline: p, recorder: metrics.NoopRecorder{}}
}

// WithRecorder injects a metrics recorder.
func (b *Builder) WithRecorder(r metrics.Recorder) *Builder {
	if r != nil {
		b.recorder = r
	}
	return b
}

// Run renders every Markdown document under the source tree into the output
// tree and copies everything else verbatim. Documents render concurrently
// under a bounded worker pool; per-block failures become visible diagnostic
// fragments and never abort the build.
func (b *Builder) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	report := &Report{
		BuildID:   uuid.NewString(),
		Source:    b.cfg.Source,
		Output:    b.cfg.Output,
		Format:    b.cfg.Build.Format,
		StartedAt: start,
	}

	slog.Info("Starting build",
		logfields.BuildID(report.BuildID),
		logfields.Path(b.cfg.Source),
	)

	paths, err := discover(b.cfg.Source)
	if err != nil {
		return nil, err
	}

	workers := b.cfg.Build.Workers
	if workers > len(paths) && len(paths) > 0 {
		workers = len(paths)
	}
	if workers < 1 {
		workers = 1
	}
	b.recorder.SetBuildWorkers(workers)

	tasks := make(chan string)
	var wg sync.WaitGroup
	var mu sync.Mutex

	worker := func() {
		defer wg.Done()
		for rel := range tasks {
			select {
			case <-ctx.Done():
				return
			default:
			}
			outcome := b.processFile(ctx, rel)
			mu.Lock()
			outcome.fold(report)
			mu.Unlock()
		}
	}

	wg.Add(workers)
	for range workers {
		go worker()
	}
	for _, rel := range paths {
		select {
		case <-ctx.Done():
			close(tasks)
			wg.Wait()
			return nil, ctx.Err()
		default:
		}
		tasks <- rel
	}
	close(tasks)
	wg.Wait()

	sort.Strings(report.Failed)
	sort.Strings(report.Errors)

	duration := time.Since(start)
	report.Duration = duration.String()
	b.recorder.ObserveBuildDuration(duration)
	if report.OK() {
		b.recorder.IncBuildOutcome(metrics.OutcomeSuccess)
	} else {
		b.recorder.IncBuildOutcome(metrics.OutcomeFailed)
	}

	slog.Info("Build finished",
		logfields.BuildID(report.BuildID),
		logfields.Count(report.Documents),
		logfields.DurationMS(float64(duration.Milliseconds())),
	)
	return report, nil
}

// fileOutcome carries one worker's result back to the shared report.
type fileOutcome struct {
	document bool
	blocks   int
	failures int
	rel      string
	err      error
}

func (o fileOutcome) fold(report *Report) {
	if o.err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", o.rel, o.err))
		return
	}
	if !o.document {
		report.Copied++
		return
	}
	report.Documents++
	report.Blocks += o.blocks
	report.Failures += o.failures
	if o.failures > 0 {
		report.Failed = append(report.Failed, o.rel)
	}
}

func (b *Builder) processFile(ctx context.Context, rel string) fileOutcome {
	src := filepath.Join(b.cfg.Source, rel)
	if !isMarkdown(rel) {
		if err := copyFile(src, filepath.Join(b.cfg.Output, rel)); err != nil {
			return fileOutcome{rel: rel, err: err}
		}
		return fileOutcome{rel: rel}
	}

	stats, err := b.renderDocument(ctx, rel)
	if err != nil {
		return fileOutcome{rel: rel, err: err}
	}
	b.recorder.IncDocumentProcessed()
	return fileOutcome{
		document: true,
		rel:      rel,
		blocks:   stats.Blocks,
		failures: stats.Failures,
	}
}

func (b *Builder) renderDocument(ctx context.Context, rel string) (mdtransform.Stats, error) {
	src := filepath.Join(b.cfg.Source, rel)
	content, err := os.ReadFile(src)
	if err != nil {
		return mdtransform.Stats{}, fmt.Errorf("read document: %w", err)
	}

	frontmatter, body := splitFrontmatter(content)
	rendered, stats := mdtransform.Render(ctx, b.pipeline, body)

	var out []byte
	dest := filepath.Join(b.cfg.Output, rel)
	switch b.cfg.Build.Format {
	case config.FormatHTML:
		title := frontmatterTitle(frontmatter)
		if title == "" {
			title = mdtransform.TitleFromPath(rel)
		}
		page, err := mdtransform.Page(rendered, title)
		if err != nil {
			return stats, err
		}
		out = page
		dest = strings.TrimSuffix(dest, filepath.Ext(dest)) + ".html"
	default:
		// Frontmatter goes back out byte-for-byte around the transformed
		// body.
		out = append(append([]byte{}, frontmatter...), rendered...)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return stats, fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(dest, out, 0o644); err != nil {
		return stats, fmt.Errorf("write document: %w", err)
	}

	slog.Debug("Processed document",
		logfields.Document(rel),
		logfields.Count(stats.Blocks),
	)
	return stats, nil
}

// discover walks the source tree and returns every regular file's relative
// path. Hidden directories are skipped.
func discover(source string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != source {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(source, path)
		if err != nil {
			return err
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk source tree: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}

func isMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source file: %w", err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy file: %w", err)
	}
	return out.Close()
}
