package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docfence/internal/ansi"
	"git.home.luguber.info/inful/docfence/internal/block"
	"git.home.luguber.info/inful/docfence/internal/config"
	"git.home.luguber.info/inful/docfence/internal/linkcheck"
	"git.home.luguber.info/inful/docfence/internal/logfields"
	"git.home.luguber.info/inful/docfence/internal/mdtransform"
	"git.home.luguber.info/inful/docfence/internal/metrics"
	"git.home.luguber.info/inful/docfence/internal/pipeline"
	"git.home.luguber.info/inful/docfence/internal/preview"
	"git.home.luguber.info/inful/docfence/internal/renderer"
	"git.home.luguber.info/inful/docfence/internal/site"
	"git.home.luguber.info/inful/docfence/internal/version"
	"git.home.luguber.info/inful/docfence/internal/workspace"
)

// newPipeline wires the configured fence bindings to their rendering
// backends.
func newPipeline(cfg *config.Config, recorder metrics.Recorder) *pipeline.Pipeline {
	p := pipeline.New(
		pipeline.WithTimeout(cfg.Render.TimeoutDuration()),
		pipeline.WithRecorder(recorder),
	)

	workspaces := workspace.NewManager("")
	backends := map[string]struct {
		kind block.Kind
		r    renderer.Renderer
	}{
		"freeze": {block.KindCodeImage, renderer.NewFreeze(cfg.Renderers.Freeze.Binary, workspaces)},
		"pikchr": {block.KindDiagram, renderer.NewPikchr(cfg.Renderers.Pikchr.Binary)},
		"dot":    {block.KindDiagram, renderer.NewDot()},
	}

	for fence, backend := range cfg.Fences {
		if backend == "dot" && !cfg.DotEnabled() {
			slog.Debug("Skipping disabled renderer", logfields.Fence(fence))
			continue
		}
		b := backends[backend]
		p.Register(fence, b.kind, b.r)
	}
	return p
}

func runRender() error {
	if CLI.Render.ListColors {
		return listColors(os.Stdout)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var source []byte
	if CLI.Render.Path == "" {
		source, err = io.ReadAll(os.Stdin)
	} else {
		source, err = os.ReadFile(CLI.Render.Path)
	}
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	p := newPipeline(cfg, metrics.NoopRecorder{})
	out, stats := mdtransform.Render(context.Background(), p, source)

	if CLI.Render.Format == config.FormatHTML {
		title := mdtransform.TitleFromPath(CLI.Render.Path)
		if CLI.Render.Path == "" {
			title = "Document"
		}
		out, err = mdtransform.Page(out, title)
		if err != nil {
			return err
		}
	}

	slog.Debug("Rendered document",
		logfields.Count(stats.Blocks),
		slog.Int("failures", stats.Failures),
	)

	if CLI.Render.Output != "" {
		return os.WriteFile(CLI.Render.Output, out, 0o644)
	}
	_, err = os.Stdout.Write(out)
	return err
}

func listColors(w io.Writer) error {
	for _, r := range ansi.Palette() {
		if _, err := fmt.Fprintf(w, "%-8s %s\n", r.Token, strconv.Quote(r.Sequence)); err != nil {
			return err
		}
	}
	return nil
}

func runBuild() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p := newPipeline(cfg, metrics.NoopRecorder{})
	report, err := site.NewBuilder(cfg, p).Run(context.Background())
	if err != nil {
		return err
	}

	if CLI.Build.Report != "" {
		if err := report.Write(CLI.Build.Report); err != nil {
			return err
		}
	}
	if !report.OK() {
		return fmt.Errorf("build finished with %d file errors", len(report.Errors))
	}
	if report.Failures > 0 {
		slog.Warn("Build finished with block diagnostics",
			logfields.BuildID(report.BuildID),
			slog.Int("failures", report.Failures),
		)
	}
	return nil
}

func runCheck() error {
	dir := CLI.Check.Dir
	if dir == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dir = cfg.Output
	}

	result, err := linkcheck.Run(dir)
	if err != nil {
		return err
	}
	for _, problem := range result.Problems {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", problem.File, problem.Kind, problem.Detail)
	}
	if !result.OK() {
		return fmt.Errorf("found %d problems in %d files", len(result.Problems), result.Files)
	}
	slog.Info("Output is clean", logfields.Count(result.Files))
	return nil
}

func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	registry := prom.NewRegistry()
	recorder := metrics.NewPrometheusRecorder(registry)
	p := newPipeline(cfg, recorder)
	builder := site.NewBuilder(cfg, p).WithRecorder(recorder)

	rebuild := func(ctx context.Context) error {
		_, err := builder.Run(ctx)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return preview.New(cfg, rebuild, registry).Run(ctx)
}

func runVersion() {
	fmt.Printf("docfence %s (commit %s, built %s)\n",
		version.Version, version.GitCommit, version.BuildTime)
}
