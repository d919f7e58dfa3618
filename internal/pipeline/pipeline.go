// Package pipeline orchestrates rendering of one fenced block: validate
// attributes, materialize terminal escapes, invoke the renderer, normalize
// its SVG output and compose the replacement fragment. Every failure mode
// is converted into a renderable diagnostic at the point of detection.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/docfence/internal/ansi"
	"git.home.luguber.info/inful/docfence/internal/block"
	"git.home.luguber.info/inful/docfence/internal/foundation/errors"
	"git.home.luguber.info/inful/docfence/internal/fragment"
	"git.home.luguber.info/inful/docfence/internal/logfields"
	"git.home.luguber.info/inful/docfence/internal/metrics"
	"git.home.luguber.info/inful/docfence/internal/renderer"
	"git.home.luguber.info/inful/docfence/internal/svg"
)

// entry binds one fence name to its block kind and rendering backend.
type entry struct {
	kind     block.Kind
	renderer renderer.Renderer
}

// Pipeline renders fenced blocks through registered adapters. It holds no
// per-render state: one Pipeline is safe for concurrent use across blocks
// and documents.
type Pipeline struct {
	fences   map[string]entry
	timeout  time.Duration
	recorder metrics.Recorder
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTimeout bounds each renderer invocation. Zero keeps the invocation
// unbounded: a hung renderer then hangs its unit of work.
func WithTimeout(d time.Duration) Option {
	return func(p *Pipeline) { p.timeout = d }
}

// WithRecorder injects a metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(p *Pipeline) {
		if r != nil {
			p.recorder = r
		}
	}
}

// New creates an empty pipeline; fences are added with Register.
func New(options ...Option) *Pipeline {
	p := &Pipeline{
		fences:   make(map[string]entry),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Register binds a fence name to a kind and renderer. Later registrations
// of the same name win.
func (p *Pipeline) Register(fence string, kind block.Kind, r renderer.Renderer) {
	p.fences[fence] = entry{kind: kind, renderer: r}
}

// Registered reports whether a fence name has a renderer bound.
func (p *Pipeline) Registered(fence string) bool {
	_, ok := p.fences[fence]
	return ok
}

// KindOf returns the block kind bound to a fence name.
func (p *Pipeline) KindOf(fence string) (block.Kind, bool) {
	ent, ok := p.fences[fence]
	return ent.kind, ok
}

// Fences returns the registered fence names, for help output.
func (p *Pipeline) Fences() []string {
	names := make([]string, 0, len(p.fences))
	for name := range p.fences {
		names = append(names, name)
	}
	return names
}

// Render runs one block through validate, materialize, render, normalize
// and compose. It never returns an error: every taxonomy failure is folded
// into the Result as a diagnostic fragment.
func (p *Pipeline) Render(ctx context.Context, req block.Request) Result {
	start := time.Now()
	result := p.render(ctx, req)
	duration := time.Since(start)

	p.recorder.ObserveRenderDuration(req.Fence, duration)
	if result.Failed() {
		err := result.Err()
		p.recorder.IncBlockRendered(req.Fence, string(err.Category()))
		slog.Warn("Block render failed",
			logfields.Fence(req.Fence),
			logfields.Kind(req.Kind.String()),
			logfields.Error(err),
		)
	} else {
		p.recorder.IncBlockRendered(req.Fence, metrics.ResultSuccess)
		slog.Debug("Block rendered",
			logfields.Fence(req.Fence),
			logfields.DurationMS(float64(duration.Milliseconds())),
		)
	}
	return result
}

func (p *Pipeline) render(ctx context.Context, req block.Request) Result {
	ent, ok := p.fences[req.Fence]
	if !ok {
		return failure(errors.ValidationError("no renderer registered for fence").
			WithContext("fence", req.Fence).
			Build())
	}

	opts, _, err := block.Validate(ent.kind, req.Attrs)
	if err != nil {
		return failure(errors.ValidationError(err.Error()).Build())
	}

	source := req.Body
	accessible := ""
	if opts.Terminal {
		source, accessible = ansi.Materialize(source)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	raw, err := ent.renderer.Render(ctx, opts, source)
	if err != nil {
		return failure(classify(err))
	}

	markup := svg.StripPreamble(string(raw))
	var sizing fragment.Sizing
	switch ent.kind {
	case block.KindCodeImage:
		doc, err := svg.ExtractDimensions(markup)
		if err != nil {
			return failure(classify(err))
		}
		markup = svg.InsertViewBox(doc)
		if opts.Width.IsSome() {
			sizing = fragment.Explicit(opts.Width.Unwrap())
		} else {
			sizing = fragment.Intrinsic(doc.Width, doc.Height)
		}
	case block.KindDiagram:
		// Diagram renderers declare their own viewBox; its intrinsic size
		// wins over the width option whenever present.
		if w, h, ok := svg.ViewBoxSize(markup); ok {
			sizing = fragment.Intrinsic(w, h)
		} else {
			sizing = fragment.Explicit(opts.Width.UnwrapOr("100%"))
		}
	}

	if accessible != "" {
		markup = svg.MarkDecorative(markup)
	}
	return success(fragment.Compose(markup, sizing, opts, accessible))
}

// classify wraps renderer and normalizer errors that are not already
// classified, so the taxonomy stays total.
func classify(err error) *errors.ClassifiedError {
	if classified, ok := errors.AsClassified(err); ok {
		return classified
	}
	return errors.SpawnError(err.Error()).WithCause(err).Build()
}
