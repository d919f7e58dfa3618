package renderer

import (
	"bytes"
	"context"

	"github.com/goccy/go-graphviz"

	"git.home.luguber.info/inful/docfence/internal/block"
	"git.home.luguber.info/inful/docfence/internal/foundation/errors"
)

// Dot renders Graphviz diagram blocks in-process via go-graphviz, so dot
// diagrams work without any external binary installed. It satisfies the same
// adapter contract as the subprocess renderers: DOT syntax errors surface as
// process failures whose detail is the parser's message.
type Dot struct{}

// NewDot creates the in-process Graphviz adapter.
func NewDot() *Dot {
	return &Dot{}
}

func (d *Dot) Render(ctx context.Context, _ block.Options, source string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.SpawnError("failed to initialize graphviz").
			WithCause(err).
			Build()
	}
	defer func() { _ = gv.Close() }()

	graph, err := graphviz.ParseBytes([]byte(source))
	if err != nil {
		return nil, errors.ProcessError(err.Error()).
			WithCause(err).
			Build()
	}
	defer func() { _ = graph.Close() }()

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.SVG, &buf); err != nil {
		return nil, errors.ProcessError(err.Error()).
			WithCause(err).
			Build()
	}
	return buf.Bytes(), nil
}
