package mdtransform

import (
	"bytes"
	"context"

	"git.home.luguber.info/inful/docfence/internal/block"
	"git.home.luguber.info/inful/docfence/internal/pipeline"
)

// Stats summarizes one document transform.
type Stats struct {
	Blocks   int
	Failures int
}

// Render substitutes every registered fenced block in source with its
// rendered fragment. Failed blocks are substituted with their diagnostic
// fragments; the transform itself never fails, matching the per-block error
// contract.
func Render(ctx context.Context, p *pipeline.Pipeline, source []byte) ([]byte, Stats) {
	fences := Locate(source, p.Registered)
	if len(fences) == 0 {
		return source, Stats{}
	}

	var (
		out   bytes.Buffer
		stats Stats
		pos   int
	)
	for _, fence := range fences {
		kind, ok := p.KindOf(fence.Name)
		if !ok {
			continue
		}
		result := p.Render(ctx, block.Request{
			Kind:  kind,
			Fence: fence.Name,
			Attrs: fence.Attrs,
			Body:  fence.Body,
		})

		out.Write(source[pos:fence.Start])
		out.WriteString(result.Fragment())
		out.WriteString("\n")
		pos = fence.Stop

		stats.Blocks++
		if result.Failed() {
			stats.Failures++
		}
	}
	out.Write(source[pos:])
	return out.Bytes(), stats
}
