package renderer

import (
	"context"

	"git.home.luguber.info/inful/docfence/internal/block"
)

// pikchrArgs is the fixed flag set for diagram rendering: dark-mode colors
// and bare SVG on stdout, reading the diagram source from stdin.
var pikchrArgs = []string{"--dark-mode", "--svg-only", "-"}

// Pikchr renders diagram blocks through the pikchr binary. Unlike freeze it
// speaks plain stdin/stdout, so no scratch files are involved.
type Pikchr struct {
	binary string
}

// NewPikchr creates the diagram adapter. An empty binary falls back to
// "pikchr" looked up on PATH.
func NewPikchr(binary string) *Pikchr {
	if binary == "" {
		binary = "pikchr"
	}
	return &Pikchr{binary: binary}
}

func (p *Pikchr) Render(ctx context.Context, _ block.Options, source string) ([]byte, error) {
	return runBinary(ctx, p.binary, pikchrArgs, source)
}
