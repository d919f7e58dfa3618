package renderer

import (
	"context"
	"os"

	"git.home.luguber.info/inful/docfence/internal/block"
	"git.home.luguber.info/inful/docfence/internal/foundation/errors"
	"git.home.luguber.info/inful/docfence/internal/workspace"
)

// freezeArgs is the fixed flag set for code image rendering: a terminal
// window frame with the charm theme on a dark background. Only the language
// and the output path vary per invocation.
var freezeArgs = []string{
	"--window",
	"--theme=charm",
	"--border.radius=8",
	"--border.width=1",
	"--border.color=#515151",
	"--padding=10,10,10,10",
	"--margin=10,10,10,10",
	"--background=#171717",
}

// Freeze renders code image blocks through the freeze binary. Freeze writes
// its SVG to a named output file rather than stdout, so each render gets a
// private scratch directory that is released on every exit path.
type Freeze struct {
	binary     string
	workspaces *workspace.Manager
}

// NewFreeze creates the code image adapter. An empty binary falls back to
// "freeze" looked up on PATH.
func NewFreeze(binary string, workspaces *workspace.Manager) *Freeze {
	if binary == "" {
		binary = "freeze"
	}
	if workspaces == nil {
		workspaces = workspace.NewManager("")
	}
	return &Freeze{binary: binary, workspaces: workspaces}
}

func (f *Freeze) Render(ctx context.Context, opts block.Options, source string) ([]byte, error) {
	ws, err := f.workspaces.Create()
	if err != nil {
		return nil, errors.SpawnError("failed to create renderer workspace").
			WithCause(err).
			WithContext("binary", f.binary).
			Build()
	}
	defer func() { _ = ws.Cleanup() }()

	outputPath := ws.File("block.svg")
	args := append([]string{"--language", opts.Language, "--output", outputPath}, freezeArgs...)
	if _, err := runBinary(ctx, f.binary, args, source); err != nil {
		return nil, err
	}

	svg, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, errors.SpawnError("renderer produced no output file").
			WithCause(err).
			WithContext("binary", f.binary).
			Build()
	}
	return svg, nil
}
