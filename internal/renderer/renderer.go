// Package renderer invokes the programs that turn block bodies into vector
// images.
package renderer

import (
	"context"

	"git.home.luguber.info/inful/docfence/internal/block"
)

// Renderer abstracts one rendering backend for a block kind. This keeps the
// rest of the pipeline renderer-agnostic and isolates the only genuinely
// unsafe boundary (invoking an external binary) behind one interface.
//
// Contract:
//
//	Render(ctx, opts, source) -> raw vector markup, or a classified error:
//	  process when the backend ran and reported failure (the error detail
//	  carries its captured output), spawn when it could not be started or
//	  spoken to.
//
// A renderer performs exactly one invocation per call. There are no
// retries: transient failures surface to the author as a visible broken
// fragment rather than silently degrading the document.
type Renderer interface {
	Render(ctx context.Context, opts block.Options, source string) ([]byte, error)
}
