package renderer

import (
	"context"

	"git.home.luguber.info/inful/docfence/internal/block"
)

// Stub is a canned renderer for tests. It records every invocation so tests
// can assert on spawn counts and the exact source handed to the backend.
type Stub struct {
	Output []byte
	Err    error

	Calls   int
	Sources []string
	Options []block.Options
}

func (s *Stub) Render(_ context.Context, opts block.Options, source string) ([]byte, error) {
	s.Calls++
	s.Sources = append(s.Sources, source)
	s.Options = append(s.Options, opts)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Output, nil
}
