package pipeline

import (
	"git.home.luguber.info/inful/docfence/internal/foundation"
	"git.home.luguber.info/inful/docfence/internal/foundation/errors"
	"git.home.luguber.info/inful/docfence/internal/fragment"
)

// Result is the outcome of rendering one block. Both arms are renderable:
// a failed block yields an inline diagnostic fragment instead of a fault,
// so one broken block never aborts a document build. The classified error
// is retained alongside the diagnostic for logs and metrics.
type Result struct {
	outcome foundation.Result[string, *errors.ClassifiedError]
}

func success(frag string) Result {
	return Result{outcome: foundation.Ok[string, *errors.ClassifiedError](frag)}
}

func failure(err *errors.ClassifiedError) Result {
	return Result{outcome: foundation.Err[string, *errors.ClassifiedError](err)}
}

// Failed reports whether the block fell into the failure taxonomy.
func (r Result) Failed() bool {
	return r.outcome.IsErr()
}

// Err returns the classified failure, or nil on success.
func (r Result) Err() *errors.ClassifiedError {
	if r.outcome.IsOk() {
		return nil
	}
	return r.outcome.UnwrapErr()
}

// Fragment returns the replacement markup for the block: the composed image
// wrapper on success, an inline code diagnostic on failure.
func (r Result) Fragment() string {
	if r.outcome.IsOk() {
		return r.outcome.Unwrap()
	}
	return fragment.Diagnostic(r.outcome.UnwrapErr().Detail())
}
