package metrics

import "time"

// Result label values for block render counters. Failed renders carry the
// taxonomy category (validation, process, spawn, normalization) instead.
const ResultSuccess = "success"

// Build outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailed  = "failed"
)

// Recorder defines observability hooks for block rendering and document
// builds. Implementations may forward to Prometheus, OpenTelemetry, etc.
// All methods must be safe on the NoopRecorder so injection stays optional.
type Recorder interface {
	IncBlockRendered(fence, result string)
	ObserveRenderDuration(fence string, d time.Duration)
	IncDocumentProcessed()
	IncBuildOutcome(outcome string)
	ObserveBuildDuration(d time.Duration)
	SetBuildWorkers(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are
// not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncBlockRendered(string, string)             {}
func (NoopRecorder) ObserveRenderDuration(string, time.Duration) {}
func (NoopRecorder) IncDocumentProcessed()                       {}
func (NoopRecorder) IncBuildOutcome(string)                      {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)          {}
func (NoopRecorder) SetBuildWorkers(int)                         {}
