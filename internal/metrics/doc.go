// Package metrics provides observability hooks for block rendering and
// document builds.
//
// The package implements the Null Object pattern: components receive a
// Recorder through dependency injection and default to NoopRecorder, so
// metrics collection never requires nil checks at call sites. Serve mode
// swaps in the PrometheusRecorder and exposes its registry via HTTPHandler;
// one-shot commands keep the noop.
package metrics
