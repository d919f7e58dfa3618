// Package errors provides foundational, type-safe error primitives used across docfence.
//
// This package contains classified error types and helpers for robust error handling,
// including a fluent builder API for constructing ClassifiedError values with context.
//
// Key features:
//   - ErrorCategory: Broad error classification (config, validation, process, build, etc.)
//   - ErrorSeverity: Impact level (error, warning, info)
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLI adapter for error presentation and exit codes
//
// The render failure taxonomy (validation, process, spawn, normalization) lives
// here so that every stage of the fence pipeline reports through one type.
//
// Example usage:
//
//	err := errors.NewError(errors.CategoryProcess, "renderer exited non-zero").
//		WithSeverity(errors.SeverityError).
//		WithContext("fence", name).
//		Build()
package errors
