// Package foundation provides small generic building blocks shared across
// docfence: explicit success/failure results, optional values, and attribute
// validation primitives.
package foundation

import "fmt"

// Result represents an operation that either succeeded with a value T or
// failed with an error E. Render outcomes use this instead of (T, error) so
// that failure is a first-class value that can itself be rendered.
type Result[T any, E error] struct {
	value T
	err   E
	isOk  bool
}

// Ok creates a successful Result with the given value.
func Ok[T any, E error](value T) Result[T, E] {
	return Result[T, E]{
		value: value,
		isOk:  true,
	}
}

// Err creates a failed Result with the given error.
func Err[T any, E error](err E) Result[T, E] {
	return Result[T, E]{
		err: err,
	}
}

// IsOk returns true if the Result represents a successful operation.
func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

// IsErr returns true if the Result represents a failed operation.
func (r Result[T, E]) IsErr() bool {
	return !r.isOk
}

// Unwrap returns the value if Ok and panics if Err. Callers must check
// IsOk first.
func (r Result[T, E]) Unwrap() T {
	if !r.isOk {
		panic(fmt.Sprintf("called Unwrap on Err result: %v", r.err))
	}
	return r.value
}

// UnwrapOr returns the value if Ok, otherwise the fallback.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.isOk {
		return r.value
	}
	return fallback
}

// UnwrapErr returns the error if Err and panics if Ok.
func (r Result[T, E]) UnwrapErr() E {
	if r.isOk {
		panic("called UnwrapErr on Ok result")
	}
	return r.err
}

// Match executes onOk if successful, onErr if failed.
func (r Result[T, E]) Match(onOk func(T), onErr func(E)) {
	if r.isOk {
		onOk(r.value)
	} else {
		onErr(r.err)
	}
}

// Map transforms a successful Result[T, E] into Result[U, E] using fn.
// A failed Result passes through with its error unchanged.
func Map[T, U any, E error](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.isOk {
		return Ok[U, E](fn(r.value))
	}
	return Err[U, E](r.err)
}

// ToTuple converts the Result to the traditional Go (value, error) pair.
func (r Result[T, E]) ToTuple() (T, E) {
	if r.isOk {
		var zeroErr E
		return r.value, zeroErr
	}
	var zeroVal T
	return zeroVal, r.err
}
