// Package result provides a two-variant Result[V, E] value for composing
// fallible computations without panic-driven control flow.
//
// Key operations:
// - Success/Failure/From: construct a Result
// - Value/Err/IsSuccess/IsFailure: inspect the variant
// - Map/MapFailure/AndThen: transform one side, pass the other through
// - FlatMapOrElse/Apply: dispatch a handler or side effect per variant
// - Unwrap/Expect: unchecked extraction, panicking with *ResultError
//
// A Result is an immutable value and safe to share between readers. The
// type-changing combinators are package functions because Go methods cannot
// introduce type parameters; their non-matching branch never invokes the
// supplied function and passes the original payload and provenance (Id,
// CreatedAt) through untouched.
package result
