// Package chain provides a fluent wrapper around result.Result[V, E]
// for building synchronous chains of fallible steps.
//
// It composes the result package combinators behind a convenient Chain type
// carrying a context. Type-changing steps are package functions, like the
// combinators they wrap.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or value
// - Then: switch to a new Result[U, E] via a function
// - Try: call a function (U, error) and convert error to failure
// - Map/MapFailure: transform the value (V -> U) or the error (E -> F)
// - Ensure: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
//
// Every step short-circuits on a failure: the success-side function is not
// invoked and the failure passes through unchanged.
package chain
