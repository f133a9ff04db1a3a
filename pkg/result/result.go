package result

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of a fallible computation: either a success carrying
// a value of type V, or a failure carrying an error of type E, never both.
// A Result is immutable after construction.
type Result[V, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     V
	err       E
	isSuccess bool
}

func Success[V, E any](v V) Result[V, E] {
	return Result[V, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[V, E any](e E) Result[V, E] {
	return Result[V, E]{
		err:       e,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// From adapts the (value, error) convention. A nil err yields a success,
// including a typed nil pointer stored in the interface.
func From[V any](v V, err error) Result[V, error] {
	if isNil(err) {
		return Success[V, error](v)
	}
	return Failure[V, error](err)
}

// Value returns the success value, with ok reporting whether this is a
// success.
func (r Result[V, E]) Value() (V, bool) {
	if !r.isSuccess {
		var zero V
		return zero, false
	}
	return r.value, true
}

// Err returns the failure error, with ok reporting whether this is a
// failure.
func (r Result[V, E]) Err() (E, bool) {
	if r.isSuccess {
		var zero E
		return zero, false
	}
	return r.err, true
}

func (r Result[V, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[V, E]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[V, E]) Id() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r Result[V, E]) CreatedAt() time.Time {
	return r.createdAt
}

// Unwrap returns the success value. On a failure it panics with a
// *ResultError: callers must have established success by other means, or
// accept that the current operation aborts.
func (r Result[V, E]) Unwrap() V {
	if !r.isSuccess {
		panic(&ResultError{msg: "Cannot call unwrap() on an Failure value"})
	}
	return r.value
}

// Expect panics with a *ResultError carrying message verbatim if r is a
// failure. On a success it does nothing.
func (r Result[V, E]) Expect(message string) {
	if !r.isSuccess {
		panic(&ResultError{msg: message})
	}
}

// FlatMapOrElse dispatches to exactly one of the handlers and returns its
// result unchanged.
func (r Result[V, E]) FlatMapOrElse(onSuccess func(v V) Result[V, E],
	onFailure func(e E) Result[V, E]) Result[V, E] {

	if r.isSuccess {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// Apply runs exactly one of the side-effect handlers depending on variant.
func (r Result[V, E]) Apply(onSuccess func(v V), onFailure func(e E)) {
	if r.isSuccess {
		onSuccess(r.value)
	} else {
		onFailure(r.err)
	}
}

func (r Result[V, E]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Map transforms the successful value to a new value. On a failure the
// transform is never invoked and the failure passes through, keeping its
// error and provenance.
func Map[V, E, U any](r Result[V, E], onSuccess func(v V) U) Result[U, E] {
	if r.isSuccess {
		return Success[U, E](onSuccess(r.value))
	}
	return failFrom[V, U](r)
}

// MapFailure transforms the error to a new error. On a success the
// transform is never invoked and the success passes through.
func MapFailure[V, E, F any](r Result[V, E], onFailure func(e E) F) Result[V, F] {
	if !r.isSuccess {
		return Failure[V, F](onFailure(r.err))
	}
	return successFrom[V, E, F](r)
}

// AndThen composes a function that already returns a Result. On a success
// the function's Result is returned directly, without re-wrapping; on a
// failure the function is never invoked.
func AndThen[V, E, U any](r Result[V, E], onSuccess func(v V) Result[U, E]) Result[U, E] {
	if r.isSuccess {
		return onSuccess(r.value)
	}
	return failFrom[V, U](r)
}

// failFrom carries a failure across a change of value type. The error and
// the provenance (id, createdAt) of the original are preserved, so the
// output is the same failure reinterpreted, not a new one.
func failFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// successFrom carries a success across a change of error type.
func successFrom[V, E, F any](from Result[V, E]) Result[V, F] {
	return Result[V, F]{
		value:     from.value,
		isSuccess: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}
