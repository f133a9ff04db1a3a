package chain

import (
	"context"

	"github.com/ib-77/resultflow/pkg/result"
)

// Chain wraps a result.Result with context to enable fluent chaining
type Chain[V, E any] struct {
	ctx context.Context
	res result.Result[V, E]
}

// Start creates a new chain from a result.Result
func Start[V, E any](ctx context.Context, res result.Result[V, E]) *Chain[V, E] {
	return &Chain[V, E]{
		ctx: ctx,
		res: res,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[V any](ctx context.Context, value V) *Chain[V, error] {
	return Start(ctx, result.Success[V, error](value))
}

// Result returns the underlying result.Result
func (c *Chain[V, E]) Result() result.Result[V, E] {
	return c.res
}

// Then chains a function that returns result.Result[U, E]
func Then[V, E, U any](c *Chain[V, E], onSuccess func(context.Context, V) result.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx: c.ctx,
		res: result.AndThen(c.res, func(v V) result.Result[U, E] {
			return onSuccess(c.ctx, v)
		}),
	}
}

// Try chains a function that returns (U, error)
func Try[V, U any](c *Chain[V, error], tryOnSuccess func(context.Context, V) (U, error)) *Chain[U, error] {
	return Then(c, func(ctx context.Context, v V) result.Result[U, error] {
		return result.From(tryOnSuccess(ctx, v))
	})
}

// Map chains a pure transformation of the successful value
func Map[V, E, U any](c *Chain[V, E], onSuccess func(context.Context, V) U) *Chain[U, E] {
	return &Chain[U, E]{
		ctx: c.ctx,
		res: result.Map(c.res, func(v V) U {
			return onSuccess(c.ctx, v)
		}),
	}
}

// MapFailure chains a transformation of the error
func MapFailure[V, E, F any](c *Chain[V, E], onFailure func(context.Context, E) F) *Chain[V, F] {
	return &Chain[V, F]{
		ctx: c.ctx,
		res: result.MapFailure(c.res, func(e E) F {
			return onFailure(c.ctx, e)
		}),
	}
}

// Ensure triggers side effects for success/failure without changing the result
func (c *Chain[V, E]) Ensure(onSuccess func(context.Context, V), onFailure func(context.Context, E)) *Chain[V, E] {
	c.res.Apply(func(v V) {
		if onSuccess != nil {
			onSuccess(c.ctx, v)
		}
	}, func(e E) {
		if onFailure != nil {
			onFailure(c.ctx, e)
		}
	})
	return c
}

// Finally collapses the chain to a final value via handlers
func Finally[V, E, U any](c *Chain[V, E],
	onSuccess func(context.Context, V) U,
	onFailure func(context.Context, E) U) U {

	if c.res.IsSuccess() {
		v, _ := c.res.Value()
		return onSuccess(c.ctx, v)
	}

	e, _ := c.res.Err()
	return onFailure(c.ctx, e)
}
