package chain

import (
	"context"

	"github.com/ib-77/result/pkg/rop"
	"github.com/ib-77/result/pkg/rop/solo"
)

// Chain carries a rop.Result together with the context every step of the
// chain is called with.
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{ctx: ctx, result: result}
}

// FromValue starts a chain from a successful value.
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Of(value))
}

func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

func (c *Chain[T]) String() string {
	return c.result.String()
}

// next continues c with a result of another type under the same context.
func next[T, U any](c *Chain[T], result rop.Result[U]) *Chain[U] {
	return Start(c.ctx, result)
}

// Then continues with a step that may fail. It is skipped once c has failed.
func Then[T, U any](c *Chain[T], step func(context.Context, T) rop.Result[U]) *Chain[U] {
	return next(c, rop.Bind(c.result, func(v T) rop.Result[U] {
		return step(c.ctx, v)
	}))
}

// ThenTry continues with a step written as (U, error).
func ThenTry[T, U any](c *Chain[T], step func(context.Context, T) (U, error)) *Chain[U] {
	return next(c, rop.Bind(c.result, func(v T) rop.Result[U] {
		out, err := step(c.ctx, v)
		return solo.FromTuple(out, err)
	}))
}

// Map projects the value of a successful chain.
func Map[T, U any](c *Chain[T], project func(context.Context, T) U) *Chain[U] {
	return next(c, rop.Map(c.result, func(v T) U {
		return project(c.ctx, v)
	}))
}

// Ensure runs onSuccess for a successful chain and keeps the result.
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return Start(c.ctx, solo.Tee(c.ctx, c.result, onSuccess))
}

// OnFailure performs a side effect on failure without changing the result
func (c *Chain[T]) OnFailure(onFailure func(context.Context, error)) *Chain[T] {
	c.result.CaseFailure(func(err error) {
		onFailure(c.ctx, err)
	})
	return c
}

// Or returns the first successful chain among c and alternatives.
// If none succeeded it returns the first failure.
func (c *Chain[T]) Or(alternatives ...*Chain[T]) *Chain[T] {
	if c.result.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt.result.IsSuccess() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain among c and required, or the last
// chain when all of them succeeded.
func (c *Chain[T]) And(required ...*Chain[T]) *Chain[T] {
	last := c
	for _, ch := range append([]*Chain[T]{c}, required...) {
		if ch.result.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// Finally collapses the chain into a single value.
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
