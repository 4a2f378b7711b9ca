package solo

import (
	"context"
	"errors"

	"github.com/ib-77/result/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

// FromTuple turns a (value, error) pair into a Result.
func FromTuple[T any](value T, err error) rop.Result[T] {
	if err != nil {
		return rop.Fail[T](err)
	}
	return rop.Success(value)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	return rop.Bind(input, func(in T) rop.Result[T] {
		if isValid, errMsg := validate(ctx, in); !isValid {
			return rop.Fail[T](rop.InvalidOperation(errMsg))
		}
		return input
	})
}

// ValidateAll runs every check against input and joins the failures it
// collects. Each check sees input itself, not the outcome of the previous
// check, so a failure is reported once by the check that produced it.
// A failed input is returned unchanged.
func ValidateAll[T any](
	ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if input.IsFailure() {
		return input
	}

	checks := make([]func(ctx context.Context, in rop.Result[T]) rop.Result[T], 0, len(inputsF))
	for _, check := range inputsF {
		checks = append(checks, func(ctx context.Context, _ rop.Result[T]) rop.Result[T] {
			return check(ctx, input)
		})
	}

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current rop.Result[T]) rop.Result[T] {

			current.CaseFailure(func(e error) {
				errs := rop.GetErrors(err)
				errs = append(errs, e)
				err = errors.Join(errs...)
			})

			if rop.IsNil(err) {
				return current
			}

			return rop.Fail[T](err)
		},
		checks...,
	)
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	return rop.Bind(input, func(r In) rop.Result[Out] {
		return onSuccess(ctx, r)
	})
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	return rop.Map(input, func(r In) Out {
		return onSuccess(ctx, r)
	})
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {

	input.CaseSuccess(func(r T) {
		onSuccess(ctx, r)
	})

	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) rop.Result[T] {

	input.Match(
		func(r T) { onSuccess(ctx, r) },
		func(err error) { onError(ctx, err) })

	return input
}

func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	return rop.Bind(input, func(r In) rop.Result[Out] {
		out, err := onTryExecute(ctx, r)
		return FromTuple(out, err)
	})
}

func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {

	return rop.Bind(input, func(in T) rop.Result[T] {
		if err := maybeErr(ctx, in); err != nil {
			return rop.Fail[T](err)
		}
		return input
	})
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	return rop.Match(input,
		func(r In) Out { return onSuccess(ctx, r) },
		func(err error) Out { return onError(ctx, err) })
}

// Join feeds input through each step in turn, passing every step's output
// through concat. It stops early when ctx is done, or on the first failure
// when breakOnError is set.
func Join[T any](ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current rop.Result[T]) rop.Result[T],
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if len(inputsF) == 0 || concat == nil || !rop.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !rop.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !rop.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			}
			finalResult = nextRes
		}
	}
	return finalResult
}
