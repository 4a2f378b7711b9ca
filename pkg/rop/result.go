package rop

import "fmt"

// Status tells which side of a Result is active.
type Status uint8

const (
	StatusFailure Status = iota
	StatusSuccess
)

func (s Status) String() string {
	if s == StatusSuccess {
		return "Success"
	}
	return "Failure"
}

// Result holds either a successful value or a failure error, never both.
// The zero value is a Failure without an error.
type Result[T any] struct {
	status Status
	value  T
	err    error
}

// Success creates a successful result. A nil payload is still a success.
func Success[T any](r T) Result[T] {
	return Result[T]{
		status: StatusSuccess,
		value:  r,
	}
}

// Fail creates a failed result. A nil err is accepted and renders as "(invalid)".
func Fail[T any](err error) Result[T] {
	return Result[T]{
		status: StatusFailure,
		err:    err,
	}
}

// Of wraps a plain value as a successful result.
// Use Fail, not Of, to build a failure from an error value.
func Of[T any](v T) Result[T] {
	return Success(v)
}

func (r Result[T]) IsSuccess() bool {
	return r.status == StatusSuccess
}

func (r Result[T]) IsFailure() bool {
	return r.status == StatusFailure
}

// CaseSuccess runs action with the value and reports true if r is a success.
func (r Result[T]) CaseSuccess(action func(T)) bool {
	if r.IsSuccess() {
		action(r.value)
	}
	return r.IsSuccess()
}

// CaseFailure runs action with the error and reports true if r is a failure.
func (r Result[T]) CaseFailure(action func(error)) bool {
	if r.IsFailure() {
		action(r.err)
	}
	return r.IsFailure()
}

// Recover returns the value of a success, or repairs a failure into a value
// with onFailure. onFailure is never called for a success.
func (r Result[T]) Recover(onFailure func(error) T) T {
	return Match(r, func(v T) T { return v }, onFailure)
}

// Match runs exactly one of the two actions.
func (r Result[T]) Match(onSuccess func(T), onFailure func(error)) {
	if r.IsSuccess() {
		onSuccess(r.value)
	} else {
		onFailure(r.err)
	}
}

func (r Result[T]) String() string {
	return Match(r,
		func(v T) string {
			if IsNil(v) {
				return "(null)"
			}
			return fmt.Sprint(v)
		},
		func(err error) string {
			if IsNil(err) {
				return "(invalid)"
			}
			return Describe(err)
		})
}

// Match collapses r into a value of type R using the branch that is active.
// Every other value-returning operation is built on it.
func Match[T, R any](r Result[T], onSuccess func(T) R, onFailure func(error) R) R {
	if r.IsSuccess() {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// CaseSuccessOr is Match under the name used by callers that treat the
// failure branch as a fallback.
func CaseSuccessOr[T, R any](r Result[T], onSuccess func(T) R, orElse func(error) R) R {
	return Match(r, onSuccess, orElse)
}

// Map projects the value of a success. A failure is carried forward with the
// same error and transform is not called.
func Map[T, R any](r Result[T], transform func(T) R) Result[R] {
	return Match(r,
		func(v T) Result[R] { return Success(transform(v)) },
		func(err error) Result[R] { return Fail[R](err) })
}

// Bind chains a step that itself may fail.
func Bind[T, R any](r Result[T], next func(T) Result[R]) Result[R] {
	return Match(r, next, func(err error) Result[R] { return Fail[R](err) })
}
