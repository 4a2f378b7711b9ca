package rop

import (
	"errors"

	"github.com/google/uuid"
)

// Codes carried by errors built in this package.
const (
	CodeException        = -2146233088
	CodeInvalidOperation = -2146233079
)

const (
	KindException        = "Exception"
	KindInvalidOperation = "InvalidOperation"
)

// Error is a failure description: a kind, a message, a numeric code and an
// optional cause. Each Error gets its own ID so a failure can be followed
// through logs after it has been propagated.
type Error struct {
	ID      uuid.UUID
	Kind    string
	Message string
	Code    int
	Cause   error
}

// NewError returns a generic error with CodeException.
func NewError(msg string) *Error {
	return newError(KindException, msg, CodeException, nil)
}

func InvalidOperation(msg string) *Error {
	return newError(KindInvalidOperation, msg, CodeInvalidOperation, nil)
}

// Wrap returns an error of the given kind chained to cause.
// The code is inherited from cause when it has one.
func Wrap(cause error, kind, msg string) *Error {
	code, ok := CodeOf(cause)
	if !ok {
		code = CodeException
	}
	return newError(kind, msg, code, cause)
}

func newError(kind, msg string, code int, cause error) *Error {
	return &Error{
		ID:      uuid.New(),
		Kind:    kind,
		Message: msg,
		Code:    code,
		Cause:   cause,
	}
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Cause.Error()
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error of the same kind and message, ignoring the ID.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

func (e *Error) KindName() string {
	return e.Kind
}

// CodeOf returns the code of the first *Error in err's chain.
func CodeOf(err error) (int, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Code, true
	}
	return 0, false
}

// Describe renders err qualified by its kind when it reports one:
// "InvalidOperation: message". Other errors render as err.Error().
func Describe(err error) string {
	if IsNil(err) {
		return "(invalid)"
	}
	if k, ok := err.(interface{ KindName() string }); ok && k.KindName() != "" {
		return k.KindName() + ": " + err.Error()
	}
	return err.Error()
}
