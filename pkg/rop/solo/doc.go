// Package solo contains single-value, synchronous operations on Result[T]
// that pass a context.Context to every callback. They are the building
// blocks for error-aware pipelines where each step needs request scope.
//
// Highlights:
// - Succeed/Fail/FromTuple: construct Result[T]
// - Validate/AndValidate/ValidateAll: turn invalid input into a failure
// - Switch: move from Result[In] to Result[Out] with a step that may fail
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
//
// A failed input is passed along untouched and no callback sees it, except
// the error handlers of DoubleTee and Finally.
package solo
