package rop

import "fmt"

// Outcome is the part of a Result that does not depend on its value type.
// Code that only needs to know which side is active, or to print a result,
// can take an Outcome instead of a Result[T].
type Outcome interface {
	fmt.Stringer
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
}

var _ Outcome = Result[struct{}]{}
