// Package rop defines Result[T], a value that holds either a success value or
// a failure error, and the operations that read it without ever touching the
// inactive side.
//
// The payload is only reachable through Match, CaseSuccess, CaseFailure,
// Recover and Map, so every read of a value also states what happens on
// failure:
//
//	r := rop.Success("hello")
//	n := rop.Map(r, func(s string) int { return len(s) })
//	fmt.Println(n) // 5
//
// Methods cannot introduce new type parameters, so operations that produce a
// different type (Match, CaseSuccessOr, Map, Bind) are package functions.
package rop
