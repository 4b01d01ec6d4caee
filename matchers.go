// Package matchers provides composable matchers that explain their mismatches.
//
// The matchers themselves live in the match package. This package is the public
// entry point for the matcher contract, the templates for writing new matchers,
// and the functions that run a matcher and format the result.
//
// Implementation lives in internal/core.
package matchers

import (
	"github.com/toejough/matchers/internal/core"
)

// Types re-exported from internal/core.

// Description is the append-only sink that matchers describe themselves into.
type Description = core.Description

// DiagnosingLogic is the logic behind a Diagnosing matcher.
type DiagnosingLogic[T any] = core.DiagnosingLogic[T]

// FailureMatcher is the duck-typed Match/FailureMessage shape used by gomega.
type FailureMatcher = core.FailureMatcher

// Matcher tests a value of type T and explains why it did not match.
type Matcher[T any] = core.Matcher[T]

// SafeLogic is the logic behind a TypeSafe matcher.
type SafeLogic[T any] = core.SafeLogic[T]

// SafeMismatchDescriber replaces the default mismatch text of a TypeSafe matcher.
type SafeMismatchDescriber[T any] = core.SafeMismatchDescriber[T]

// SelfDescribing is anything that can describe itself.
type SelfDescribing = core.SelfDescribing

// StringDescription is a Description that accumulates text in memory.
type StringDescription = core.StringDescription

// Functions re-exported from internal/core.

// Check runs matcher against actual. On failure it returns the explanation:
//
//	Expected: <description>
//	     but: <mismatch>
func Check[T any](actual T, matcher Matcher[T]) (bool, string) {
	if matcher.Matches(actual) {
		return true, ""
	}

	return false, core.Explain(actual, matcher)
}

// Diagnosing builds a matcher from logic that writes its own mismatch text.
func Diagnosing[T any](logic DiagnosingLogic[T]) Matcher[T] {
	return core.Diagnosing(logic)
}

// Discard returns a Description that drops everything appended to it.
func Discard() Description {
	return core.NoDescription
}

// MatchValue checks actual against expected, which may be a Matcher[any], a
// FailureMatcher such as a gomega matcher, or a plain value compared deeply.
// Returns (success, errorMessage). If success is true, errorMessage is empty.
func MatchValue(actual, expected any) (bool, string) {
	return core.MatchValue(actual, expected)
}

// MismatchOf returns the mismatch description of actual as a string.
func MismatchOf[T any](matcher Matcher[T], actual T) string {
	return core.MismatchOf(matcher, actual)
}

// New builds a leaf matcher from a description and a predicate.
func New[T any](description string, test func(T) bool) Matcher[T] {
	return core.New(description, test)
}

// NewStringDescription returns an empty in-memory Description.
func NewStringDescription() *StringDescription {
	return core.NewStringDescription()
}

// StringOf returns the self description of value as a string.
func StringOf(value SelfDescribing) string {
	return core.StringOf(value)
}

// TypeSafe builds a matcher from logic that is never given a nil value.
func TypeSafe[T any](logic SafeLogic[T]) Matcher[T] {
	return core.TypeSafe(logic)
}

// Untyped lifts matcher to accept values of any type, failing those that are not a T.
func Untyped[T any](matcher Matcher[T]) Matcher[any] {
	return core.Untyped(matcher)
}
