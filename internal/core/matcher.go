package core

import (
	"fmt"
)

// FailureMatcher is the duck-typed matcher shape used by gomega and similar libraries.
// Any type implementing Match and FailureMessage is accepted by MatchValue.
type FailureMatcher interface {
	Match(actual any) (success bool, err error)
	FailureMessage(actual any) string
}

// Matcher tests a value and explains why it did not match.
//
// Matches must be pure and reentrant. DescribeTo writes a phrase describing what
// satisfies the matcher. DescribeMismatch writes a phrase explaining why actual
// did not match; its text is unspecified when Matches(actual) is true.
type Matcher[T any] interface {
	SelfDescribing
	Matches(actual T) bool
	DescribeMismatch(actual T, d Description)
}

// Explain formats a failed match the same way for every caller:
//
//	Expected: <description>
//	     but: <mismatch>
func Explain[T any](actual T, matcher Matcher[T]) string {
	d := NewStringDescription()
	d.AppendText("Expected: ").AppendDescriptionOf(matcher).AppendText("\n     but: ")
	matcher.DescribeMismatch(actual, d)

	return d.String()
}

// MatchValue checks if actual matches expected.
// If expected is a Matcher[any] or a FailureMatcher, it is used directly.
// Otherwise the two values are compared with EqualValues.
// Returns (success, errorMessage). If success is true, errorMessage is empty.
func MatchValue(actual, expected any) (bool, string) {
	switch matcher := expected.(type) {
	case Matcher[any]:
		if matcher.Matches(actual) {
			return true, ""
		}

		return false, Explain(actual, matcher)
	case FailureMatcher:
		success, err := matcher.Match(actual)
		if err != nil {
			return false, err.Error()
		}

		if !success {
			return false, matcher.FailureMessage(actual)
		}

		return true, ""
	}

	if EqualValues(actual, expected) {
		return true, ""
	}

	return false, fmt.Sprintf("Expected: %s\n     but: was %s", Render(expected), Render(actual))
}

// MismatchOf returns the mismatch description of actual as a string.
func MismatchOf[T any](matcher Matcher[T], actual T) string {
	d := NewStringDescription()
	matcher.DescribeMismatch(actual, d)

	return d.String()
}
