package core

import (
	"reflect"
)

// DiagnosingLogic is the specialised half of a diagnosing matcher.
// MatchesDiagnosing writes to mismatch only when it returns false.
type DiagnosingLogic[T any] interface {
	SelfDescribing
	MatchesDiagnosing(actual T, mismatch Description) bool
}

// SafeLogic is the specialised half of a type-safe matcher.
// MatchesSafely is never called with a nil value.
type SafeLogic[T any] interface {
	SelfDescribing
	MatchesSafely(actual T) bool
}

// SafeMismatchDescriber can be implemented by a SafeLogic to replace the default
// "was <actual>" mismatch for non-nil values.
type SafeMismatchDescriber[T any] interface {
	DescribeMismatchSafely(actual T, mismatch Description)
}

// As returns actual as a T. An untyped nil converts to the zero T only when T
// itself can be nil.
func As[T any](actual any) (T, bool) {
	if typed, ok := actual.(T); ok {
		return typed, true
	}

	var zero T

	if actual == nil && nilable(reflect.TypeFor[T]()) {
		return zero, true
	}

	return zero, false
}

// DescribeMismatchDefault writes "was <actual>".
func DescribeMismatchDefault(actual any, d Description) {
	d.AppendText("was ").AppendValue(actual)
}

// Diagnosing builds a Matcher whose logic produces its own mismatch text.
// Nil values fail without reaching the logic.
func Diagnosing[T any](logic DiagnosingLogic[T]) Matcher[T] {
	return diagnosing[T]{logic: logic}
}

// EqualValues reports whether two values are deeply equal.
func EqualValues(actual, expected any) bool {
	return reflect.DeepEqual(actual, expected)
}

// New builds a leaf Matcher from a fixed description and a predicate.
// Its mismatch text is "was <actual>".
func New[T any](description string, test func(T) bool) Matcher[T] {
	return predicate[T]{description: description, test: test}
}

// TypeSafe builds a Matcher that guards its logic against nil values.
// The mismatch text is "was null" for nil values, DescribeMismatchSafely if the
// logic implements it, and "was <actual>" otherwise.
func TypeSafe[T any](logic SafeLogic[T]) Matcher[T] {
	return typeSafe[T]{logic: logic}
}

// Untyped lifts a Matcher[T] to a Matcher[any]. Values that are not a T fail with
// "was a <type> (<value>)". An untyped nil reaches the inner matcher as the zero T
// only when T itself can be nil.
func Untyped[T any](matcher Matcher[T]) Matcher[any] {
	return untyped[T]{matcher: matcher}
}

type diagnosing[T any] struct {
	logic DiagnosingLogic[T]
}

func (m diagnosing[T]) DescribeMismatch(actual T, d Description) {
	if IsNil(actual) {
		DescribeMismatchDefault(actual, d)

		return
	}

	m.logic.MatchesDiagnosing(actual, d)
}

func (m diagnosing[T]) DescribeTo(d Description) {
	m.logic.DescribeTo(d)
}

func (m diagnosing[T]) Matches(actual T) bool {
	return !IsNil(actual) && m.logic.MatchesDiagnosing(actual, NoDescription)
}

type predicate[T any] struct {
	description string
	test        func(T) bool
}

func (m predicate[T]) DescribeMismatch(actual T, d Description) {
	DescribeMismatchDefault(actual, d)
}

func (m predicate[T]) DescribeTo(d Description) {
	d.AppendText(m.description)
}

func (m predicate[T]) Matches(actual T) bool {
	return m.test(actual)
}

type typeSafe[T any] struct {
	logic SafeLogic[T]
}

func (m typeSafe[T]) DescribeMismatch(actual T, d Description) {
	if describer, ok := m.logic.(SafeMismatchDescriber[T]); ok && !IsNil(actual) {
		describer.DescribeMismatchSafely(actual, d)

		return
	}

	DescribeMismatchDefault(actual, d)
}

func (m typeSafe[T]) DescribeTo(d Description) {
	m.logic.DescribeTo(d)
}

func (m typeSafe[T]) Matches(actual T) bool {
	return !IsNil(actual) && m.logic.MatchesSafely(actual)
}

type untyped[T any] struct {
	matcher Matcher[T]
}

func (m untyped[T]) DescribeMismatch(actual any, d Description) {
	typed, ok := As[T](actual)
	if !ok && actual == nil {
		DescribeMismatchDefault(actual, d)

		return
	}

	if !ok {
		d.AppendText("was a ").AppendText(TypeName(actual)).AppendText(" (").AppendValue(actual).AppendText(")")

		return
	}

	m.matcher.DescribeMismatch(typed, d)
}

func (m untyped[T]) DescribeTo(d Description) {
	m.matcher.DescribeTo(d)
}

func (m untyped[T]) Matches(actual any) bool {
	typed, ok := As[T](actual)

	return ok && m.matcher.Matches(typed)
}

func nilable(rt reflect.Type) bool {
	switch rt.Kind() { //nolint:exhaustive // Only kinds with a nil zero value
	case reflect.Pointer, reflect.Func, reflect.Chan, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
