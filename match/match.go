// Package match provides composable matchers: leaf predicates, boolean combinators,
// feature extraction, and sequence matchers over iterables, slices, and maps.
// Every matcher explains a failed match through its mismatch description.
// This package is designed to be dot-imported:
//
//	import . "github.com/toejough/matchers/match"
//
//	ok := Contains(Items(1, 2, 3)...).Matches(slices.Values(got))
package match

import (
	"errors"
	"fmt"
	"slices"

	"github.com/toejough/matchers/internal/core"
)

// ErrNoMatchers is the sentinel wrapped by construction panics for sequence
// matchers that require at least one element matcher.
var ErrNoMatchers = errors.New("at least one element matcher is required")

// Description is the sink matchers describe themselves into.
type Description = core.Description

// Matcher tests a value of type T and explains mismatches.
type Matcher[T any] = core.Matcher[T]

// SelfDescribing is anything that can describe itself.
type SelfDescribing = core.SelfDescribing

// Anything returns a matcher that always matches, described as "ANYTHING".
func Anything[T any]() Matcher[T] {
	return AnythingDescribed[T]("ANYTHING")
}

// AnythingDescribed returns a matcher that always matches, described by description.
func AnythingDescribed[T any](description string) Matcher[T] {
	return core.New(description, func(T) bool { return true })
}

// Items wraps each value in an EqualTo matcher, for the value forms of the
// sequence matchers:
//
//	Contains(Items("a", "b")...)
func Items[E any](values ...E) []Matcher[E] {
	matchers := make([]Matcher[E], len(values))
	for i, value := range values {
		matchers[i] = EqualTo(value)
	}

	return matchers
}

// Satisfies returns a matcher that uses a predicate function to check for a match.
// The predicate should return nil if the value matches, or an error describing
// the mismatch if it does not.
//
// Example:
//
//	Satisfies("a positive number", func(x int) error {
//	    if x < 0 { return fmt.Errorf("was negative: %d", x) }
//	    return nil
//	})
func Satisfies[T any](description string, predicate func(T) error) Matcher[T] {
	return satisfies[T]{description: description, predicate: predicate}
}

// satisfies keeps no state between calls: the predicate runs again to describe a mismatch.
type satisfies[T any] struct {
	description string
	predicate   func(T) error
}

func (m satisfies[T]) DescribeMismatch(actual T, d Description) {
	err := m.predicate(actual)
	if err == nil {
		core.DescribeMismatchDefault(actual, d)

		return
	}

	d.AppendText(err.Error())
}

func (m satisfies[T]) DescribeTo(d Description) {
	d.AppendText(m.description)
}

func (m satisfies[T]) Matches(actual T) bool {
	return m.predicate(actual) == nil
}

// required clones matchers and panics if there are none.
func required[E any](name string, matchers []Matcher[E]) []Matcher[E] {
	if len(matchers) == 0 {
		panic(fmt.Errorf("%w: %s", ErrNoMatchers, name))
	}

	return slices.Clone(matchers)
}
