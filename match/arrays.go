package match

import (
	"slices"

	"github.com/toejough/matchers/internal/core"
)

// Array matches a slice of exactly len(matchers) elements, each matching the matcher
// at the same index.
func Array[E any](matchers ...Matcher[E]) Matcher[[]E] {
	return core.TypeSafe[[]E](array[E]{matchers: slices.Clone(matchers)})
}

// ArrayContaining matches a slice whose elements match the matchers one for one, in
// order. It panics if no matchers are given.
func ArrayContaining[E any](matchers ...Matcher[E]) Matcher[[]E] {
	return core.Diagnosing[[]E](arrayContaining[E]{matchers: required("ArrayContaining", matchers)})
}

// ArrayContainingInAnyOrder matches a slice whose elements each consume one distinct
// matcher, in any order, with no matcher left unconsumed.
func ArrayContainingInAnyOrder[E any](matchers ...Matcher[E]) Matcher[[]E] {
	return core.Diagnosing[[]E](arrayContainingInAnyOrder[E]{matchers: slices.Clone(matchers)})
}

// ArrayWithSize matches a slice of exactly size elements.
func ArrayWithSize[E any](size int) Matcher[[]E] {
	return ArrayWithSizeThat[E](EqualTo(size))
}

// ArrayWithSizeThat matches a slice whose length matches sizeMatcher.
func ArrayWithSizeThat[E any](sizeMatcher Matcher[int]) Matcher[[]E] {
	return Feature("an array with size", "array size", sizeMatcher, func(actual []E) int { return len(actual) })
}

// EmptyArray matches a slice with no elements.
func EmptyArray[E any]() Matcher[[]E] {
	return DescribedAs("an empty array", ArrayWithSize[E](0))
}

// HasItemInArray matches a slice with at least one element matching matcher.
func HasItemInArray[E any](matcher Matcher[E]) Matcher[[]E] {
	return core.Diagnosing[[]E](hasItemInArray[E]{item: hasItem[E]{matcher: matcher}})
}

type array[E any] struct {
	matchers []Matcher[E]
}

func (m array[E]) DescribeMismatchSafely(actual []E, mismatch Description) {
	if len(actual) != len(m.matchers) {
		mismatch.AppendText("array length was ").AppendValue(len(actual))

		return
	}

	for i, element := range actual {
		if !m.matchers[i].Matches(element) {
			mismatch.AppendText("element ").AppendValue(i).AppendText(" ")
			m.matchers[i].DescribeMismatch(element, mismatch)

			return
		}
	}
}

func (m array[E]) DescribeTo(d Description) {
	d.AppendList("[", ", ", "]", core.Describing(m.matchers))
}

func (m array[E]) MatchesSafely(actual []E) bool {
	if len(actual) != len(m.matchers) {
		return false
	}

	for i, element := range actual {
		if !m.matchers[i].Matches(element) {
			return false
		}
	}

	return true
}

type arrayContaining[E any] struct {
	matchers []Matcher[E]
}

func (m arrayContaining[E]) DescribeTo(d Description) {
	d.AppendList("[", ", ", "]", core.Describing(m.matchers))
}

func (m arrayContaining[E]) MatchesDiagnosing(actual []E, mismatch Description) bool {
	cursor := inOrder[E]{matchers: m.matchers, mismatch: mismatch}

	for i := range actual {
		if !cursor.matches(actual[i]) {
			return false
		}
	}

	return cursor.isFinished()
}

type arrayContainingInAnyOrder[E any] struct {
	matchers []Matcher[E]
}

func (m arrayContainingInAnyOrder[E]) DescribeTo(d Description) {
	d.AppendList("[", ", ", "]", core.Describing(m.matchers)).AppendText(" in any order")
}

func (m arrayContainingInAnyOrder[E]) MatchesDiagnosing(actual []E, mismatch Description) bool {
	cursor := newAnyOrder(m.matchers, mismatch)

	for i := range actual {
		if !cursor.matches(actual[i]) {
			return false
		}
	}

	return cursor.isFinished()
}

type hasItemInArray[E any] struct {
	item hasItem[E]
}

func (m hasItemInArray[E]) DescribeTo(d Description) {
	d.AppendText("an array containing ").AppendDescriptionOf(m.item.matcher)
}

func (m hasItemInArray[E]) MatchesDiagnosing(actual []E, mismatch Description) bool {
	return m.item.MatchesDiagnosing(slices.Values(actual), mismatch)
}
