package match

import (
	"github.com/toejough/matchers/internal/core"
)

// Empty matches a slice with no elements. A nil slice is empty.
func Empty[E any]() Matcher[[]E] {
	return emptyCollection[E]{}
}

// HasSize matches a slice with exactly size elements.
func HasSize[E any](size int) Matcher[[]E] {
	return HasSizeThat[E](EqualTo(size))
}

// HasSizeThat matches a slice whose length matches sizeMatcher.
func HasSizeThat[E any](sizeMatcher Matcher[int]) Matcher[[]E] {
	return Feature("a collection with size", "collection size", sizeMatcher, func(actual []E) int { return len(actual) })
}

type emptyCollection[E any] struct{}

func (emptyCollection[E]) DescribeMismatch(actual []E, d Description) {
	d.AppendValue(actual)
}

func (emptyCollection[E]) DescribeTo(d Description) {
	d.AppendText("an empty collection")
}

func (emptyCollection[E]) Matches(actual []E) bool {
	return len(actual) == 0
}

var _ core.Matcher[[]int] = emptyCollection[int]{}
