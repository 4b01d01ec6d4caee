package match

import (
	"iter"
	"slices"

	"github.com/toejough/matchers/internal/core"
)

// Contains matches an iterable whose items match the matchers one for one, in order,
// with nothing left over. It panics if no matchers are given.
//
// Matches traverses the iterable once. DescribeMismatch traverses it again, so pass
// a re-iterable sequence such as slices.Values when a mismatch text is wanted.
func Contains[E any](matchers ...Matcher[E]) Matcher[iter.Seq[E]] {
	return core.Diagnosing[iter.Seq[E]](containsInOrder[E]{matchers: required("Contains", matchers)})
}

// ContainsInAnyOrder matches an iterable whose items each consume one distinct matcher,
// in any order, with no matcher left unconsumed. Each item takes the first remaining
// matcher that accepts it; other pairings are not tried.
//
// Matches traverses the iterable once. DescribeMismatch traverses it again, so pass
// a re-iterable sequence such as slices.Values when a mismatch text is wanted.
func ContainsInAnyOrder[E any](matchers ...Matcher[E]) Matcher[iter.Seq[E]] {
	return core.Diagnosing[iter.Seq[E]](containsInAnyOrder[E]{matchers: slices.Clone(matchers)})
}

// ContainsInRelativeOrder matches an iterable containing items that match the matchers
// in the same relative order, allowing other items around and between them.
// It panics if no matchers are given.
//
// Matches traverses the iterable once. DescribeMismatch traverses it again, so pass
// a re-iterable sequence such as slices.Values when a mismatch text is wanted.
func ContainsInRelativeOrder[E any](matchers ...Matcher[E]) Matcher[iter.Seq[E]] {
	return core.Diagnosing[iter.Seq[E]](containsInRelativeOrder[E]{
		matchers: required("ContainsInRelativeOrder", matchers),
	})
}

// EmptyIterable matches an iterable that yields nothing.
func EmptyIterable[E any]() Matcher[iter.Seq[E]] {
	return core.TypeSafe[iter.Seq[E]](emptyIterable[E]{})
}

// Every matches an iterable whose items all match matcher.
//
// Matches traverses the iterable once. DescribeMismatch traverses it again, so pass
// a re-iterable sequence such as slices.Values when a mismatch text is wanted.
func Every[E any](matcher Matcher[E]) Matcher[iter.Seq[E]] {
	return core.Diagnosing[iter.Seq[E]](every[E]{matcher: matcher})
}

// HasItem matches an iterable with at least one item matching matcher.
//
// Matches traverses the iterable once. DescribeMismatch traverses it again, so pass
// a re-iterable sequence such as slices.Values when a mismatch text is wanted.
func HasItem[E any](matcher Matcher[E]) Matcher[iter.Seq[E]] {
	return core.Diagnosing[iter.Seq[E]](hasItem[E]{matcher: matcher})
}

// HasItems matches an iterable that has, for each matcher, at least one matching item.
func HasItems[E any](matchers ...Matcher[E]) Matcher[iter.Seq[E]] {
	all := make([]Matcher[iter.Seq[E]], len(matchers))
	for i, matcher := range matchers {
		all[i] = HasItem(matcher)
	}

	return AllOf(all...)
}

// HasSubsequence matches an iterable containing a contiguous run of items that match
// the matchers in order. The run starts at the first item matching matchers[0]; if the
// run breaks there, later starting points are not searched. It panics if no matchers
// are given.
//
// Matches traverses the iterable once. DescribeMismatch traverses it again, so pass
// a re-iterable sequence such as slices.Values when a mismatch text is wanted.
func HasSubsequence[E any](matchers ...Matcher[E]) Matcher[iter.Seq[E]] {
	return core.Diagnosing[iter.Seq[E]](hasSubsequence[E]{matchers: required("HasSubsequence", matchers)})
}

// IterableWithSize matches an iterable yielding exactly size items.
func IterableWithSize[E any](size int) Matcher[iter.Seq[E]] {
	return IterableWithSizeThat[E](EqualTo(size))
}

// IterableWithSizeThat matches an iterable whose item count matches sizeMatcher.
// The count is taken by one full traversal.
func IterableWithSizeThat[E any](sizeMatcher Matcher[int]) Matcher[iter.Seq[E]] {
	return Feature("an iterable with size", "iterable size", sizeMatcher, count[E])
}

type containsInAnyOrder[E any] struct {
	matchers []Matcher[E]
}

func (m containsInAnyOrder[E]) DescribeTo(d Description) {
	d.AppendText("iterable with items ").
		AppendList("[", ", ", "]", core.Describing(m.matchers)).
		AppendText(" in any order")
}

func (m containsInAnyOrder[E]) MatchesDiagnosing(items iter.Seq[E], mismatch Description) bool {
	cursor := newAnyOrder(m.matchers, mismatch)

	for item := range items {
		if !cursor.matches(item) {
			return false
		}
	}

	return cursor.isFinished()
}

type containsInOrder[E any] struct {
	matchers []Matcher[E]
}

func (m containsInOrder[E]) DescribeTo(d Description) {
	d.AppendText("iterable containing ").AppendList("[", ", ", "]", core.Describing(m.matchers))
}

func (m containsInOrder[E]) MatchesDiagnosing(items iter.Seq[E], mismatch Description) bool {
	cursor := inOrder[E]{matchers: m.matchers, mismatch: mismatch}

	for item := range items {
		if !cursor.matches(item) {
			return false
		}
	}

	return cursor.isFinished()
}

type containsInRelativeOrder[E any] struct {
	matchers []Matcher[E]
}

func (m containsInRelativeOrder[E]) DescribeTo(d Description) {
	d.AppendText("iterable containing ").
		AppendList("[", ", ", "]", core.Describing(m.matchers)).
		AppendText(" in relative order")
}

func (m containsInRelativeOrder[E]) MatchesDiagnosing(items iter.Seq[E], mismatch Description) bool {
	cursor := relativeOrder[E]{matchers: m.matchers}

	for item := range items {
		cursor.process(item)
	}

	return cursor.isFinished(mismatch)
}

type emptyIterable[E any] struct{}

func (emptyIterable[E]) DescribeMismatchSafely(items iter.Seq[E], mismatch Description) {
	core.AppendValues(mismatch, "[", ",", "]", slices.Collect(items))
}

func (emptyIterable[E]) DescribeTo(d Description) {
	d.AppendText("an empty iterable")
}

func (emptyIterable[E]) MatchesSafely(items iter.Seq[E]) bool {
	for range items {
		return false
	}

	return true
}

type every[E any] struct {
	matcher Matcher[E]
}

func (m every[E]) DescribeTo(d Description) {
	d.AppendText("every item is ").AppendDescriptionOf(m.matcher)
}

func (m every[E]) MatchesDiagnosing(items iter.Seq[E], mismatch Description) bool {
	for item := range items {
		if !m.matcher.Matches(item) {
			mismatch.AppendText("an item ")
			m.matcher.DescribeMismatch(item, mismatch)

			return false
		}
	}

	return true
}

type hasItem[E any] struct {
	matcher Matcher[E]
}

func (m hasItem[E]) DescribeTo(d Description) {
	d.AppendText("a collection containing ").AppendDescriptionOf(m.matcher)
}

func (m hasItem[E]) MatchesDiagnosing(items iter.Seq[E], mismatch Description) bool {
	var seen []E

	for item := range items {
		if m.matcher.Matches(item) {
			return true
		}

		seen = append(seen, item)
	}

	if len(seen) == 0 {
		mismatch.AppendText("was empty")

		return false
	}

	mismatch.AppendText("mismatches were: [")

	for i, item := range seen {
		if i > 0 {
			mismatch.AppendText(", ")
		}

		m.matcher.DescribeMismatch(item, mismatch)
	}

	mismatch.AppendText("]")

	return false
}

type hasSubsequence[E any] struct {
	matchers []Matcher[E]
}

func (m hasSubsequence[E]) DescribeTo(d Description) {
	d.AppendText("iterable contains subsequence matching ").AppendList("[", ", ", "]", core.Describing(m.matchers))
}

func (m hasSubsequence[E]) MatchesDiagnosing(items iter.Seq[E], mismatch Description) bool {
	cursor := subsequence[E]{matchers: m.matchers}

	for item := range items {
		if cursor.offer(item) {
			break
		}
	}

	if cursor.found() {
		return true
	}

	cursor.describeNotFound(mismatch)

	return false
}

func count[E any](items iter.Seq[E]) int {
	n := 0
	for range items {
		n++
	}

	return n
}
