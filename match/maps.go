package match

import (
	"fmt"
	"slices"
	"strings"

	"github.com/toejough/matchers/internal/core"
)

// AMapWithSize matches a map with exactly size entries.
func AMapWithSize[K comparable, V any](size int) Matcher[map[K]V] {
	return AMapWithSizeThat[K, V](EqualTo(size))
}

// AMapWithSizeThat matches a map whose entry count matches sizeMatcher.
func AMapWithSizeThat[K comparable, V any](sizeMatcher Matcher[int]) Matcher[map[K]V] {
	return Feature("a map with size", "map size", sizeMatcher, func(actual map[K]V) int { return len(actual) })
}

// AnEmptyMap matches a map with no entries. A nil map is empty.
func AnEmptyMap[K comparable, V any]() Matcher[map[K]V] {
	return DescribedAs("an empty map", AMapWithSize[K, V](0))
}

// HasEntry matches a map with at least one entry whose key matches keyMatcher and
// whose value matches valueMatcher.
func HasEntry[K comparable, V any](keyMatcher Matcher[K], valueMatcher Matcher[V]) Matcher[map[K]V] {
	return core.TypeSafe[map[K]V](hasEntry[K, V]{key: keyMatcher, value: valueMatcher})
}

// HasKey matches a map with at least one key matching keyMatcher.
func HasKey[K comparable, V any](keyMatcher Matcher[K]) Matcher[map[K]V] {
	return HasEntry(keyMatcher, Anything[V]())
}

// HasValue matches a map with at least one value matching valueMatcher.
func HasValue[K comparable, V any](valueMatcher Matcher[V]) Matcher[map[K]V] {
	return HasEntry(Anything[K](), valueMatcher)
}

type hasEntry[K comparable, V any] struct {
	key   Matcher[K]
	value Matcher[V]
}

func (m hasEntry[K, V]) DescribeMismatchSafely(actual map[K]V, mismatch Description) {
	mismatch.AppendText("map was ")
	core.AppendValues(mismatch, "[", ", ", "]", sortedEntries(actual))
}

func (m hasEntry[K, V]) DescribeTo(d Description) {
	d.AppendText("map containing [").
		AppendDescriptionOf(m.key).
		AppendText("->").
		AppendDescriptionOf(m.value).
		AppendText("]")
}

func (m hasEntry[K, V]) MatchesSafely(actual map[K]V) bool {
	for key, value := range actual {
		if m.key.Matches(key) && m.value.Matches(value) {
			return true
		}
	}

	return false
}

// mapEntry renders as "k=v" so a list of entries reads like the map itself.
type mapEntry struct {
	text string
}

func (e mapEntry) String() string {
	return e.text
}

// sortedEntries renders the entries of actual ordered by their text, so that mismatch
// descriptions do not depend on map iteration order.
func sortedEntries[K comparable, V any](actual map[K]V) []mapEntry {
	entries := make([]mapEntry, 0, len(actual))
	for key, value := range actual {
		entries = append(entries, mapEntry{text: fmt.Sprintf("%v=%v", key, value)})
	}

	slices.SortFunc(entries, func(a, b mapEntry) int { return strings.Compare(a.text, b.text) })

	return entries
}
