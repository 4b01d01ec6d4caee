package match

import (
	"strconv"

	"github.com/toejough/matchers/internal/core"
)

// The cursors below hold the per-call state of the sequence matchers. Each one is
// created inside a single Matches or DescribeMismatch call and dropped when it returns.

// anyOrder consumes one matcher per item, taking the first unconsumed matcher that
// matches. Consumption is greedy: no other pairing is tried.
type anyOrder[E any] struct {
	matchers  []Matcher[E]
	consumed  []bool
	remaining int
	seen      []E
	mismatch  Description
}

func newAnyOrder[E any](matchers []Matcher[E], mismatch Description) *anyOrder[E] {
	return &anyOrder[E]{
		matchers:  matchers,
		consumed:  make([]bool, len(matchers)),
		remaining: len(matchers),
		mismatch:  mismatch,
	}
}

func (c *anyOrder[E]) isFinished() bool {
	if c.remaining == 0 {
		return true
	}

	unmatched := make([]SelfDescribing, 0, c.remaining)

	for i, matcher := range c.matchers {
		if !c.consumed[i] {
			unmatched = append(unmatched, matcher)
		}
	}

	c.mismatch.AppendText("no item matches: ").AppendList("", ", ", "", unmatched).AppendText(" in ")
	core.AppendValues(c.mismatch, "[", ", ", "]", c.seen)

	return false
}

func (c *anyOrder[E]) matches(item E) bool {
	c.seen = append(c.seen, item)

	if c.remaining == 0 {
		c.mismatch.AppendText("no match for: ").AppendValue(item)

		return false
	}

	for i, matcher := range c.matchers {
		if c.consumed[i] || !matcher.Matches(item) {
			continue
		}

		c.consumed[i] = true
		c.remaining--

		return true
	}

	c.mismatch.AppendText("not matched: ").AppendValue(item)

	return false
}

// inOrder pairs the i-th item with the i-th matcher.
type inOrder[E any] struct {
	matchers []Matcher[E]
	mismatch Description
	next     int
}

func (c *inOrder[E]) isFinished() bool {
	if c.next < len(c.matchers) {
		c.mismatch.AppendText("no item was ").AppendDescriptionOf(c.matchers[c.next])

		return false
	}

	return true
}

func (c *inOrder[E]) matches(item E) bool {
	if c.next >= len(c.matchers) {
		c.mismatch.AppendText("not matched: ").AppendValue(item)

		return false
	}

	matcher := c.matchers[c.next]
	if !matcher.Matches(item) {
		c.mismatch.AppendText("item " + strconv.Itoa(c.next) + ": ")
		matcher.DescribeMismatch(item, c.mismatch)

		return false
	}

	c.next++

	return true
}

// relativeOrder advances through the matchers whenever an item matches the next one,
// skipping everything else.
type relativeOrder[E any] struct {
	matchers    []Matcher[E]
	next        int
	lastMatched E
	matchedAny  bool
}

func (c *relativeOrder[E]) isFinished(mismatch Description) bool {
	if c.next >= len(c.matchers) {
		return true
	}

	mismatch.AppendDescriptionOf(c.matchers[c.next]).AppendText(" was not found")

	if c.matchedAny {
		mismatch.AppendText(" after ").AppendValue(c.lastMatched)
	}

	return false
}

func (c *relativeOrder[E]) process(item E) {
	if c.next < len(c.matchers) && c.matchers[c.next].Matches(item) {
		c.lastMatched = item
		c.matchedAny = true
		c.next++
	}
}

// subsequence looks for the first item matching matchers[0] and then requires the
// following items to match the rest in turn. A broken run ends the search.
type subsequence[E any] struct {
	matchers []Matcher[E]
	viewed   []E
	next     int
	broken   bool
}

func (c *subsequence[E]) describeNotFound(mismatch Description) {
	mismatch.AppendText("subsequence not in ")
	core.AppendValues(mismatch, "[", ", ", "]", c.viewed)
	mismatch.AppendText(" because no match for ").AppendDescriptionOf(c.matchers[c.next])
}

func (c *subsequence[E]) found() bool {
	return !c.broken && c.next == len(c.matchers)
}

// offer feeds the next item and reports whether the search is over.
func (c *subsequence[E]) offer(item E) bool {
	c.viewed = append(c.viewed, item)

	switch {
	case c.matchers[c.next].Matches(item):
		c.next++

		return c.next == len(c.matchers)
	case c.next == 0:
		return false
	default:
		c.broken = true

		return true
	}
}
