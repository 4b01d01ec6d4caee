package adapt

import (
	"go.uber.org/mock/gomock"

	"github.com/toejough/matchers/internal/core"
)

// GomockMatcher is a gomock argument matcher that also formats the rejected
// argument with the matcher's mismatch text.
type GomockMatcher interface {
	gomock.Matcher
	gomock.GotFormatter
}

// Gomock adapts matcher to a gomock argument matcher. Arguments that are not a T
// do not match.
func Gomock[T any](matcher core.Matcher[T]) GomockMatcher {
	return gomockMatcher{matcher: core.Untyped(matcher)}
}

type gomockMatcher struct {
	matcher core.Matcher[any]
}

// Got renders a rejected argument as its mismatch description.
func (m gomockMatcher) Got(got any) string {
	return core.MismatchOf(m.matcher, got)
}

func (m gomockMatcher) Matches(x any) bool {
	return m.matcher.Matches(x)
}

func (m gomockMatcher) String() string {
	return core.StringOf(m.matcher)
}
