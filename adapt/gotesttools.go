package adapt

import (
	"gotest.tools/v3/assert/cmp"

	"github.com/toejough/matchers/internal/core"
)

// Comparison adapts a match of actual against matcher to a gotest.tools comparison.
// The failure message uses the Expected/but layout.
func Comparison[T any](actual T, matcher core.Matcher[T]) cmp.Comparison {
	return func() cmp.Result {
		if matcher.Matches(actual) {
			return cmp.ResultSuccess
		}

		return cmp.ResultFailure(core.Explain(actual, matcher))
	}
}
