// Package trace logs matcher evaluations, for debugging a composite matcher that
// rejects (or accepts) a value unexpectedly.
package trace

import (
	"github.com/rs/zerolog"

	"github.com/toejough/matchers/internal/core"
)

// Traced wraps matcher so that every Matches call is logged at debug level with the
// matcher's description, the rendered value, and the outcome. Failed matches also
// carry the mismatch text, which describes actual a second time; an iter.Seq
// passed to a traced sequence matcher must therefore be re-iterable.
func Traced[T any](matcher core.Matcher[T], logger zerolog.Logger) core.Matcher[T] {
	return traced[T]{matcher: matcher, logger: logger}
}

type traced[T any] struct {
	matcher core.Matcher[T]
	logger  zerolog.Logger
}

func (m traced[T]) DescribeMismatch(actual T, d core.Description) {
	m.matcher.DescribeMismatch(actual, d)
}

func (m traced[T]) DescribeTo(d core.Description) {
	m.matcher.DescribeTo(d)
}

func (m traced[T]) Matches(actual T) bool {
	matched := m.matcher.Matches(actual)

	event := m.logger.Debug()
	if !event.Enabled() {
		return matched
	}

	event = event.
		Str("matcher", core.StringOf(m.matcher)).
		Str("actual", core.Render(actual)).
		Bool("matched", matched)

	if !matched {
		event = event.Str("mismatch", core.MismatchOf(m.matcher, actual))
	}

	event.Msg("match evaluated")

	return matched
}
