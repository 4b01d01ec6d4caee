package match

import (
	"cmp"
)

// ComparesEqualTo matches a value that orders equal to expected.
func ComparesEqualTo[T cmp.Ordered](expected T) Matcher[T] {
	return ordering[T]{expected: expected, lowest: 0, highest: 0}
}

// GreaterThan matches a value ordered after expected.
func GreaterThan[T cmp.Ordered](expected T) Matcher[T] {
	return ordering[T]{expected: expected, lowest: 1, highest: 1}
}

// GreaterThanOrEqualTo matches a value not ordered before expected.
func GreaterThanOrEqualTo[T cmp.Ordered](expected T) Matcher[T] {
	return ordering[T]{expected: expected, lowest: 0, highest: 1}
}

// LessThan matches a value ordered before expected.
func LessThan[T cmp.Ordered](expected T) Matcher[T] {
	return ordering[T]{expected: expected, lowest: -1, highest: -1}
}

// LessThanOrEqualTo matches a value not ordered after expected.
func LessThanOrEqualTo[T cmp.Ordered](expected T) Matcher[T] {
	return ordering[T]{expected: expected, lowest: -1, highest: 0}
}

// ordering accepts actual when cmp.Compare(actual, expected) lies in [lowest, highest].
type ordering[T cmp.Ordered] struct {
	expected T
	lowest   int
	highest  int
}

func (m ordering[T]) DescribeMismatch(actual T, d Description) {
	d.AppendValue(actual).
		AppendText(" was ").
		AppendText(comparisonText(cmp.Compare(actual, m.expected))).
		AppendText(" ").
		AppendValue(m.expected)
}

func (m ordering[T]) DescribeTo(d Description) {
	d.AppendText("a value ").AppendText(comparisonText(m.lowest))

	if m.lowest != m.highest {
		d.AppendText(" or ").AppendText(comparisonText(m.highest))
	}

	d.AppendText(" ").AppendValue(m.expected)
}

func (m ordering[T]) Matches(actual T) bool {
	order := cmp.Compare(actual, m.expected)

	return m.lowest <= order && order <= m.highest
}

func comparisonText(order int) string {
	switch {
	case order < 0:
		return "less than"
	case order > 0:
		return "greater than"
	default:
		return "equal to"
	}
}

var _ Matcher[int] = ordering[int]{}
