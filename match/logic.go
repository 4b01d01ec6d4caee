package match

import (
	"regexp"
	"slices"
	"strconv"

	"github.com/toejough/matchers/internal/core"
)

//nolint:gochecknoglobals // Compiled once, read-only
var describedAsArg = regexp.MustCompile(`%([0-9]+)`)

// BothBuilder starts a fluent conjunction; finish it with And.
type BothBuilder[T any] struct {
	first Matcher[T]
}

// And returns a matcher that requires both the first matcher and other.
func (b BothBuilder[T]) And(other Matcher[T]) Combinable[T] {
	return Combinable[T]{matcher: AllOf(b.first, other)}
}

// Combinable is a matcher built by Both or Either that can be extended further.
type Combinable[T any] struct {
	matcher Matcher[T]
}

// And returns a matcher that requires both c and other.
func (c Combinable[T]) And(other Matcher[T]) Combinable[T] {
	return Combinable[T]{matcher: AllOf(c.matcher, other)}
}

// DescribeMismatch delegates to the combined matcher.
func (c Combinable[T]) DescribeMismatch(actual T, d Description) {
	c.matcher.DescribeMismatch(actual, d)
}

// DescribeTo delegates to the combined matcher.
func (c Combinable[T]) DescribeTo(d Description) {
	c.matcher.DescribeTo(d)
}

// Matches delegates to the combined matcher.
func (c Combinable[T]) Matches(actual T) bool {
	return c.matcher.Matches(actual)
}

// Or returns a matcher that requires c or other.
func (c Combinable[T]) Or(other Matcher[T]) Combinable[T] {
	return Combinable[T]{matcher: AnyOf(c.matcher, other)}
}

// EitherBuilder starts a fluent disjunction; finish it with Or.
type EitherBuilder[T any] struct {
	first Matcher[T]
}

// Or returns a matcher that requires the first matcher or other.
func (b EitherBuilder[T]) Or(other Matcher[T]) Combinable[T] {
	return Combinable[T]{matcher: AnyOf(b.first, other)}
}

// AllOf matches when every matcher matches. It stops at the first failure, whose
// mismatch text becomes the mismatch text of the whole. With no matchers it
// matches everything.
func AllOf[T any](matchers ...Matcher[T]) Matcher[T] {
	return allOf[T]{matchers: slices.Clone(matchers)}
}

// AnyOf matches when at least one matcher matches. With no matchers it matches
// nothing. Its mismatch text is its own description.
func AnyOf[T any](matchers ...Matcher[T]) Matcher[T] {
	return anyOf[T]{matchers: slices.Clone(matchers)}
}

// Both starts a fluent conjunction:
//
//	Both(GreaterThan(1)).And(LessThan(5))
func Both[T any](matcher Matcher[T]) BothBuilder[T] {
	return BothBuilder[T]{first: matcher}
}

// DescribedAs wraps matcher with a new description. Occurrences of %0, %1, ...
// in template are replaced with the rendered values.
func DescribedAs[T any](template string, matcher Matcher[T], values ...any) Matcher[T] {
	return describedAs[T]{template: template, matcher: matcher, values: slices.Clone(values)}
}

// Either starts a fluent disjunction:
//
//	Either(EqualTo("yes")).Or(EqualTo("y"))
func Either[T any](matcher Matcher[T]) EitherBuilder[T] {
	return EitherBuilder[T]{first: matcher}
}

// Is decorates matcher's description with "is " without changing its behaviour.
func Is[T any](matcher Matcher[T]) Matcher[T] {
	return is[T]{matcher: matcher}
}

// Not inverts matcher.
func Not[T any](matcher Matcher[T]) Matcher[T] {
	return not[T]{matcher: matcher}
}

type allOf[T any] struct {
	matchers []Matcher[T]
}

func (m allOf[T]) DescribeMismatch(actual T, d Description) {
	for _, matcher := range m.matchers {
		if !matcher.Matches(actual) {
			matcher.DescribeMismatch(actual, d)

			return
		}
	}
}

func (m allOf[T]) DescribeTo(d Description) {
	d.AppendList("(", " and ", ")", core.Describing(m.matchers))
}

func (m allOf[T]) Matches(actual T) bool {
	for _, matcher := range m.matchers {
		if !matcher.Matches(actual) {
			return false
		}
	}

	return true
}

type anyOf[T any] struct {
	matchers []Matcher[T]
}

func (m anyOf[T]) DescribeMismatch(_ T, d Description) {
	m.DescribeTo(d)
}

func (m anyOf[T]) DescribeTo(d Description) {
	d.AppendList("(", " or ", ")", core.Describing(m.matchers))
}

func (m anyOf[T]) Matches(actual T) bool {
	for _, matcher := range m.matchers {
		if matcher.Matches(actual) {
			return true
		}
	}

	return false
}

type describedAs[T any] struct {
	template string
	matcher  Matcher[T]
	values   []any
}

func (m describedAs[T]) DescribeMismatch(actual T, d Description) {
	m.matcher.DescribeMismatch(actual, d)
}

func (m describedAs[T]) DescribeTo(d Description) {
	d.AppendText(describedAsArg.ReplaceAllStringFunc(m.template, func(arg string) string {
		index, err := strconv.Atoi(arg[1:])
		if err != nil || index >= len(m.values) {
			return arg
		}

		return core.Render(m.values[index])
	}))
}

func (m describedAs[T]) Matches(actual T) bool {
	return m.matcher.Matches(actual)
}

type is[T any] struct {
	matcher Matcher[T]
}

func (m is[T]) DescribeMismatch(actual T, d Description) {
	m.matcher.DescribeMismatch(actual, d)
}

func (m is[T]) DescribeTo(d Description) {
	d.AppendText("is ").AppendDescriptionOf(m.matcher)
}

func (m is[T]) Matches(actual T) bool {
	return m.matcher.Matches(actual)
}

type not[T any] struct {
	matcher Matcher[T]
}

func (m not[T]) DescribeMismatch(_ T, d Description) {
	m.DescribeTo(d)
}

func (m not[T]) DescribeTo(d Description) {
	d.AppendText("not ").AppendDescriptionOf(m.matcher)
}

func (m not[T]) Matches(actual T) bool {
	return !m.matcher.Matches(actual)
}
