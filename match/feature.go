package match

import (
	"fmt"

	"github.com/toejough/matchers/internal/core"
)

// FallibleFeature is Feature for extractions that can fail. An extraction error
// never escapes: the feature fails to match and its mismatch is "<name> <error>".
func FallibleFeature[T, U any](
	description, name string,
	sub Matcher[U],
	extract func(T) (U, error),
) Matcher[T] {
	return core.Diagnosing[T](feature[T, U]{
		description: description,
		name:        name,
		sub:         sub,
		extract: func(actual T) featureValue[U] {
			value, err := extract(actual)
			if err != nil {
				return failedValue[U]{reason: err.Error()}
			}

			return extractedValue[U]{value: value}
		},
	})
}

// Feature adapts sub, a matcher over U, into a matcher over T by extracting a U
// from each actual value. It is described as "<description> <sub>" and reports
// mismatches as "<name> <sub mismatch>".
//
// Example:
//
//	Feature("a user named", "name", EqualTo("ada"), func(u User) string { return u.Name })
func Feature[T, U any](description, name string, sub Matcher[U], extract func(T) U) Matcher[T] {
	return core.Diagnosing[T](feature[T, U]{
		description: description,
		name:        name,
		sub:         sub,
		extract: func(actual T) featureValue[U] {
			return extractedValue[U]{value: extract(actual)}
		},
	})
}

// HasToString matches a value whose fmt.Sprint rendering matches sub.
func HasToString[T any](sub Matcher[string]) Matcher[T] {
	return Feature("with String()", "String()", sub, func(actual T) string { return fmt.Sprint(actual) })
}

// extractedValue is a successfully extracted feature.
type extractedValue[U any] struct {
	value U
}

func (v extractedValue[U]) matchWith(sub Matcher[U], mismatch Description) bool {
	if sub.Matches(v.value) {
		return true
	}

	sub.DescribeMismatch(v.value, mismatch)

	return false
}

// failedValue stands in for a feature that could not be extracted.
// It never matches and explains itself with a fixed reason.
type failedValue[U any] struct {
	reason string
}

func (v failedValue[U]) matchWith(_ Matcher[U], mismatch Description) bool {
	mismatch.AppendText(v.reason)

	return false
}

type feature[T, U any] struct {
	description string
	name        string
	sub         Matcher[U]
	extract     func(T) featureValue[U]
}

func (m feature[T, U]) DescribeTo(d Description) {
	d.AppendText(m.description).AppendText(" ").AppendDescriptionOf(m.sub)
}

func (m feature[T, U]) MatchesDiagnosing(actual T, mismatch Description) bool {
	value := m.extract(actual)

	if value.matchWith(m.sub, core.NoDescription) {
		return true
	}

	mismatch.AppendText(m.name).AppendText(" ")
	value.matchWith(m.sub, mismatch)

	return false
}

// featureValue is either an extracted value or a failure placeholder.
type featureValue[U any] interface {
	matchWith(sub Matcher[U], mismatch Description) bool
}
