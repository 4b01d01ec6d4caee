// Package adapt exposes matchers to the test libraries that already have an
// assertion vocabulary: gomega, gomock, and gotest.tools.
//
//	g.Expect(got).To(adapt.Gomega(Contains(Items(1, 2)...)))
//	mock.EXPECT().Save(adapt.Gomock(HasField[User]("Name", EqualTo[any]("ada"))))
//	assert.Assert(t, adapt.Comparison(got, HasSize[int](2)))
package adapt

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/onsi/gomega/types"

	"github.com/toejough/matchers/internal/core"
)

// ErrTypeMismatch is returned by a gomega adapter whose actual value is not of the
// matcher's type.
var ErrTypeMismatch = errors.New("type mismatch")

// Gomega adapts matcher to gomega. Match returns an ErrTypeMismatch error when the
// actual value is not a T; failure messages use the Expected/but layout.
func Gomega[T any](matcher core.Matcher[T]) types.GomegaMatcher {
	return gomegaMatcher[T]{matcher: matcher}
}

type gomegaMatcher[T any] struct {
	matcher core.Matcher[T]
}

func (m gomegaMatcher[T]) FailureMessage(actual any) string {
	return core.Explain(actual, core.Untyped(m.matcher))
}

func (m gomegaMatcher[T]) Match(actual any) (bool, error) {
	typed, ok := core.As[T](actual)
	if !ok {
		return false, fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, reflect.TypeFor[T](), typeOf(actual))
	}

	return m.matcher.Matches(typed), nil
}

func (m gomegaMatcher[T]) NegatedFailureMessage(actual any) string {
	d := core.NewStringDescription()
	d.AppendText("Expected: not ").AppendDescriptionOf(m.matcher).AppendText("\n     but: was ").AppendValue(actual)

	return d.String()
}

func typeOf(actual any) string {
	if actual == nil {
		return "nil"
	}

	return core.TypeName(actual)
}
