package match

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/google/go-cmp/cmp"

	"github.com/toejough/matchers/internal/core"
)

var errIncomparable = errors.New("cannot compare")

// DeepEqualTo matches a value equal to expected under go-cmp with opts.
// Its mismatch includes the cmp diff.
func DeepEqualTo[T any](expected T, opts ...cmp.Option) Matcher[T] {
	return deepEqualTo[T]{expected: expected, opts: slices.Clone(opts)}
}

// EqualTo matches a value deeply equal to expected, as reflect.DeepEqual decides.
// It is described by the rendered expected value.
func EqualTo[T any](expected T) Matcher[T] {
	return equalTo[T]{expected: expected}
}

// In matches a value equal to one of values.
func In[T any](values []T) Matcher[T] {
	return isIn[T]{values: slices.Clone(values)}
}

// InstanceOf matches a dynamic value whose type is T.
//
//	InstanceOf[error]().Matches(err)
func InstanceOf[T any]() Matcher[any] {
	return instanceOf[T]{}
}

// Nil matches nil: an untyped nil or a nil pointer, func, chan, interface, map, or slice.
func Nil[T any]() Matcher[T] {
	return core.New("null", func(actual T) bool { return isNilOrEmptyRef(actual) })
}

// NotNil matches any value Nil does not.
func NotNil[T any]() Matcher[T] {
	return Not(Nil[T]())
}

// OneOf matches a value equal to one of values.
func OneOf[T any](values ...T) Matcher[T] {
	return In(values)
}

// SameInstance matches the very same reference as target: the same pointer, map,
// slice header, chan, or func. Values of other kinds are compared with ==.
func SameInstance[T any](target T) Matcher[T] {
	return sameInstance[T]{target: target}
}

type deepEqualTo[T any] struct {
	expected T
	opts     []cmp.Option
}

func (m deepEqualTo[T]) DescribeMismatch(actual T, d Description) {
	d.AppendText("was ").AppendValue(actual)

	diff, err := m.diff(actual)
	if err != nil {
		d.AppendText(" (" + err.Error() + ")")

		return
	}

	d.AppendText(" with diff (-want +got):\n").AppendText(diff)
}

func (m deepEqualTo[T]) DescribeTo(d Description) {
	d.AppendText("deeply equal to ").AppendValue(m.expected)
}

func (m deepEqualTo[T]) Matches(actual T) bool {
	diff, err := m.diff(actual)

	return err == nil && diff == ""
}

// diff runs cmp.Diff, turning its panics (unexported fields without an option,
// for example) into an error.
func (m deepEqualTo[T]) diff(actual T) (diff string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errIncomparable, r)
		}
	}()

	return cmp.Diff(m.expected, actual, m.opts...), nil
}

type equalTo[T any] struct {
	expected T
}

func (m equalTo[T]) DescribeMismatch(actual T, d Description) {
	core.DescribeMismatchDefault(actual, d)
}

func (m equalTo[T]) DescribeTo(d Description) {
	d.AppendValue(m.expected)
}

func (m equalTo[T]) Matches(actual T) bool {
	return core.EqualValues(actual, m.expected)
}

type instanceOf[T any] struct{}

func (instanceOf[T]) DescribeMismatch(actual any, d Description) {
	if actual == nil {
		d.AppendText("null")

		return
	}

	d.AppendValue(actual).AppendText(" is a " + core.TypeName(actual))
}

func (instanceOf[T]) DescribeTo(d Description) {
	d.AppendText("an instance of " + reflect.TypeFor[T]().String())
}

func (instanceOf[T]) Matches(actual any) bool {
	_, ok := actual.(T)

	return ok
}

type isIn[T any] struct {
	values []T
}

func (m isIn[T]) DescribeMismatch(actual T, d Description) {
	core.DescribeMismatchDefault(actual, d)
}

func (m isIn[T]) DescribeTo(d Description) {
	d.AppendText("one of ")
	core.AppendValues(d, "{", ", ", "}", m.values)
}

func (m isIn[T]) Matches(actual T) bool {
	return slices.ContainsFunc(m.values, func(value T) bool { return core.EqualValues(actual, value) })
}

type sameInstance[T any] struct {
	target T
}

func (m sameInstance[T]) DescribeMismatch(actual T, d Description) {
	core.DescribeMismatchDefault(actual, d)
}

func (m sameInstance[T]) DescribeTo(d Description) {
	d.AppendText("sameInstance(").AppendValue(m.target).AppendText(")")
}

func (m sameInstance[T]) Matches(actual T) bool {
	want, got := reflect.ValueOf(m.target), reflect.ValueOf(actual)

	if !want.IsValid() || !got.IsValid() {
		return want.IsValid() == got.IsValid()
	}

	if want.Type() != got.Type() {
		return false
	}

	switch want.Kind() { //nolint:exhaustive // Reference kinds compare by address
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return want.Pointer() == got.Pointer()
	case reflect.Slice:
		return want.Pointer() == got.Pointer() && want.Len() == got.Len()
	default:
		return want.Comparable() && want.Equal(got)
	}
}

func isNilOrEmptyRef(actual any) bool {
	if core.IsNil(actual) {
		return true
	}

	rv := reflect.ValueOf(actual)

	switch rv.Kind() { //nolint:exhaustive // Nil slices and maps also count as nil here
	case reflect.Map, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
