package core

import (
	"strings"
)

// NoDescription discards everything appended to it.
// Matches uses it to run diagnosing logic without building text.
//
//nolint:gochecknoglobals // Intentional shared immutable sink
var NoDescription Description = nullDescription{}

// Description is an append-only text sink that matchers describe themselves into.
// Appending never fails.
type Description interface {
	// AppendText appends raw text.
	AppendText(text string) Description
	// AppendValue appends a rendering of value: quoted if it is a string,
	// null if it is nil, a bracketed list for slices and arrays, and <value> otherwise.
	AppendValue(value any) Description
	// AppendValueList appends the rendered values between start and end, joined by separator.
	AppendValueList(start, separator, end string, values []any) Description
	// AppendDescriptionOf appends the self description of a nested value.
	AppendDescriptionOf(value SelfDescribing) Description
	// AppendList appends the self descriptions of values between start and end, joined by separator.
	AppendList(start, separator, end string, values []SelfDescribing) Description
}

// SelfDescribing is anything that can describe itself into a Description.
type SelfDescribing interface {
	DescribeTo(d Description)
}

// StringDescription accumulates appended text in memory.
type StringDescription struct {
	builder strings.Builder
}

// AppendDescriptionOf appends the self description of value.
func (s *StringDescription) AppendDescriptionOf(value SelfDescribing) Description {
	value.DescribeTo(s)

	return s
}

// AppendList appends the self descriptions of values between start and end.
func (s *StringDescription) AppendList(start, separator, end string, values []SelfDescribing) Description {
	s.builder.WriteString(start)

	for i, value := range values {
		if i > 0 {
			s.builder.WriteString(separator)
		}

		value.DescribeTo(s)
	}

	s.builder.WriteString(end)

	return s
}

// AppendText appends raw text.
func (s *StringDescription) AppendText(text string) Description {
	s.builder.WriteString(text)

	return s
}

// AppendValue appends a rendering of value.
func (s *StringDescription) AppendValue(value any) Description {
	s.builder.WriteString(Render(value))

	return s
}

// AppendValueList appends the rendered values between start and end.
func (s *StringDescription) AppendValueList(start, separator, end string, values []any) Description {
	s.builder.WriteString(renderList(start, separator, end, values))

	return s
}

// String returns everything appended so far.
func (s *StringDescription) String() string {
	return s.builder.String()
}

// AppendValues appends a typed slice of values as a rendered list.
func AppendValues[E any](d Description, start, separator, end string, values []E) Description {
	return d.AppendValueList(start, separator, end, Boxed(values))
}

// Boxed converts a typed slice into a slice of any.
func Boxed[E any](values []E) []any {
	boxed := make([]any, len(values))
	for i, value := range values {
		boxed[i] = value
	}

	return boxed
}

// Describing converts a slice of matchers into a slice of SelfDescribing values
// suitable for AppendList.
func Describing[T any](matchers []Matcher[T]) []SelfDescribing {
	described := make([]SelfDescribing, len(matchers))
	for i, matcher := range matchers {
		described[i] = matcher
	}

	return described
}

// NewStringDescription returns an empty in-memory description.
func NewStringDescription() *StringDescription {
	return &StringDescription{}
}

// StringOf returns the self description of value as a string.
func StringOf(value SelfDescribing) string {
	d := NewStringDescription()
	d.AppendDescriptionOf(value)

	return d.String()
}

type nullDescription struct{}

func (n nullDescription) AppendDescriptionOf(SelfDescribing) Description { return n }

func (n nullDescription) AppendList(string, string, string, []SelfDescribing) Description { return n }

func (n nullDescription) AppendText(string) Description { return n }

func (n nullDescription) AppendValue(any) Description { return n }

func (n nullDescription) AppendValueList(string, string, string, []any) Description { return n }
