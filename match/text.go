package match

import (
	"strings"

	"github.com/akedrou/textdiff"
	"golang.org/x/text/cases"

	"github.com/toejough/matchers/internal/core"
)

// BlankString matches a string that is empty or contains only white space.
//
//nolint:gochecknoglobals // Shared immutable matcher
var BlankString = core.New("a blank string", func(actual string) bool {
	return strings.TrimSpace(actual) == ""
})

// EmptyString matches the empty string.
//
//nolint:gochecknoglobals // Shared immutable matcher
var EmptyString = core.New("an empty string", func(actual string) bool {
	return actual == ""
})

// ContainsString matches a string containing substring.
func ContainsString(substring string) Matcher[string] {
	return substringMatcher{relationship: "containing", substring: substring, test: strings.Contains}
}

// EndsWith matches a string ending with suffix.
func EndsWith(suffix string) Matcher[string] {
	return substringMatcher{relationship: "ending with", substring: suffix, test: strings.HasSuffix}
}

// EqualToCompressingWhiteSpace matches a string equal to expected once leading and
// trailing white space is dropped and inner runs of white space are reduced to one space.
func EqualToCompressingWhiteSpace(expected string) Matcher[string] {
	return equalToNormalized{expected: expected, qualifier: "compressing white space", normalize: compressWhiteSpace}
}

// EqualToIgnoringCase matches a string equal to expected under Unicode case folding.
func EqualToIgnoringCase(expected string) Matcher[string] {
	return equalToNormalized{expected: expected, qualifier: "ignoring case", normalize: foldCase}
}

// EqualToText matches a string equal to expected. Its mismatch is a unified diff,
// which reads better than quoted values for long or multi-line text.
func EqualToText(expected string) Matcher[string] {
	return equalToText{expected: expected}
}

// StartsWith matches a string starting with prefix.
func StartsWith(prefix string) Matcher[string] {
	return substringMatcher{relationship: "starting with", substring: prefix, test: strings.HasPrefix}
}

// StringContainsInOrder matches a string containing each of substrings, in order,
// without overlap.
func StringContainsInOrder(substrings ...string) Matcher[string] {
	return containsInOrderText{substrings: append([]string(nil), substrings...)}
}

type containsInOrderText struct {
	substrings []string
}

func (m containsInOrderText) DescribeMismatch(actual string, d Description) {
	core.DescribeMismatchDefault(actual, d)
}

func (m containsInOrderText) DescribeTo(d Description) {
	d.AppendText("a string containing ")
	core.AppendValues(d, "", ", ", "", m.substrings)
	d.AppendText(" in order")
}

func (m containsInOrderText) Matches(actual string) bool {
	from := 0

	for _, substring := range m.substrings {
		index := strings.Index(actual[from:], substring)
		if index < 0 {
			return false
		}

		from += index + len(substring)
	}

	return true
}

type equalToNormalized struct {
	expected  string
	qualifier string
	normalize func(string) string
}

func (m equalToNormalized) DescribeMismatch(actual string, d Description) {
	core.DescribeMismatchDefault(actual, d)
}

func (m equalToNormalized) DescribeTo(d Description) {
	d.AppendText("a string equal to ").AppendValue(m.expected).AppendText(" " + m.qualifier)
}

func (m equalToNormalized) Matches(actual string) bool {
	return m.normalize(actual) == m.normalize(m.expected)
}

type equalToText struct {
	expected string
}

func (m equalToText) DescribeMismatch(actual string, d Description) {
	d.AppendText("differed:\n").AppendText(textdiff.Unified("expected", "actual", m.expected, actual))
}

func (m equalToText) DescribeTo(d Description) {
	d.AppendValue(m.expected)
}

func (m equalToText) Matches(actual string) bool {
	return actual == m.expected
}

type substringMatcher struct {
	relationship string
	substring    string
	test         func(s, substring string) bool
}

func (m substringMatcher) DescribeMismatch(actual string, d Description) {
	core.DescribeMismatchDefault(actual, d)
}

func (m substringMatcher) DescribeTo(d Description) {
	d.AppendText("a string " + m.relationship + " ").AppendValue(m.substring)
}

func (m substringMatcher) Matches(actual string) bool {
	return m.test(actual, m.substring)
}

func compressWhiteSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// foldCase builds a new Caser per call: a Caser must not be shared between goroutines.
func foldCase(text string) string {
	return cases.Fold().String(text)
}
