package matchers_test

import (
	"fmt"
	"iter"
	"slices"
	"sync"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import intentional for Gomega matcher DSL

	"github.com/toejough/matchers"
	"github.com/toejough/matchers/match"
)

// order is a value with a custom mismatch, built from the TypeSafe template.
type order struct {
	ID    string
	Lines []string
}

type shippable struct{}

func (shippable) DescribeMismatchSafely(actual *order, mismatch matchers.Description) {
	mismatch.AppendText("order ").AppendValue(actual.ID).AppendText(" has no lines")
}

func (shippable) DescribeTo(d matchers.Description) {
	d.AppendText("a shippable order")
}

func (shippable) MatchesSafely(actual *order) bool {
	return len(actual.Lines) > 0
}

func TestCheck(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	ok, message := matchers.Check(fmt.Sprint(42), match.StartsWith("4"))

	g.Expect(ok).To(BeTrue())
	g.Expect(message).To(BeEmpty())

	ok, message = matchers.Check([]int{2, 1}, match.ArrayContaining(match.Items(1, 2)...))

	g.Expect(ok).To(BeFalse())
	g.Expect(message).To(Equal("Expected: [<1>, <2>]\n     but: item 0: was <2>"))
}

func TestCheck_EndToEnd(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	orders := []order{
		{ID: "a-1", Lines: []string{"book"}},
		{ID: "a-2", Lines: []string{"pen", "ink"}},
	}

	matcher := match.Every(match.Feature("an order with", "lines", match.HasSize[string](1),
		func(o order) []string { return o.Lines }))

	ok, message := matchers.Check(seqOf(orders), matcher)

	g.Expect(ok).To(BeFalse())
	g.Expect(message).To(Equal(
		"Expected: every item is an order with a collection with size <1>\n" +
			"     but: an item lines collection size was <2>"))
}

func TestMatchValue(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	ok, message := matchers.MatchValue(3, BeNumerically(">", 5))

	g.Expect(ok).To(BeFalse())
	g.Expect(message).To(ContainSubstring("to be >"))

	ok, message = matchers.MatchValue(3, matchers.Untyped(match.LessThan(5)))

	g.Expect(ok).To(BeTrue())
	g.Expect(message).To(BeEmpty())

	ok, message = matchers.MatchValue("x", matchers.Untyped(match.LessThan(5)))

	g.Expect(ok).To(BeFalse())
	g.Expect(message).To(Equal("Expected: a value less than <5>\n     but: was a string (\"x\")"))

	ok, message = matchers.MatchValue([]int{1}, []int{2})

	g.Expect(ok).To(BeFalse())
	g.Expect(message).To(Equal("Expected: [<2>]\n     but: was [<1>]"))
}

func TestNew(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	even := matchers.New("an even number", func(n int) bool { return n%2 == 0 })

	g.Expect(even.Matches(4)).To(BeTrue())
	g.Expect(matchers.StringOf(match.Not(even))).To(Equal("not an even number"))
	g.Expect(matchers.MismatchOf(even, 3)).To(Equal("was <3>"))
}

func TestTypeSafe_CustomMismatch(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	matcher := matchers.TypeSafe[*order](shippable{})

	g.Expect(matcher.Matches(&order{ID: "a-1", Lines: []string{"book"}})).To(BeTrue())
	g.Expect(matcher.Matches(nil)).To(BeFalse())
	g.Expect(matchers.MismatchOf(matcher, nil)).To(Equal("was null"))
	g.Expect(matchers.MismatchOf(matcher, &order{ID: "a-2"})).To(Equal(`order "a-2" has no lines`))
}

func TestStringDescription_SharedAcrossMatchers(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	d := matchers.NewStringDescription()
	d.AppendDescriptionOf(match.GreaterThan(1)).AppendText("; ").AppendDescriptionOf(match.EmptyString)

	g.Expect(d.String()).To(Equal("a value greater than <1>; an empty string"))

	matchers.Discard().AppendText("dropped")
}

func TestUntyped_ConcurrentUse(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	matcher := matchers.Untyped(match.ContainsInAnyOrder(match.Items("a", "b")...))

	var wg sync.WaitGroup

	failures := make(chan string, 8)

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if ok, message := matchers.MatchValue(seqOf([]string{"b", "a"}), matcher); !ok {
				failures <- message
			}
		}()
	}

	wg.Wait()
	close(failures)

	g.Expect(failures).To(BeEmpty())
}

func seqOf[E any](values []E) iter.Seq[E] {
	return slices.Values(values)
}
