package orders_test

import (
	"slices"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import intentional for Gomega matcher DSL

	"github.com/toejough/matchers"
	orders "github.com/toejough/matchers/UAT/01-order-validation"
	"github.com/toejough/matchers/match"
)

func TestOrderFields(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	order := orders.Order{
		ID:       "o-1",
		Customer: "ada",
		Lines:    []orders.Line{{SKU: "pen", Quantity: 2}, {SKU: "ink", Quantity: 1}},
	}

	matcher := match.AllOf(
		match.HasField[orders.Order]("Customer", match.EqualTo[any]("ada")),
		match.HasField[orders.Order]("Total", match.EqualTo[any](3)),
		match.Feature("an order whose lines are", "lines",
			match.ArrayContainingInAnyOrder(match.EqualTo(orders.Line{SKU: "ink", Quantity: 1}), match.EqualTo(orders.Line{SKU: "pen", Quantity: 2})),
			func(o orders.Order) []orders.Line { return o.Lines }),
	)

	ok, message := matchers.Check(order, matcher)

	g.Expect(ok).To(BeTrue(), message)

	order.Customer = "bob"

	ok, message = matchers.Check(order, matcher)

	g.Expect(ok).To(BeFalse())
	g.Expect(message).To(HaveSuffix(`     but: Customer was "bob"`))
}

func TestOrderLinesEveryPositive(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	lines := []orders.Line{{SKU: "pen", Quantity: 2}, {SKU: "cap", Quantity: 0}}
	positive := match.Feature("a line with quantity", "quantity", match.GreaterThan(0),
		func(l orders.Line) int { return l.Quantity })

	ok, message := matchers.Check(slices.Values(lines), match.Every(positive))

	g.Expect(ok).To(BeFalse())
	g.Expect(message).To(Equal(
		"Expected: every item is a line with quantity a value greater than <0>\n" +
			"     but: an item quantity <0> was less than <0>"))
}

func TestOrderTags(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	order := orders.Order{Tags: map[string]string{"gift": "yes", "rush": "no"}}
	tags := match.Feature("an order tagged", "tags", match.HasEntry(match.EqualTo("rush"), match.EqualTo("yes")),
		func(o orders.Order) map[string]string { return o.Tags })

	ok, message := matchers.Check(order, tags)

	g.Expect(ok).To(BeFalse())
	g.Expect(message).To(HaveSuffix(`but: tags map was [<gift=yes>, <rush=no>]`))
}

func TestParsedLines(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	parsesTo := func(want orders.Line) match.Matcher[string] {
		return match.FallibleFeature("text parsing to", "parsed", match.DeepEqualTo(want), orders.ParseLine)
	}

	g.Expect(parsesTo(orders.Line{SKU: "pen", Quantity: 3}).Matches("pen x3")).To(BeTrue())
	g.Expect(parsesTo(orders.Line{SKU: "pen", Quantity: 1}).Matches("pen")).To(BeTrue())
	g.Expect(matchers.MismatchOf(parsesTo(orders.Line{SKU: "pen"}), "pen xx")).To(Equal("parsed bad quantity: x"))
	g.Expect(matchers.MismatchOf(parsesTo(orders.Line{SKU: "pen"}), "")).To(Equal("parsed empty sku"))
}
