package match_test

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import intentional for Gomega matcher DSL

	"github.com/toejough/matchers/internal/core"
	"github.com/toejough/matchers/match"
)

func TestScenarios_AnyOrder(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(match.ContainsInAnyOrder(match.EqualTo("bar"), match.EqualTo("foo")).Matches(seq("foo", "bar"))).To(BeTrue())

	oneTwoThree := match.ContainsInAnyOrder(match.Items(1, 2, 3)...)

	g.Expect(oneTwoThree.Matches(seq(3, 1, 2))).To(BeTrue())
	g.Expect(oneTwoThree.Matches(seq(1, 2))).To(BeFalse())
	g.Expect(oneTwoThree.Matches(seq(1, 1, 2))).To(BeFalse())
	g.Expect(core.MismatchOf(oneTwoThree, seq(1, 1, 2))).To(Equal("not matched: <1>"))
}

func TestScenarios_MapSize(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(match.AMapWithSize[string, int](2).Matches(map[string]int{"a": 1, "b": 2})).To(BeTrue())
}

func TestScenarios_RelativeOrder(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	bd := match.ContainsInRelativeOrder(match.Items("b", "d")...)

	g.Expect(bd.Matches(seq("a", "b", "c", "d", "e"))).To(BeTrue())
	g.Expect(bd.Matches(seq("b", "d"))).To(BeTrue())
	g.Expect(bd.Matches(seq("d", "b"))).To(BeFalse())
	g.Expect(core.MismatchOf(bd, seq("d", "b"))).To(Equal(`"d" was not found after "b"`))
}

func TestScenarios_StrictOrder(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	oneTwoThree := match.Contains(match.Items(1, 2, 3)...)

	g.Expect(oneTwoThree.Matches(seq(1, 2, 3))).To(BeTrue())
	g.Expect(oneTwoThree.Matches(seq(1, 2))).To(BeFalse())
	g.Expect(oneTwoThree.Matches(seq(3, 2, 1))).To(BeFalse())
	g.Expect(oneTwoThree.Matches(seq(1, 2, 3, 4))).To(BeFalse())
}

func TestScenarios_Subsequence(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(match.HasSubsequence(match.Items(2, 3)...).Matches(seq(1, 2, 3, 4))).To(BeTrue())
	g.Expect(match.HasSubsequence(match.Items(2, 3, 4)...).Matches(seq(1, 2, 3, 4))).To(BeTrue())
	g.Expect(match.HasSubsequence(match.Items(1, 3)...).Matches(seq(1, 2, 3))).To(BeFalse())
}
