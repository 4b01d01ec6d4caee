package match_test

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import intentional for Gomega matcher DSL

	"github.com/toejough/matchers/internal/core"
	"github.com/toejough/matchers/match"
)

func TestArray_ExactElements(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	matcher := match.Array(match.Items(1, 2)...)

	g.Expect(matcher.Matches([]int{1, 2})).To(BeTrue())
	g.Expect(core.StringOf(matcher)).To(Equal("[<1>, <2>]"))
	g.Expect(core.MismatchOf(matcher, []int{1})).To(Equal("array length was <1>"))
	g.Expect(core.MismatchOf(matcher, []int{1, 3})).To(Equal("element <1> was <3>"))
	g.Expect(match.Array[int]().Matches(nil)).To(BeTrue())
}

func TestArrayContaining(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	matcher := match.ArrayContaining(match.Items(1, 2)...)

	g.Expect(matcher.Matches([]int{1, 2})).To(BeTrue())
	g.Expect(core.MismatchOf(matcher, []int{2, 1})).To(Equal("item 0: was <2>"))
	g.Expect(core.MismatchOf(matcher, []int{1})).To(Equal("no item was <2>"))
	g.Expect(core.StringOf(matcher)).To(Equal("[<1>, <2>]"))
}

func TestArrayContainingInAnyOrder(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	matcher := match.ArrayContainingInAnyOrder(match.Items(1, 2)...)

	g.Expect(matcher.Matches([]int{2, 1})).To(BeTrue())
	g.Expect(core.MismatchOf(matcher, []int{1})).To(Equal("no item matches: <2> in [<1>]"))
	g.Expect(core.StringOf(matcher)).To(Equal("[<1>, <2>] in any order"))
}

func TestArraySize(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(match.ArrayWithSize[int](1).Matches([]int{7})).To(BeTrue())
	g.Expect(core.StringOf(match.ArrayWithSize[int](1))).To(Equal("an array with size <1>"))
	g.Expect(core.MismatchOf(match.ArrayWithSize[int](1), nil)).To(Equal("array size was <0>"))
	g.Expect(match.ArrayWithSizeThat[int](match.LessThan(2)).Matches([]int{1})).To(BeTrue())
	g.Expect(match.EmptyArray[int]().Matches(nil)).To(BeTrue())
	g.Expect(core.StringOf(match.EmptyArray[int]())).To(Equal("an empty array"))
}

func TestCollectionSize(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	matcher := match.HasSize[int](2)

	g.Expect(matcher.Matches([]int{1, 2})).To(BeTrue())
	g.Expect(core.StringOf(matcher)).To(Equal("a collection with size <2>"))
	g.Expect(core.MismatchOf(matcher, []int{1})).To(Equal("collection size was <1>"))
	g.Expect(match.HasSizeThat[string](match.GreaterThan(0)).Matches([]string{"a"})).To(BeTrue())
}

func TestEmptyCollection(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	matcher := match.Empty[int]()

	g.Expect(matcher.Matches(nil)).To(BeTrue())
	g.Expect(matcher.Matches([]int{})).To(BeTrue())
	g.Expect(core.MismatchOf(matcher, []int{1})).To(Equal("[<1>]"))
	g.Expect(core.StringOf(matcher)).To(Equal("an empty collection"))
}

func TestHasEntry(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	ages := map[string]int{"b": 2, "a": 1}
	matcher := match.HasEntry(match.EqualTo("a"), match.EqualTo(1))

	g.Expect(matcher.Matches(ages)).To(BeTrue())
	g.Expect(core.StringOf(matcher)).To(Equal(`map containing ["a"-><1>]`))

	wrong := match.HasEntry(match.EqualTo("a"), match.EqualTo(2))

	g.Expect(wrong.Matches(ages)).To(BeFalse())
	g.Expect(core.MismatchOf(wrong, ages)).To(Equal("map was [<a=1>, <b=2>]"))
}

func TestHasKeyAndHasValue(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	ages := map[string]int{"ada": 36}

	g.Expect(match.HasKey[string, int](match.EqualTo("ada")).Matches(ages)).To(BeTrue())
	g.Expect(match.HasKey[string, int](match.EqualTo("bob")).Matches(ages)).To(BeFalse())
	g.Expect(match.HasValue[string](match.GreaterThan(30)).Matches(ages)).To(BeTrue())
	g.Expect(match.HasKey[string, int](match.EqualTo("ada")).Matches(nil)).To(BeFalse())
	g.Expect(core.MismatchOf(match.HasKey[string, int](match.EqualTo("ada")), nil)).To(Equal("map was []"))
	g.Expect(core.StringOf(match.HasKey[string, int](match.EqualTo("ada")))).
		To(Equal(`map containing ["ada"->ANYTHING]`))
}

func TestHasItemInArray(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	matcher := match.HasItemInArray(match.EqualTo(2))

	g.Expect(matcher.Matches([]int{1, 2})).To(BeTrue())
	g.Expect(core.MismatchOf(matcher, []int{})).To(Equal("was empty"))
	g.Expect(core.MismatchOf(matcher, []int{1})).To(Equal("mismatches were: [was <1>]"))
	g.Expect(core.StringOf(matcher)).To(Equal("an array containing <2>"))
}

func TestMapSize(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	ages := map[string]int{"ada": 36, "bob": 41}

	g.Expect(match.AMapWithSize[string, int](2).Matches(ages)).To(BeTrue())
	g.Expect(match.AMapWithSizeThat[string, int](match.LessThan(2)).Matches(ages)).To(BeFalse())
	g.Expect(match.AnEmptyMap[string, int]().Matches(nil)).To(BeTrue())
	g.Expect(core.StringOf(match.AnEmptyMap[string, int]())).To(Equal("an empty map"))
	g.Expect(core.MismatchOf(match.AnEmptyMap[string, int](), ages)).To(Equal("map size was <2>"))
	g.Expect(core.StringOf(match.AMapWithSize[string, int](2))).To(Equal("a map with size <2>"))
}
